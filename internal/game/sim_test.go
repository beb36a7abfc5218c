package game

import (
	"testing"

	"github.com/trawler-hull/trawler/internal/item"
	"github.com/trawler-hull/trawler/internal/world"
)

func TestNewSim(t *testing.T) {
	s := newTestSim(t, Options{Leaks: true})

	if x, y := s.PlayerPos(); x != 9 || y != 6 {
		t.Errorf("PlayerPos() = %d,%d, want 9,6", x, y)
	}
	if n := len(s.Hull.LeakLocations()); n != 4 {
		t.Errorf("hull has %d holes, want 4", n)
	}
	if s.Hull.FuelLevel() != 100 || s.Hull.WaterLevel() != 0 {
		t.Errorf("fuel %d water %d", s.Hull.FuelLevel(), s.Hull.WaterLevel())
	}
	if got := lastMessage(s); got != msgWelcome {
		t.Errorf("first message = %q", got)
	}
	if s.Player.Tile() != s.Map.Spawn {
		t.Errorf("Tile() = %v, want spawn %v", s.Player.Tile(), s.Map.Spawn)
	}
}

func TestTryMovePlayer(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   bool
		wantX  int
		wantY  int
	}{
		{"left", -1, 0, true, 8, 6},
		{"down", 0, 1, true, 9, 7},
		{"into the stairs", 0, -1, false, 9, 6},
		{"off the map", 0, 5, false, 9, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, Options{})
			if got := s.TryMovePlayer(tt.dx, tt.dy); got != tt.want {
				t.Fatalf("TryMovePlayer(%d,%d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
			if x, y := s.PlayerPos(); x != tt.wantX || y != tt.wantY {
				t.Errorf("PlayerPos() = %d,%d, want %d,%d", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTickSpringsLeaks(t *testing.T) {
	s := newTestSim(t, Options{Leaks: true, WeakHull: true})
	for range weakLeakInterval * 40 {
		s.Tick()
	}
	if !s.Hull.HasLeak() {
		t.Fatal("no leak after 40 leak intervals")
	}
	found := false
	for _, m := range s.Log.Messages {
		if m.Text == msgLeakSprung && m.Priority == MsgCritical {
			found = true
		}
	}
	if !found {
		t.Error("leak was not announced")
	}
}

func TestTickWithoutLeaks(t *testing.T) {
	s := newTestSim(t, Options{Leaks: false})
	for range leakInterval * 10 {
		s.Tick()
	}
	if s.Hull.HasLeak() {
		t.Error("leak sprung while leaks are disabled")
	}
	if s.Hull.WaterLevel() != 0 {
		t.Errorf("WaterLevel() = %d, want 0", s.Hull.WaterLevel())
	}
	// 6000 ticks burn 20 fuel.
	if got := s.Hull.FuelLevel(); got != 80 {
		t.Errorf("FuelLevel() = %d, want 80", got)
	}
	if s.Hull.IsEngineFailing() {
		t.Error("engine should still run")
	}
}

func TestTickRaisesWater(t *testing.T) {
	s := newTestSim(t, Options{})
	s.Hull.LeaksEnabled = true
	if !s.Hull.AttemptCreateLeakAt(world.Location{X: 3, Y: 1}) {
		t.Fatal("AttemptCreateLeakAt failed")
	}
	s.Hull.LeaksEnabled = false

	for range waterInterval * 3 {
		s.Tick()
	}
	// 2 from the breach, then 2 per interval.
	if got := s.Hull.WaterLevel(); got != 8 {
		t.Errorf("WaterLevel() = %d, want 8", got)
	}
}

func TestTickWarnsWhenDry(t *testing.T) {
	s := newTestSim(t, Options{})
	s.Hull.AdjustFuelLevel(-100)
	for range warningInterval {
		s.Tick()
	}
	if got := lastMessage(s); got != msgFailing {
		t.Errorf("last message = %q, want %q", got, msgFailing)
	}
}

func TestInteractCoalAndRefuel(t *testing.T) {
	s := newTestSim(t, Options{})
	s.Hull.AdjustFuelLevel(-50)

	place(s, 4, 6)
	for want := 1; want <= 3; want++ {
		if !s.Interact() {
			t.Fatalf("Interact() at the coal pile failed on #%d", want)
		}
		held, ok := s.Player.HeldItem()
		if !ok || held.Kind != item.KindCoalClump || held.Count != want {
			t.Fatalf("held = %+v, %v after #%d", held, ok, want)
		}
	}
	if got := lastMessage(s); got != msgPickedUp {
		t.Errorf("last message = %q", got)
	}

	place(s, 3, 6)
	if !s.Interact() {
		t.Fatal("Interact() at the furnace failed")
	}
	if got := s.Hull.FuelLevel(); got != 85 {
		t.Errorf("FuelLevel() = %d, want 85", got)
	}
	if s.Player.Inv.Count(item.KindCoalClump) != 0 {
		t.Error("coal should be burnt")
	}
	if got := lastMessage(s); got != msgRefueled {
		t.Errorf("last message = %q", got)
	}
}

func TestInteractRefuelEmptyHanded(t *testing.T) {
	s := newTestSim(t, Options{})
	place(s, 2, 4)
	if s.Interact() {
		t.Error("refuel without coal should fail")
	}
	m := s.Log.Messages[len(s.Log.Messages)-1]
	if m.Text != "game_message.coal_clump.must_be_holding" || m.Priority != MsgWarning {
		t.Errorf("last message = %+v", m)
	}
}

func TestInteractPlugsLeak(t *testing.T) {
	s := newTestSim(t, Options{Leaks: true})
	hole := world.Location{X: 6, Y: 1}
	s.Hull.AttemptCreateLeakAt(hole)

	place(s, 5, 4)
	if !s.Interact() {
		t.Fatal("Interact() under a leak should plug it")
	}
	if s.Hull.IsLeaking(hole) {
		t.Error("hole still leaking")
	}
	if got := lastMessage(s); got != msgLeakPatched {
		t.Errorf("last message = %q", got)
	}
}

func TestInteractTakesStairs(t *testing.T) {
	s := newTestSim(t, Options{})
	if !s.Interact() {
		t.Fatal("Interact() on the landing should use the stairs")
	}
	want := Warp{Location: "TrawlerDeck", X: 9, Y: 8}
	if s.Warp == nil || *s.Warp != want {
		t.Errorf("Warp = %v, want %v", s.Warp, want)
	}
}

func TestInteractNothing(t *testing.T) {
	s := newTestSim(t, Options{})
	place(s, 12, 6)
	if s.Interact() {
		t.Error("Interact() in open floor should fail")
	}
	if got := lastMessage(s); got != msgNothing {
		t.Errorf("last message = %q", got)
	}
}

func TestClick(t *testing.T) {
	s := newTestSim(t, Options{Leaks: true})
	hole := world.Location{X: 9, Y: 2}
	s.Hull.AttemptCreateLeakAt(hole)

	place(s, 2, 4)
	if s.Click(hole) {
		t.Error("click on a far hole should fail")
	}
	place(s, 10, 4)
	if !s.Click(hole) {
		t.Error("click on a hole in reach should plug it")
	}
	if s.Click(hole) {
		t.Error("click on a patched hole should fail")
	}
	if s.Click(world.Location{X: 5, Y: 5}) {
		t.Error("click on open floor should fail")
	}
}

func TestParseWarp(t *testing.T) {
	tests := []struct {
		in   string
		want Warp
		ok   bool
	}{
		{"Warp TrawlerDeck 9 8", Warp{"TrawlerDeck", 9, 8}, true},
		{"  Warp   Cabin 1 2 ", Warp{"Cabin", 1, 2}, true},
		{"Warp TrawlerDeck 9", Warp{}, false},
		{"Door TrawlerDeck 9 8", Warp{}, false},
		{"Warp TrawlerDeck x 8", Warp{}, false},
		{"", Warp{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseWarp(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseWarp(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
