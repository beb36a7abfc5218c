package render

import (
	"math/rand/v2"
	"testing"

	"github.com/trawler-hull/trawler/assets"
	"github.com/trawler-hull/trawler/internal/hull"
	"github.com/trawler-hull/trawler/internal/world"
)

func loadHull(t *testing.T) *world.TileMap {
	t.Helper()
	data, err := assets.Hulls.ReadFile("hulls/trawler_hull.json")
	if err != nil {
		t.Fatal(err)
	}
	m, err := world.LoadTileMap(data)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestRenderHullStatic(t *testing.T) {
	m := loadHull(t)
	b := NewCellBuffer(m.Width+2, m.Height+2)
	RenderHull(b, m, 0, 1, 1)

	tests := []struct {
		name  string
		x, y  int
		glyph byte
	}{
		{"wall", 0, 0, '#'},
		{"plank", 1, 1, '='},
		{"hole", 3, 1, 'o'},
		{"floor", 5, 6, '.'},
		{"furnace", 2, 5, GlyphMediumShade},
		{"coal", 4, 7, GlyphSquare},
		{"stairs", 9, 5, '<'},
	}
	for _, tt := range tests {
		if got := b.Get(tt.x+1, tt.y+1).Glyph; got != tt.glyph {
			t.Errorf("%s at %d,%d = %q, want %q", tt.name, tt.x, tt.y, got, tt.glyph)
		}
	}
	if b.Get(6, 7).TintAlpha != 0 {
		t.Error("dry hull should have no flood tint")
	}
}

func TestRenderHullFlood(t *testing.T) {
	m := loadHull(t)
	sim := hull.New(m, hull.Options{Random: rand.New(rand.NewPCG(3, 4))})

	sim.ChangeWaterLevel(10)
	b := NewCellBuffer(m.Width, m.Height)
	RenderHull(b, m, 0, 0, 0)
	c := b.Get(5, 6)
	if c.Tint != ColorBlue || c.TintAlpha < 0.19 || c.TintAlpha > 0.21 {
		t.Errorf("flood cell at 10%% = %+v", c)
	}
	if c.Glyph != '.' {
		t.Errorf("shallow water should keep the floor glyph, got %q", c.Glyph)
	}
	if b.Get(4, 5).Glyph == '*' {
		t.Error("debris visible below the items threshold")
	}

	sim.ChangeWaterLevel(50)
	b.Clear()
	RenderHull(b, m, 0, 0, 0)
	if got := b.Get(5, 6).Glyph; got != GlyphWaves {
		t.Errorf("deep water glyph = %q", got)
	}
	if got := b.Get(4, 5).Glyph; got != '*' {
		t.Errorf("debris glyph = %q, want '*'", got)
	}
}

func TestRenderHullBreach(t *testing.T) {
	m := loadHull(t)
	sim := hull.New(m, hull.Options{Random: rand.New(rand.NewPCG(3, 4))})
	sim.AttemptCreateLeakAt(world.Location{X: 3, Y: 1})

	b := NewCellBuffer(m.Width, m.Height)
	RenderHull(b, m, 0, 0, 0)

	if c := b.Get(3, 1); c.BG != ColorBlue || (c.Glyph != 'o' && c.Glyph != 'O') {
		t.Errorf("breach cell = %+v", c)
	}
	if c := b.Get(3, 2); c.Glyph != '|' {
		t.Errorf("plank under breach = %q, want '|'", c.Glyph)
	}
	if c := b.Get(3, 4); c.Glyph != '~' && c.Glyph != GlyphWaves {
		t.Errorf("splash under breach = %q", c.Glyph)
	}

	sim.AttemptPlugLeak(world.Location{X: 3, Y: 1}, nil, true)
	b.Clear()
	RenderHull(b, m, 0, 0, 0)
	if c := b.Get(3, 1); c.Glyph != '=' || c.BG != ColorBrown {
		t.Errorf("board cell = %+v", c)
	}
	if c := b.Get(3, 2); c.Glyph != '=' {
		t.Errorf("plank after plug = %q", c.Glyph)
	}
}
