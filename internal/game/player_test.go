package game

import (
	"testing"

	"github.com/trawler-hull/trawler/internal/hull"
	"github.com/trawler-hull/trawler/internal/item"
)

var _ hull.Actor = (*Player)(nil)

func TestPlayerActor(t *testing.T) {
	s := newTestSim(t, Options{})
	p := s.Player

	if _, ok := p.FindItem(item.KindCoalClump); ok {
		t.Fatal("new player should carry no coal")
	}
	slot, ok := p.AddItem(item.NewCoalClump(1))
	if !ok || slot != 0 {
		t.Fatalf("AddItem = %d, %v", slot, ok)
	}
	if got, ok := p.FindItem(item.KindCoalClump); !ok || got != slot {
		t.Errorf("FindItem = %d, %v, want %d", got, ok, slot)
	}

	p.IncrementItem(slot, 5)
	p.IncrementItem(-1, 1)
	p.IncrementItem(MaxInventorySlots, 1)
	p.SelectSlot(slot)
	held, ok := p.HeldItem()
	if !ok || held.Count != item.MaxCoalStack {
		t.Errorf("HeldItem = %+v, %v, want a full clump", held, ok)
	}

	p.RemoveHeldItem()
	if _, ok := p.HeldItem(); ok {
		t.Error("RemoveHeldItem left something in hand")
	}

	p.ShowMessage("Mind the bilge")
	last := s.Log.Messages[len(s.Log.Messages)-1]
	if last.Text != "Mind the bilge" || last.Priority != MsgWarning {
		t.Errorf("last message = %+v", last)
	}
}
