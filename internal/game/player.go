package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/trawler-hull/trawler/internal/item"
	"github.com/trawler-hull/trawler/internal/world"
)

// Player is the hull's actor: an ECS entity with a position, plus the items
// it carries. Messages shown to the player go to the session log.
type Player struct {
	Inv Inventory

	entity ecs.Entity
	posMap *ecs.Map[Position]
	log    *MessageLog
}

// Tile returns the tile the player stands on.
func (p *Player) Tile() world.Location {
	pos := p.posMap.Get(p.entity)
	return world.Location{X: pos.X, Y: pos.Y}
}

// FindItem returns the first slot holding kind.
func (p *Player) FindItem(kind item.Kind) (int, bool) {
	idx := p.Inv.FindSlot(kind)
	return idx, idx >= 0
}

// AddItem puts s in the first empty slot.
func (p *Player) AddItem(s item.Stack) (int, bool) {
	idx := p.Inv.Put(s)
	return idx, idx >= 0
}

// IncrementItem grows the stack in slot by amount, up to its stack limit.
func (p *Player) IncrementItem(slot, amount int) {
	if slot < 0 || slot >= MaxInventorySlots {
		return
	}
	p.Inv.Slots[slot].Grow(amount)
}

// HeldItem returns the stack in hand, if any.
func (p *Player) HeldItem() (item.Stack, bool) { return p.Inv.HeldStack() }

// RemoveHeldItem empties the held slot.
func (p *Player) RemoveHeldItem() { p.Inv.DropHeld() }

// SelectSlot puts the stack in slot in hand.
func (p *Player) SelectSlot(slot int) { p.Inv.Select(slot) }

// ShowMessage puts text in the session log as a warning.
func (p *Player) ShowMessage(text string) {
	p.log.Add(text, MsgWarning)
}
