package game

import "github.com/trawler-hull/trawler/internal/item"

// MaxInventorySlots is the personal inventory limit.
const MaxInventorySlots = 6

// NoSlot marks an empty hand.
const NoSlot = -1

// Inventory is the player's personal item storage plus the slot in hand.
type Inventory struct {
	Slots [MaxInventorySlots]item.Stack
	Held  int
}

// NewInventory creates an empty inventory with nothing in hand.
func NewInventory() Inventory {
	return Inventory{Held: NoSlot}
}

// FindSlot returns the index of the slot holding the given kind, or -1.
func (inv *Inventory) FindSlot(kind item.Kind) int {
	for i, slot := range inv.Slots {
		if slot.Kind == kind && !slot.Empty() {
			return i
		}
	}
	return -1
}

// FindEmptySlot returns the index of the first empty slot, or -1.
func (inv *Inventory) FindEmptySlot() int {
	for i, slot := range inv.Slots {
		if slot.Empty() {
			return i
		}
	}
	return -1
}

// Put stores s in the first empty slot. It never merges with existing stacks;
// coal clumps of different sizes are separate items.
func (inv *Inventory) Put(s item.Stack) int {
	if s.Empty() {
		return -1
	}
	idx := inv.FindEmptySlot()
	if idx < 0 {
		return -1 // inventory full
	}
	inv.Slots[idx] = s
	return idx
}

// Select puts slot idx in hand. Out of range indexes empty the hand.
func (inv *Inventory) Select(idx int) {
	if idx < 0 || idx >= MaxInventorySlots {
		inv.Held = NoSlot
		return
	}
	inv.Held = idx
}

// HeldStack returns the stack in hand, if any.
func (inv *Inventory) HeldStack() (item.Stack, bool) {
	if inv.Held < 0 || inv.Held >= MaxInventorySlots || inv.Slots[inv.Held].Empty() {
		return item.Stack{}, false
	}
	return inv.Slots[inv.Held], true
}

// DropHeld clears the slot in hand and empties the hand.
func (inv *Inventory) DropHeld() {
	if inv.Held >= 0 && inv.Held < MaxInventorySlots {
		inv.Slots[inv.Held] = item.Stack{}
	}
	inv.Held = NoSlot
}

// Count returns the total number of a specific item kind across slots.
func (inv *Inventory) Count(kind item.Kind) int {
	n := 0
	for _, slot := range inv.Slots {
		if slot.Kind == kind && !slot.Empty() {
			n += slot.Count
		}
	}
	return n
}

// UsedSlots returns the number of non-empty slots.
func (inv *Inventory) UsedSlots() int {
	n := 0
	for _, slot := range inv.Slots {
		if !slot.Empty() {
			n++
		}
	}
	return n
}
