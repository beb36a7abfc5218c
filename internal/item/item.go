// Package item defines the stackable items the hull hands out and consumes.
package item

// Kind identifies a type of carried item.
type Kind uint8

const (
	KindNone Kind = iota
	KindCoalClump // engine fuel, gathered from the coal pile
	KindCount // sentinel
)

// MaxCoalStack is the largest coal clump a player can carry at once.
const MaxCoalStack = 3

// Stack is a single inventory slot: a kind and how many of it.
type Stack struct {
	Kind  Kind
	Count int
}

// Empty returns true if the stack holds nothing.
func (s Stack) Empty() bool {
	return s.Kind == KindNone || s.Count <= 0
}

// MaxStack returns the stack limit for a kind.
func MaxStack(k Kind) int {
	if k == KindCoalClump {
		return MaxCoalStack
	}
	return 99
}

// IsCoalClump returns true if s is a usable coal clump stack.
func IsCoalClump(s Stack) bool {
	return s.Kind == KindCoalClump && s.Count > 0 && s.Count <= MaxCoalStack
}

// NewCoalClump creates a coal clump stack of the given size, clamped to the stack limit.
func NewCoalClump(size int) Stack {
	return Stack{Kind: KindCoalClump, Count: min(max(size, 1), MaxCoalStack)}
}

// Grow adds amount to the stack without exceeding the stack limit.
// Returns the new count.
func (s *Stack) Grow(amount int) int {
	s.Count = min(s.Count+amount, MaxStack(s.Kind))
	return s.Count
}

var names = [KindCount]string{
	KindNone:      "Empty",
	KindCoalClump: "Coal Clump",
}

// Name returns the display name for an item kind.
func Name(k Kind) string {
	if k < KindCount {
		return names[k]
	}
	return "Unknown"
}
