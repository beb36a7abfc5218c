package game

// Position is a tile coordinate on the hull map.
type Position struct {
	X int
	Y int
}

// PlayerControlled marks the entity driven by keyboard and mouse input.
type PlayerControlled struct{}
