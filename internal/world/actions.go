package world

// Layer names used by hull maps.
const (
	LayerBack        = "Back"
	LayerBuildings   = "Buildings"
	LayerWaterSplash = "WaterSplash"
	LayerFloodWater  = "FloodWater"
	LayerFloodItems  = "FloodItems"
	LayerFront       = "Front"
)

// Tile property keys.
const (
	PropCustomAction      = "CustomAction"
	PropAction            = "Action"
	PropIsLeaking         = "IsLeaking"
	PropCustomTouchAction = "CustomTouchAction"
	PropPlaySound         = "PlaySound"
)

// Action is the value of a tile's CustomAction property.
type Action string

const (
	ActionNone         Action = ""
	ActionHullHole     Action = "HullHole"     // leak origin, can be broken open and boarded up
	ActionGetCoal      Action = "GetCoal"      // coal pile, hands out coal clumps
	ActionRefillEngine Action = "RefillEngine" // engine furnace, burns held coal
	ActionStairs       Action = "Stairs"       // any tile with a plain Action property
)

// TouchPlaySound is the CustomTouchAction value that plays the tile's PlaySound.
const TouchPlaySound = "PlaySound"

// ActionAt returns the interaction tag of the Buildings tile at loc.
// A tile with no CustomAction but a plain Action property reports ActionStairs.
func (m *TileMap) ActionAt(loc Location) Action {
	t := m.TileAt(loc, LayerBuildings)
	if v, ok := t.Property(PropCustomAction); ok && v != "" {
		return Action(v)
	}
	if v, ok := t.Property(PropAction); ok && v != "" {
		return ActionStairs
	}
	return ActionNone
}

// IsWalkable returns true if an actor can stand on loc: there is floor on the
// Back layer and nothing on the Buildings layer.
func (m *TileMap) IsWalkable(loc Location) bool {
	if m.TileAt(loc, LayerBack) == nil {
		return false
	}
	return m.TileAt(loc, LayerBuildings) == nil
}

var actionDescriptions = map[Action]string{
	ActionHullHole:     "Hull plank - keep an eye on it",
	ActionGetCoal:      "Coal pile - E: grab a clump",
	ActionRefillEngine: "Engine furnace - E: shovel in held coal",
	ActionStairs:       "Stairs - up to the deck",
}

// Describe returns a human-readable description of the tile at loc.
func (m *TileMap) Describe(loc Location) string {
	if d, ok := actionDescriptions[m.ActionAt(loc)]; ok {
		return d
	}
	if m.IsWalkable(loc) {
		return "Hull floor"
	}
	if m.TileAt(loc, LayerBuildings) != nil {
		return "Hull wall"
	}
	return ""
}
