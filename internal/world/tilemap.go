package world

import "time"

// Location identifies a single tile cell.
type Location struct {
	X int
	Y int
}

// Properties is the per-tile key/value tag set read from the map file.
type Properties map[string]string

// Clone returns an independent copy of p. A nil set clones to nil.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Tile is a single cell of a layer.
// A tile with Frames set is animated and cycles through them every Interval.
type Tile struct {
	Index    int           // tilesheet index (first frame for animated tiles)
	Sheet    int           // tilesheet the index refers to
	Frames   []int         // nil for static tiles
	Interval time.Duration // time per frame
	Props    Properties
}

// Animated returns true if the tile cycles through frames.
func (t *Tile) Animated() bool {
	return len(t.Frames) > 0
}

// FrameAt returns the tile index to display after elapsed time.
func (t *Tile) FrameAt(elapsed time.Duration) int {
	if !t.Animated() || t.Interval <= 0 {
		return t.Index
	}
	n := int(elapsed/t.Interval) % len(t.Frames)
	return t.Frames[n]
}

// Property returns the value of key and whether it is set.
func (t *Tile) Property(key string) (string, bool) {
	if t == nil || t.Props == nil {
		return "", false
	}
	v, ok := t.Props[key]
	return v, ok
}

// Layer is a named 2D grid of tiles. Nil entries are empty cells.
type Layer struct {
	Name    string
	Width   int
	Height  int
	Tiles   []*Tile
	Opacity float32
}

// NewLayer creates an empty, fully opaque layer.
func NewLayer(name string, w, h int) *Layer {
	return &Layer{
		Name:    name,
		Width:   w,
		Height:  h,
		Tiles:   make([]*Tile, w*h),
		Opacity: 1,
	}
}

// Get returns the tile at (x, y). Out-of-bounds and empty cells return nil.
func (l *Layer) Get(x, y int) *Tile {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return nil
	}
	return l.Tiles[y*l.Width+x]
}

// Set writes a tile at (x, y). Out-of-bounds writes are ignored.
func (l *Layer) Set(x, y int, t *Tile) {
	if x >= 0 && x < l.Width && y >= 0 && y < l.Height {
		l.Tiles[y*l.Width+x] = t
	}
}

// TileMap is a stack of layers sharing the same dimensions.
// Layers are kept in draw order.
type TileMap struct {
	Name   string
	Width  int
	Height int
	Spawn  Location

	layers []*Layer
	byName map[string]*Layer
}

// NewTileMap creates a map with no layers.
func NewTileMap(name string, w, h int) *TileMap {
	return &TileMap{
		Name:   name,
		Width:  w,
		Height: h,
		byName: make(map[string]*Layer),
	}
}

// AddLayer appends an empty layer, or returns the existing one with that name.
func (m *TileMap) AddLayer(name string) *Layer {
	if l, ok := m.byName[name]; ok {
		return l
	}
	l := NewLayer(name, m.Width, m.Height)
	m.layers = append(m.layers, l)
	m.byName[name] = l
	return l
}

// Layer returns the named layer, or nil.
func (m *TileMap) Layer(name string) *Layer {
	return m.byName[name]
}

// Layers returns all layers in draw order.
func (m *TileMap) Layers() []*Layer {
	return m.layers
}

// LayerSize returns the dimensions of the named layer, or zero if it is missing.
func (m *TileMap) LayerSize(layer string) (int, int) {
	l := m.byName[layer]
	if l == nil {
		return 0, 0
	}
	return l.Width, l.Height
}

// TileAt returns the tile at loc on the named layer, or nil.
func (m *TileMap) TileAt(loc Location, layer string) *Tile {
	l := m.byName[layer]
	if l == nil {
		return nil
	}
	return l.Get(loc.X, loc.Y)
}

// Property returns the value of key on the tile at loc, or "" if the
// layer, tile, or key is missing.
func (m *TileMap) Property(loc Location, layer, key string) string {
	v, _ := m.TileAt(loc, layer).Property(key)
	return v
}

// SetStaticTile replaces the tile at loc with a static tile.
func (m *TileMap) SetStaticTile(loc Location, layer string, index, sheet int, props Properties) {
	l := m.byName[layer]
	if l == nil {
		return
	}
	l.Set(loc.X, loc.Y, &Tile{Index: index, Sheet: sheet, Props: props.Clone()})
}

// SetAnimatedTile replaces the tile at loc with an animated tile.
func (m *TileMap) SetAnimatedTile(loc Location, layer string, frames []int, interval time.Duration, sheet int, props Properties) {
	l := m.byName[layer]
	if l == nil || len(frames) == 0 {
		return
	}
	l.Set(loc.X, loc.Y, &Tile{
		Index:    frames[0],
		Sheet:    sheet,
		Frames:   append([]int(nil), frames...),
		Interval: interval,
		Props:    props.Clone(),
	})
}

// Opacity returns the named layer's opacity, or 0 if it is missing.
func (m *TileMap) Opacity(layer string) float32 {
	l := m.byName[layer]
	if l == nil {
		return 0
	}
	return l.Opacity
}

// SetOpacity sets the named layer's opacity. Missing layers are ignored.
func (m *TileMap) SetOpacity(layer string, v float32) {
	if l := m.byName[layer]; l != nil {
		l.Opacity = v
	}
}
