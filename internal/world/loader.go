package world

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

// HullLayout is the JSON-serializable definition of a hull map.
// Each layer is a list of rows; every character is looked up in Legend.
// Spaces and dots are empty cells.
type HullLayout struct {
	Name   string             `json:"name"`
	Width  int                `json:"width"`
	Height int                `json:"height"`
	Sheet  int                `json:"sheet"`
	Legend map[string]TileDef `json:"legend"`
	Layers []LayerDef         `json:"layers"`
	Spawn  [2]int             `json:"spawn"`
}

// TileDef describes the tile a legend character expands to.
type TileDef struct {
	Index      int               `json:"index"`
	Sheet      int               `json:"sheet,omitempty"`
	Frames     []int             `json:"frames,omitempty"`
	IntervalMS int               `json:"interval_ms,omitempty"`
	Props      map[string]string `json:"props,omitempty"`
}

// LayerDef is a single named layer in a hull layout.
type LayerDef struct {
	Name    string   `json:"name"`
	Opacity *float32 `json:"opacity,omitempty"`
	Rows    []string `json:"rows"`
}

// LoadHullLayout parses a HullLayout from JSON bytes.
func LoadHullLayout(data []byte) (*HullLayout, error) {
	var layout HullLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("parse hull layout: %w", err)
	}
	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, fmt.Errorf("invalid hull size %dx%d", layout.Width, layout.Height)
	}
	for key := range layout.Legend {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("legend key %q must be a single character", key)
		}
	}
	for _, l := range layout.Layers {
		if len(l.Rows) > layout.Height {
			return nil, fmt.Errorf("layer %s: %d rows exceed declared height %d", l.Name, len(l.Rows), layout.Height)
		}
	}
	return &layout, nil
}

// ToTileMap converts a HullLayout into a TileMap.
func (l *HullLayout) ToTileMap() (*TileMap, error) {
	m := NewTileMap(l.Name, l.Width, l.Height)
	m.Spawn = Location{X: l.Spawn[0], Y: l.Spawn[1]}

	for _, def := range l.Layers {
		layer := m.AddLayer(def.Name)
		if def.Opacity != nil {
			layer.Opacity = *def.Opacity
		}
		for y, row := range def.Rows {
			x := 0
			for _, ch := range row {
				if x >= l.Width {
					break
				}
				if ch != ' ' && ch != '.' {
					t, err := l.tileFor(ch)
					if err != nil {
						return nil, fmt.Errorf("layer %s (%d,%d): %w", def.Name, x, y, err)
					}
					layer.Set(x, y, t)
				}
				x++
			}
		}
	}
	return m, nil
}

func (l *HullLayout) tileFor(ch rune) (*Tile, error) {
	def, ok := l.Legend[string(ch)]
	if !ok {
		return nil, fmt.Errorf("unknown tile %q", ch)
	}
	sheet := def.Sheet
	if sheet == 0 {
		sheet = l.Sheet
	}
	t := &Tile{
		Index: def.Index,
		Sheet: sheet,
		Props: Properties(def.Props).Clone(),
	}
	if len(def.Frames) > 0 {
		t.Frames = append([]int(nil), def.Frames...)
		t.Index = def.Frames[0]
		t.Interval = time.Duration(def.IntervalMS) * time.Millisecond
	}
	return t, nil
}

// LoadTileMap parses JSON bytes straight into a TileMap.
func LoadTileMap(data []byte) (*TileMap, error) {
	layout, err := LoadHullLayout(data)
	if err != nil {
		return nil, err
	}
	return layout.ToTileMap()
}
