package render

import (
	"time"

	"github.com/trawler-hull/trawler/internal/world"
)

// Tile index ranges on the trawler tilesheet.
const (
	tileBack        = 1
	tileFloor       = 2
	tileWall        = 100
	tileEngine      = 60
	tileFurnace     = 61
	tileCoal        = 62
	tileStairs      = 63
	tilePlank       = 300
	tileHole        = 370
	tileBoardFirst  = 371
	tileBoardLast   = 375
	tileLowerBreach = 377
	tileTopBreach   = 401
	tileSplash      = 500
	tileFlood       = 600
	tileDebris      = 650
	breachRun       = 6
)

// RenderHull writes every layer of the hull map into buf at the given offset.
// elapsed drives animated tiles. Flood water tints the cells it covers with
// the FloodWater layer opacity.
func RenderHull(buf *CellBuffer, m *world.TileMap, elapsed time.Duration, offsetX, offsetY int) {
	for _, layer := range m.Layers() {
		for y := 0; y < layer.Height; y++ {
			for x := 0; x < layer.Width; x++ {
				t := layer.Get(x, y)
				if t == nil {
					continue
				}
				renderTile(buf, layer, t, elapsed, offsetX+x, offsetY+y)
			}
		}
	}
}

func renderTile(buf *CellBuffer, layer *world.Layer, t *world.Tile, elapsed time.Duration, x, y int) {
	switch layer.Name {
	case world.LayerFloodWater:
		if layer.Opacity <= 0 {
			return
		}
		buf.SetTint(x, y, ColorBlue, layer.Opacity)
		if layer.Opacity >= 0.5 {
			buf.SetGlyph(x, y, GlyphWaves, ColorLightBlue)
		}
	case world.LayerFloodItems:
		if layer.Opacity < 1 {
			return
		}
		buf.SetGlyph(x, y, '*', ColorBrown)
	default:
		glyph, fg, bg := tileVisuals(t.FrameAt(elapsed), t.Animated())
		if glyph == ' ' && bg == ColorBlack {
			return
		}
		buf.Set(x, y, glyph, fg, bg)
	}
}

// tileVisuals maps a tilesheet index to a glyph and colors.
func tileVisuals(index int, animated bool) (glyph byte, fg, bg uint8) {
	switch {
	case index == tileBack:
		return ' ', ColorBlack, ColorBlack
	case index == tileFloor:
		return '.', ColorDarkGray, ColorBlack
	case index == tileWall:
		return '#', ColorLightGray, ColorDarkGray
	case index == tileEngine:
		return GlyphFullBlock, ColorRed, ColorBlack
	case index == tileFurnace:
		return GlyphMediumShade, ColorLightRed, ColorBlack
	case index == tileCoal:
		return GlyphSquare, ColorDarkGray, ColorBlack
	case index == tileStairs:
		return '<', ColorYellow, ColorBlack
	case index == tilePlank:
		return '=', ColorBrown, ColorBlack
	case index == tileHole:
		return 'o', ColorBrown, ColorBlack
	case index >= tileBoardFirst && index <= tileBoardLast:
		return '=', ColorYellow, ColorBrown
	case index >= tileLowerBreach && index < tileLowerBreach+breachRun,
		index >= tileTopBreach && index < tileTopBreach+breachRun:
		return breachGlyph(index), ColorLightCyan, ColorBlue
	case animated && index > tilePlank && index <= tilePlank+breachRun:
		return '|', ColorLightBlue, ColorBrown // water running down a plank
	case index == tileSplash:
		return ' ', ColorBlack, ColorBlack
	case animated && index > tileSplash && index <= tileSplash+breachRun:
		return splashGlyph(index - tileSplash), ColorLightCyan, ColorBlack
	case index == tileFlood, index == tileDebris:
		return ' ', ColorBlack, ColorBlack
	default:
		return '?', ColorWhite, ColorBlack
	}
}

func breachGlyph(index int) byte {
	if index%2 == 0 {
		return 'O'
	}
	return 'o'
}

func splashGlyph(frame int) byte {
	if frame%2 == 0 {
		return GlyphWaves
	}
	return '~'
}

// SpriteGlyph picks the glyph for a sprite texture at a frame.
func SpriteGlyph(texture string, frame int) (byte, uint8) {
	switch texture {
	case "TileSheets/animations":
		return splashGlyph(frame), ColorLightCyan
	case "Maps/TrawlerHull.png":
		return GlyphFullBlock, ColorLightRed
	default:
		return '*', ColorWhite
	}
}
