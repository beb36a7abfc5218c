package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)

	// Tint is washed over the background with TintAlpha opacity (0 = none).
	Tint      uint8
	TintAlpha float32
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.Cols && y >= 0 && y < b.Rows
}

// Set writes a single cell at (x, y), dropping any tint. Out-of-bounds writes
// are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if b.inBounds(x, y) {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// SetGlyph replaces the glyph and foreground of a cell, keeping its
// background and tint.
func (b *CellBuffer) SetGlyph(x, y int, glyph byte, fg uint8) {
	if b.inBounds(x, y) {
		c := &b.Cells[y*b.Cols+x]
		c.Glyph, c.FG = glyph, fg
	}
}

// SetTint washes color over the background of (x, y). alpha is clamped to [0, 1].
func (b *CellBuffer) SetTint(x, y int, tint uint8, alpha float32) {
	if b.inBounds(x, y) {
		c := &b.Cells[y*b.Cols+x]
		c.Tint, c.TintAlpha = tint, min(max(alpha, 0), 1)
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if b.inBounds(x, y) {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// WriteString writes a string starting at (x, y). Each rune occupies one cell.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+offset, y, byte(ch), fg, bg)
		offset++
	}
}

// DrawGauge writes "label [████░░░░] nn%" for a 0-100 value.
func (b *CellBuffer) DrawGauge(x, y int, label string, pct, width int, clr uint8) {
	pct = min(max(pct, 0), 100)
	b.WriteString(x, y, label, clr, ColorBlack)
	x += len(label) + 1
	filled := width * pct / 100
	for i := 0; i < width; i++ {
		if i < filled {
			b.Set(x+i, y, GlyphFullBlock, clr, ColorBlack)
		} else {
			b.Set(x+i, y, GlyphLightShade, ColorDarkGray, ColorBlack)
		}
	}
	b.WriteString(x+width+1, y, fmt.Sprintf("%3d%%", pct), clr, ColorBlack)
}

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

func (r *GridRenderer) fillCell(screen *ebiten.Image, px, py float64, clr uint8, alpha float32) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(Palette[clr])
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(r.bgPixel, &op)
}

// Draw renders the entire CellBuffer to the screen.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != ColorBlack {
				r.fillCell(screen, px, py, cell.BG, 1)
			}
			if cell.TintAlpha > 0 {
				r.fillCell(screen, px, py, cell.Tint, cell.TintAlpha)
			}
			r.DrawFloating(screen, cell.Glyph, cell.FG, px, py)
		}
	}
}

// DrawFloating renders a single glyph at sub-pixel screen coordinates.
// Sprites use it to sit between cells and to shake.
func (r *GridRenderer) DrawFloating(screen *ebiten.Image, glyph byte, fg uint8, px, py float64) {
	if glyph == ' ' || glyph == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(r.CellW)/GlyphWidth, float64(r.CellH)/GlyphHeight)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(Palette[fg])
	screen.DrawImage(r.Atlas.Glyph(glyph), &op)
}

// DrawSprites renders the live sprites of fx with the hull origin at cell
// (originX, originY). Shaking sprites jitter by up to Shake pixels.
func (r *GridRenderer) DrawSprites(screen *ebiten.Image, fx *Effects, originX, originY int) {
	for _, s := range fx.Sprites() {
		glyph, fg := SpriteGlyph(s.Texture, fx.Frame(s))
		px := (float64(originX) + s.Position.X) * float64(r.CellW)
		py := (float64(originY) + s.Position.Y) * float64(r.CellH)
		if s.Shake > 0 {
			t := fx.Now().Seconds()
			px += s.Shake * math.Sin(t*71)
			py += s.Shake * math.Cos(t*53)
		}
		r.DrawFloating(screen, glyph, fg, px, py)
	}
}
