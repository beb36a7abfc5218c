package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// CP437 codes drawn by hand rather than from the font.
const (
	GlyphLightShade  = 176 // ░
	GlyphMediumShade = 177 // ▒
	GlyphDarkShade   = 178 // ▓
	GlyphFullBlock   = 219 // █
	GlyphLowerHalf   = 220 // ▄
	GlyphUpperHalf   = 223 // ▀
	GlyphWaves       = 247 // ≈
	GlyphSquare      = 254 // ■
)

// FontAtlas holds the CP437 glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas generates the glyph atlas at startup. Printable ASCII comes
// from basicfont.Face7x13; shading, blocks and waves are drawn directly.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx, cy := glyphOrigin(byte(code))
		if code >= 32 && code <= 126 {
			drawFontGlyph(img, face, cx, cy, rune(code))
			continue
		}
		drawBlockGlyph(img, cx, cy, byte(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x, y := glyphOrigin(byte(code))
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a CP437 character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

func glyphOrigin(code byte) (int, int) {
	return int(code%AtlasCols) * GlyphWidth, int(code/AtlasCols) * GlyphHeight
}

// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// blockMasks decide per pixel whether a hand-drawn glyph is lit.
var blockMasks = map[byte]func(x, y int) bool{
	GlyphLightShade:  func(x, y int) bool { return (x+y)%4 == 0 },
	GlyphMediumShade: func(x, y int) bool { return (x+y)%2 == 0 },
	GlyphDarkShade:   func(x, y int) bool { return (x+y)%4 != 0 },
	GlyphFullBlock:   func(int, int) bool { return true },
	GlyphLowerHalf:   func(_, y int) bool { return y >= GlyphHeight/2 },
	GlyphUpperHalf:   func(_, y int) bool { return y < GlyphHeight/2 },
	GlyphSquare:      func(x, y int) bool { return x >= 4 && x < 12 && y >= 4 && y < 12 },
	GlyphWaves:       waveMask,
}

// waveMask draws two stacked zigzag lines.
func waveMask(x, y int) bool {
	phase := x % 4
	if phase == 3 {
		phase = 1
	}
	return y == 5+phase || y == 10+phase
}

func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	lit, ok := blockMasks[code]
	if !ok {
		return
	}
	w := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if lit(x, y) {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	}
}
