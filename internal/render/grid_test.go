package render

import "testing"

func TestCellBufferBounds(t *testing.T) {
	b := NewCellBuffer(4, 2)
	b.Set(-1, 0, 'x', ColorRed, ColorBlack)
	b.Set(4, 1, 'x', ColorRed, ColorBlack)
	b.SetTint(0, 5, ColorBlue, 1)
	for i, c := range b.Cells {
		if c != blank {
			t.Fatalf("cell %d changed by out-of-bounds write: %+v", i, c)
		}
	}
	if got := b.Get(10, 10); got != (Cell{}) {
		t.Errorf("Get out of bounds = %+v", got)
	}
}

func TestCellBufferTint(t *testing.T) {
	b := NewCellBuffer(3, 1)
	b.Set(1, 0, '.', ColorDarkGray, ColorBlack)
	b.SetTint(1, 0, ColorBlue, 1.4)
	b.SetGlyph(1, 0, GlyphWaves, ColorLightBlue)

	c := b.Get(1, 0)
	if c.Glyph != GlyphWaves || c.FG != ColorLightBlue || c.Tint != ColorBlue || c.TintAlpha != 1 {
		t.Errorf("cell = %+v", c)
	}

	b.Set(1, 0, '#', ColorLightGray, ColorDarkGray)
	if b.Get(1, 0).TintAlpha != 0 {
		t.Error("Set should drop the tint")
	}

	b.SetTint(2, 0, ColorBlue, -1)
	if b.Get(2, 0).TintAlpha != 0 {
		t.Error("negative alpha should clamp to 0")
	}
}

func TestCellBufferWriteString(t *testing.T) {
	b := NewCellBuffer(6, 1)
	b.WriteString(1, 0, "ab☃", ColorWhite, ColorBlack)
	want := " ab?  "
	for x := range want {
		if got := b.Get(x, 0).Glyph; got != want[x] {
			t.Errorf("cell %d = %q, want %q", x, got, want[x])
		}
	}
}

func TestDrawGauge(t *testing.T) {
	b := NewCellBuffer(30, 1)
	b.DrawGauge(0, 0, "Fuel", 50, 10, ColorYellow)

	// "Fuel" + space, then 10 bar cells.
	for i := 0; i < 10; i++ {
		want := byte(GlyphLightShade)
		if i < 5 {
			want = GlyphFullBlock
		}
		if got := b.Get(5+i, 0).Glyph; got != want {
			t.Errorf("bar cell %d = %d, want %d", i, got, want)
		}
	}
	pct := string([]byte{b.Get(16, 0).Glyph, b.Get(17, 0).Glyph, b.Get(18, 0).Glyph, b.Get(19, 0).Glyph})
	if pct != " 50%" {
		t.Errorf("percent = %q", pct)
	}
}

func TestLevelColors(t *testing.T) {
	tests := []struct {
		pct   int
		level uint8
		flood uint8
	}{
		{0, ColorLightRed, ColorLightGray},
		{25, ColorYellow, ColorLightGray},
		{50, ColorLightGray, ColorLightGray},
		{80, ColorLightGray, ColorYellow},
		{100, ColorLightGray, ColorLightRed},
	}
	for _, tt := range tests {
		if got := LevelColor(tt.pct); got != tt.level {
			t.Errorf("LevelColor(%d) = %d, want %d", tt.pct, got, tt.level)
		}
		if got := FloodColor(tt.pct); got != tt.flood {
			t.Errorf("FloodColor(%d) = %d, want %d", tt.pct, got, tt.flood)
		}
	}
}
