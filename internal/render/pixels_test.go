package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 200, G: 100, B: 50, A: 255},
	}
	cells := []uint8{0, 1, 7} // 7 clamps to the last palette entry
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	want := []byte{
		10, 20, 30, 255,
		200, 100, 50, 255,
		200, 100, 50, 255,
	}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("buf[%d] = %d, expected %d", i, buf[i], b)
		}
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	cells := []uint8{3, 1}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}

	fillPaletteRGBA(buf, cells, nil)

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, expected cleared buffer", i, b)
		}
	}
}
