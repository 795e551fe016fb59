package swatch

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	charWidth   = 4
	labelHeight = 7
)

// 3x5 bitmap glyphs for numeric labels.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'.': {"000", "000", "000", "000", "010"},
	',': {"000", "000", "000", "010", "010"},
	'-': {"000", "000", "111", "000", "000"},
}

// drawLabel draws text with its top-left corner at (x, y) over a filled
// background box. Characters without a glyph leave a gap.
func drawLabel(img draw.Image, x, y int, text string, fg, bg color.Color) {
	bounds := img.Bounds()
	set := func(px, py int, c color.Color) {
		if (image.Point{px, py}).In(bounds) {
			img.Set(px, py, c)
		}
	}

	labelWidth := len([]rune(text)) * charWidth
	for dy := -1; dy < labelHeight-1; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			set(x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		if glyph, ok := glyphs[ch]; ok {
			for row, line := range glyph {
				for col, pixel := range line {
					if pixel == '1' {
						set(cx+col, y+row, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
