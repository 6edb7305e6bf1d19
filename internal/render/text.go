package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextWidth returns the advance width of s in pixels when drawn with face.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *image.RGBA, face font.Face, s string, x, y int, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(s)
}

// DrawCenteredText draws s horizontally centered on dst with its top edge at
// y. When shadow is true a black copy is drawn first, offset by (2, 2).
func DrawCenteredText(dst *image.RGBA, face font.Face, s string, y int, c color.Color, shadow bool) {
	x := (dst.Bounds().Dx() - TextWidth(face, s)) / 2
	if shadow {
		DrawText(dst, face, s, x+2, y+2, color.RGBA{A: 255})
	}
	DrawText(dst, face, s, x, y, c)
}
