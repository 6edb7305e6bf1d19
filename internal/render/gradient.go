// Package render produces the raster artwork for product images: gradient
// backgrounds, powder-texture and leaf decorations, and text overlays, plus
// thumbnail scaling and encoding of the finished buffers.
package render

import (
	"image"
	"image/color"
)

// Direction selects the axis of a linear gradient.
type Direction string

const (
	Diagonal   Direction = "diagonal"
	Vertical   Direction = "vertical"
	Horizontal Direction = "horizontal"
)

// Gradient returns a w×h image where each pixel is a linear blend of c1 and
// c2 along the given axis. The blend parameter is (x+y)/(w+h) for diagonal,
// y/h for vertical, and x/w for horizontal; channel values are truncated.
func Gradient(w, h int, c1, c2 color.RGBA, dir Direction) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var t float64
			switch dir {
			case Vertical:
				t = float64(y) / float64(h)
			case Horizontal:
				t = float64(x) / float64(w)
			default:
				t = float64(x+y) / float64(w+h)
			}
			img.SetRGBA(x, y, blend(c1, c2, t))
		}
	}
	return img
}

// blend interpolates each channel as c1*(1-t) + c2*t with truncation.
func blend(c1, c2 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c1.R)*(1-t) + float64(c2.R)*t),
		G: uint8(float64(c1.G)*(1-t) + float64(c2.G)*t),
		B: uint8(float64(c1.B)*(1-t) + float64(c2.B)*t),
		A: 255,
	}
}
