package render

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// DefaultTextureSeed reproduces identical powder texture placement across
// runs. Any fixed seed works; changing it only moves the dots.
const DefaultTextureSeed = 42

// PowderCircle draws a stylised matcha powder disc onto dst: a solid circle
// of the base color overlaid with 50 small dots scattered inside it. Dot
// placement and coloring come from a PRNG seeded with seed, so the texture is
// identical across runs.
func PowderCircle(dst *image.RGBA, cx, cy, radius int, base color.RGBA, seed int64) {
	fillEllipse(dst, cx-radius, cy-radius, cx+radius, cy+radius, base)

	rng := rand.New(rand.NewSource(seed))
	lighter := lighten(base, 30)
	darker := darken(base, 20)

	for i := 0; i < 50; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := rng.Float64() * float64(radius) * 0.8
		x := cx + int(dist*math.Cos(angle))
		y := cy + int(dist*math.Sin(angle))
		size := 2 + rng.Intn(4)
		c := darker
		if rng.Float64() > 0.5 {
			c = lighter
		}
		fillEllipse(dst, x-size, y-size, x+size, y+size, c)
	}
}

// Leaf draws a simplified tea leaf at (x, y): an ellipse twice as wide as
// tall plus a short vertical stem, both in the color darkened by 30.
func Leaf(dst *image.RGBA, x, y, size int, c color.RGBA) {
	leafColor := darken(c, 30)
	fillEllipse(dst, x, y, x+size*2, y+size, leafColor)
	vline(dst, x+size, y+size/2, y+size+10, 2, leafColor)
}

// fillEllipse fills the ellipse inscribed in the bounding box (x0,y0)-(x1,y1).
func fillEllipse(dst *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	cx := float64(x0) + rx
	cy := float64(y0) + ry
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			if dx*dx+dy*dy <= 1 {
				setClamped(dst, x, y, c)
			}
		}
	}
}

// vline draws a vertical line of the given width from y0 down to y1.
func vline(dst *image.RGBA, x, y0, y1, width int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		for dx := 0; dx < width; dx++ {
			setClamped(dst, x+dx, y, c)
		}
	}
}

// strokeRect strokes a rectangle border of the given width just inside the
// bounding box (x0,y0)-(x1,y1) inclusive.
func strokeRect(dst *image.RGBA, x0, y0, x1, y1, width int, c color.RGBA) {
	for i := 0; i < width; i++ {
		for x := x0; x <= x1; x++ {
			setClamped(dst, x, y0+i, c)
			setClamped(dst, x, y1-i, c)
		}
		for y := y0; y <= y1; y++ {
			setClamped(dst, x0+i, y, c)
			setClamped(dst, x1-i, y, c)
		}
	}
}

// setClamped sets a pixel, ignoring coordinates outside dst's bounds.
func setClamped(dst *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(dst.Bounds()) {
		dst.SetRGBA(x, y, c)
	}
}

func lighten(c color.RGBA, by int) color.RGBA {
	return color.RGBA{R: clamp8(int(c.R) + by), G: clamp8(int(c.G) + by), B: clamp8(int(c.B) + by), A: 255}
}

func darken(c color.RGBA, by int) color.RGBA {
	return color.RGBA{R: clamp8(int(c.R) - by), G: clamp8(int(c.G) - by), B: clamp8(int(c.B) - by), A: 255}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
