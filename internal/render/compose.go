package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/matchatrade/assetgen/internal/catalog"
)

// Options controls product image composition.
type Options struct {
	Size        int // square canvas edge
	Fonts       FontSet
	TextureSeed int64
}

// ProductImage composes the full marketing image for a product: a diagonal
// secondary→primary gradient in the grade's palette, a centered powder
// circle, four leaf decorations, the product name with shadow, a grade label,
// and a 3px accent border.
func ProductImage(p catalog.Product, opts Options) *image.RGBA {
	w, h := opts.Size, opts.Size
	pal := catalog.PaletteFor(p.Grade)

	img := Gradient(w, h, pal.Secondary, pal.Primary, Diagonal)

	cx, cy := w/2, h/2-50
	PowderCircle(img, cx, cy, min(w, h)/4, pal.Accent, opts.TextureSeed)

	Leaf(img, w/10, h/10, 30, pal.Primary)
	Leaf(img, w*8/10, h*15/100, 25, pal.Primary)
	Leaf(img, w*15/100, h*8/10, 20, pal.Primary)
	Leaf(img, w*75/100, h*85/100, 28, pal.Primary)

	textY := h - 150
	DrawCenteredText(img, opts.Fonts.Name, p.Name, textY, color.White, true)
	DrawCenteredText(img, opts.Fonts.Label, "Grade: "+string(p.Grade), textY+50, color.White, false)

	strokeRect(img, 0, 0, w-1, h-1, 3, pal.Accent)
	return img
}

// Placeholder composes the generic "Image Coming Soon" image used for
// products without artwork: a gray diagonal gradient with a centered caption.
func Placeholder(opts Options) *image.RGBA {
	w, h := opts.Size, opts.Size
	img := Gradient(w, h,
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
		color.RGBA{R: 150, G: 150, B: 150, A: 255},
		Diagonal)
	DrawCenteredText(img, opts.Fonts.Caption, "Image Coming Soon", h*380/800,
		color.RGBA{R: 100, G: 100, B: 100, A: 255}, false)
	return img
}

// Thumbnail downscales img proportionally to fit within a max×max box.
// Images already inside the box are returned unscaled.
func Thumbnail(img image.Image, max int) image.Image {
	b := img.Bounds()
	if b.Dx() <= max && b.Dy() <= max {
		return img
	}
	return imaging.Fit(img, max, max, imaging.Lanczos)
}
