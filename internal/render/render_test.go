package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/matchatrade/assetgen/internal/catalog"
)

// channelsClose reports whether every channel of got is within tol of want.
func channelsClose(got, want color.RGBA, tol int) bool {
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		return d
	}
	return diff(got.R, want.R) <= tol && diff(got.G, want.G) <= tol && diff(got.B, want.B) <= tol
}

// ---------------------------------------------------------------
// Gradient tests
// ---------------------------------------------------------------

func TestGradient_BoundaryColors(t *testing.T) {
	c1 := color.RGBA{R: 144, G: 190, B: 109, A: 255}
	c2 := color.RGBA{R: 76, G: 140, B: 74, A: 255}
	const w, h = 200, 200

	tests := []struct {
		name string
		dir  Direction
		endX int
		endY int
	}{
		{"diagonal", Diagonal, w - 1, h - 1},
		{"vertical", Vertical, 0, h - 1},
		{"horizontal", Horizontal, w - 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Gradient(w, h, c1, c2, tt.dir)

			if got := img.RGBAAt(0, 0); got != c1 {
				t.Errorf("pixel (0,0) = %v; want %v", got, c1)
			}
			// The last pixel's blend parameter is just short of 1, so allow
			// for the residual interpolation step plus truncation.
			if got := img.RGBAAt(tt.endX, tt.endY); !channelsClose(got, c2, 3) {
				t.Errorf("pixel (%d,%d) = %v; want close to %v", tt.endX, tt.endY, got, c2)
			}
		})
	}
}

func TestGradient_MidpointBlend(t *testing.T) {
	c1 := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	c2 := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	img := Gradient(100, 100, c1, c2, Vertical)

	// At y=50, t=0.5 exactly.
	want := color.RGBA{R: 100, G: 50, B: 25, A: 255}
	if got := img.RGBAAt(30, 50); got != want {
		t.Errorf("pixel (30,50) = %v; want %v", got, want)
	}
}

// ---------------------------------------------------------------
// Decoration tests
// ---------------------------------------------------------------

func TestPowderCircle_Reproducible(t *testing.T) {
	base := color.RGBA{R: 45, G: 90, B: 39, A: 255}

	draw := func(seed int64) *image.RGBA {
		img := image.NewRGBA(image.Rect(0, 0, 120, 120))
		PowderCircle(img, 60, 60, 40, base, seed)
		return img
	}

	a, b := draw(42), draw(42)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same seed produced different textures")
	}

	c := draw(7)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("different seeds produced identical textures")
	}
}

func TestPowderCircle_CenterIsFilled(t *testing.T) {
	base := color.RGBA{R: 45, G: 90, B: 39, A: 255}
	img := image.NewRGBA(image.Rect(0, 0, 120, 120))
	PowderCircle(img, 60, 60, 40, base, DefaultTextureSeed)

	// Outside the disc stays untouched; inside is base or a dot variant.
	if got := img.RGBAAt(5, 5); got.A != 0 {
		t.Errorf("pixel outside disc = %v; want untouched", got)
	}
	if got := img.RGBAAt(60, 60); got.A == 0 {
		t.Error("disc center untouched; want filled")
	}
}

func TestLeaf_DrawsDarkenedEllipse(t *testing.T) {
	c := color.RGBA{R: 100, G: 160, B: 90, A: 255}
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	Leaf(img, 10, 10, 20, c)

	want := color.RGBA{R: 70, G: 130, B: 60, A: 255}
	// Ellipse center: (10+20, 10+10).
	if got := img.RGBAAt(30, 20); got != want {
		t.Errorf("leaf center = %v; want %v", got, want)
	}
	// Stem extends 10px below the ellipse.
	if got := img.RGBAAt(30, 38); got != want {
		t.Errorf("stem pixel = %v; want %v", got, want)
	}
}

func TestLightenDarkenClamp(t *testing.T) {
	if got := lighten(color.RGBA{R: 250, G: 10, B: 128, A: 255}, 30); got.R != 255 || got.G != 40 {
		t.Errorf("lighten = %v; want clamped R=255, G=40", got)
	}
	if got := darken(color.RGBA{R: 10, G: 200, B: 5, A: 255}, 20); got.R != 0 || got.G != 180 {
		t.Errorf("darken = %v; want clamped R=0, G=180", got)
	}
}

// ---------------------------------------------------------------
// Composition tests
// ---------------------------------------------------------------

// testOptions returns small, font-fallback options to keep tests fast.
func testOptions(size int) Options {
	return Options{
		Size:        size,
		Fonts:       LoadFonts("/nonexistent/bold.ttf", "/nonexistent/regular.ttf"),
		TextureSeed: DefaultTextureSeed,
	}
}

func TestProductImage_UsesGradePalette(t *testing.T) {
	p := catalog.Product{Slug: "cafe-blend-matcha", Name: "Cafe Blend Matcha", Grade: catalog.GradeCulinary}
	img := ProductImage(p, testOptions(200))

	pal := catalog.PaletteFor(catalog.GradeCulinary)

	// The border owns the outermost 3px ring.
	if got := img.RGBAAt(0, 0); got != pal.Accent {
		t.Errorf("border pixel = %v; want accent %v", got, pal.Accent)
	}
	// Just inside the border the diagonal gradient starts at Secondary.
	if got := img.RGBAAt(5, 5); !channelsClose(got, pal.Secondary, 4) {
		t.Errorf("top-left gradient pixel = %v; want close to secondary %v", got, pal.Secondary)
	}
}

func TestProductImage_UnknownGradeFallsBack(t *testing.T) {
	p := catalog.Product{Slug: "mystery", Name: "Mystery Matcha", Grade: "Artisanal"}
	img := ProductImage(p, testOptions(200))

	pal := catalog.PaletteFor(catalog.GradePremium)
	if got := img.RGBAAt(0, 0); got != pal.Accent {
		t.Errorf("border pixel = %v; want default accent %v", got, pal.Accent)
	}
}

func TestProductImage_Reproducible(t *testing.T) {
	p := catalog.Product{Slug: "cafe-blend-matcha", Name: "Cafe Blend Matcha", Grade: catalog.GradeCulinary}
	opts := testOptions(200)

	a := ProductImage(p, opts)
	b := ProductImage(p, opts)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same record differ")
	}
}

func TestPlaceholder_GrayGradient(t *testing.T) {
	img := Placeholder(testOptions(200))

	want := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("pixel (0,0) = %v; want %v", got, want)
	}
}

func TestThumbnail_FitsWithinBox(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 600))
	thumb := Thumbnail(src, 400)

	b := thumb.Bounds()
	if b.Dx() > 400 || b.Dy() > 400 {
		t.Errorf("thumbnail %dx%d exceeds 400x400", b.Dx(), b.Dy())
	}
	// 4:3 source scales to exactly 400x300.
	if b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("thumbnail = %dx%d; want 400x300", b.Dx(), b.Dy())
	}
}

func TestThumbnail_NoUpscaling(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 80))
	thumb := Thumbnail(src, 400)

	b := thumb.Bounds()
	if b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("small image resized to %dx%d; want unchanged 100x80", b.Dx(), b.Dy())
	}
}

// ---------------------------------------------------------------
// Format helpers
// ---------------------------------------------------------------

func TestNormalizeFormats(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty defaults to jpeg", nil, []string{"jpeg"}},
		{"jpeg only", []string{"jpeg"}, []string{"jpeg"}},
		{"jpg alias", []string{"JPG"}, []string{"jpeg"}},
		{"extra formats keep jpeg first", []string{"webp", "png"}, []string{"jpeg", "webp", "png"}},
		{"dedupe", []string{"webp", "webp", "jpeg"}, []string{"jpeg", "webp"}},
		{"unknown dropped", []string{"tiff", "webp"}, []string{"jpeg", "webp"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFormats(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeFormats(%v) = %v; want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("NormalizeFormats(%v) = %v; want %v", tt.in, got, tt.want)
					break
				}
			}
		})
	}
}

func TestFormatExtension(t *testing.T) {
	if got := FormatExtension("jpeg"); got != "jpg" {
		t.Errorf("jpeg extension = %q; want jpg", got)
	}
	if got := FormatExtension("webp"); got != "webp" {
		t.Errorf("webp extension = %q; want webp", got)
	}
	if got := FormatExtension("png"); got != "png" {
		t.Errorf("png extension = %q; want png", got)
	}
}
