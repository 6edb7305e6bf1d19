package render

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontSet holds the faces used when compositing product images. Faces are
// sized for the default 800×800 canvas.
type FontSet struct {
	Name    font.Face // product name, bold
	Label   font.Face // grade label
	Caption font.Face // placeholder caption
}

// LoadFonts builds a FontSet from the given TTF paths. A missing or
// unparsable font is replaced by the built-in bitmap face rather than
// reported; rendering must never abort on absent fonts.
func LoadFonts(boldPath, regularPath string) FontSet {
	return FontSet{
		Name:    loadFace(boldPath, 36),
		Label:   loadFace(regularPath, 24),
		Caption: loadFace(regularPath, 48),
	}
}

// loadFace parses the TTF at path at the given point size, falling back to
// basicfont.Face7x13 on any failure.
func loadFace(path string, size float64) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
