package catalog

import "image/color"

// Palette is the color triple associated with a grade. Product images use
// Secondary→Primary for the background gradient and Accent for the powder
// circle and border.
type Palette struct {
	Primary   color.RGBA
	Secondary color.RGBA
	Accent    color.RGBA
}

// Matcha green variations per grade.
var palettes = map[Grade]Palette{
	GradeCeremonial: {
		Primary:   color.RGBA{R: 76, G: 140, B: 74, A: 255},   // deep matcha green
		Secondary: color.RGBA{R: 144, G: 190, B: 109, A: 255}, // light matcha
		Accent:    color.RGBA{R: 45, G: 90, B: 39, A: 255},    // dark forest
	},
	GradePremium: {
		Primary:   color.RGBA{R: 85, G: 150, B: 80, A: 255},
		Secondary: color.RGBA{R: 160, G: 200, B: 120, A: 255},
		Accent:    color.RGBA{R: 50, G: 100, B: 45, A: 255},
	},
	GradeCulinary: {
		Primary:   color.RGBA{R: 100, G: 160, B: 90, A: 255},
		Secondary: color.RGBA{R: 170, G: 210, B: 130, A: 255},
		Accent:    color.RGBA{R: 60, G: 110, B: 50, A: 255},
	},
	GradeCompetition: {
		Primary:   color.RGBA{R: 60, G: 120, B: 60, A: 255},
		Secondary: color.RGBA{R: 130, G: 180, B: 100, A: 255},
		Accent:    color.RGBA{R: 35, G: 80, B: 30, A: 255},
	},
}

// PaletteFor returns the palette for a grade. Unrecognised grades get the
// Premium palette so rendering never fails on bad data.
func PaletteFor(g Grade) Palette {
	if p, ok := palettes[g]; ok {
		return p
	}
	return palettes[GradePremium]
}
