package specsheet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/matchatrade/assetgen/internal/catalog"
)

// Theme colors (matcha greens plus neutral grays).
var (
	matchaGreen = [3]int{0x4C, 0x8C, 0x4A}
	matchaLight = [3]int{0x90, 0xBE, 0x6D}
	matchaDark  = [3]int{0x2D, 0x5A, 0x27}
	gray        = [3]int{128, 128, 128}
	lightFill   = [3]int{245, 245, 245}
)

// Page geometry in points: letter with 0.75in side and 0.5in top/bottom
// margins leaves a 7in content width.
const (
	marginSide   = 54.0
	marginTopBot = 36.0
	contentWidth = 504.0
	labelWidth   = 108.0 // 1.5in key/value label column
	valueWidth   = 396.0
	gridColWidth = 168.0 // three equal nutrition columns
)

// nowFunc is the clock used for the footer timestamp; tests override it.
var nowFunc = time.Now

// Composer renders specification sheets. The preferred TTF pair is embedded
// for full Unicode output when both files exist; otherwise the built-in
// Helvetica core font is used with codepage translation, mirroring the
// tolerate-missing-fonts posture of the image pipeline.
type Composer struct {
	brand   string
	regular string
	bold    string
}

// NewComposer returns a Composer branded with the given platform name.
func NewComposer(brand, regularTTF, boldTTF string) *Composer {
	return &Composer{brand: brand, regular: regularTTF, bold: boldTTF}
}

// Render builds the block sequence for p and writes the finished PDF to w.
// Rendering-backend errors propagate unhandled.
func (c *Composer) Render(p catalog.Product, w io.Writer) error {
	blocks := Build(p, c.brand, nowFunc())

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(marginSide, marginTopBot, marginSide)
	pdf.SetAutoPageBreak(true, marginTopBot)

	family := "Helvetica"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if fileExists(c.regular) && fileExists(c.bold) {
		pdf.AddUTF8Font("sheet", "", c.regular)
		pdf.AddUTF8Font("sheet", "B", c.bold)
		family = "sheet"
		tr = func(s string) string { return s }
	}

	r := &sheetRenderer{pdf: pdf, family: family, tr: tr}
	pdf.AddPage()
	for _, b := range blocks {
		r.render(b)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("composing sheet for %s: %w", p.Slug, err)
	}
	return pdf.Output(w)
}

// sheetRenderer holds the mutable fpdf state while walking a block sequence.
type sheetRenderer struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

func (r *sheetRenderer) render(b Block) {
	switch b.Kind {
	case KindHeader:
		r.header(b)
	case KindSubtitle:
		r.subtitle(b)
	case KindSection:
		r.section(b)
	case KindKVTable:
		r.kvTable(b)
	case KindGrid:
		r.grid(b)
	case KindParagraph:
		r.paragraph(b)
	case KindFooter:
		r.footer(b)
	}
}

// header draws the icon glyph, the product title, and the grade badge on a
// single 40pt row.
func (r *sheetRenderer) header(b Block) {
	pdf := r.pdf
	y := pdf.GetY()

	// Icon: a filled powder-disc motif centered in a 1in column.
	pdf.SetFillColor(matchaGreen[0], matchaGreen[1], matchaGreen[2])
	pdf.Circle(marginSide+36, y+20, 14, "F")

	pdf.SetXY(marginSide+72, y)
	pdf.SetFont(r.family, "B", 24)
	pdf.SetTextColor(matchaDark[0], matchaDark[1], matchaDark[2])
	pdf.CellFormat(324, 40, r.tr(b.Title), "", 0, "CM", false, 0, "")

	pdf.SetFont(r.family, "B", 12)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(matchaGreen[0], matchaGreen[1], matchaGreen[2])
	pdf.CellFormat(labelWidth, 40, r.tr(b.Badge), "", 1, "CM", true, 0, "")

	pdf.Ln(10)
}

func (r *sheetRenderer) subtitle(b Block) {
	pdf := r.pdf
	pdf.SetFont(r.family, "", 11)
	pdf.SetTextColor(gray[0], gray[1], gray[2])
	pdf.CellFormat(contentWidth, 16, r.tr(b.Text), "", 1, "C", false, 0, "")
	pdf.Ln(14)
}

func (r *sheetRenderer) section(b Block) {
	pdf := r.pdf
	pdf.SetFont(r.family, "B", 14)
	pdf.SetTextColor(matchaGreen[0], matchaGreen[1], matchaGreen[2])
	pdf.SetDrawColor(matchaGreen[0], matchaGreen[1], matchaGreen[2])
	pdf.SetLineWidth(1)
	pdf.CellFormat(contentWidth, 22, "  "+r.tr(b.Title), "1", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (r *sheetRenderer) kvTable(b Block) {
	pdf := r.pdf
	startY := pdf.GetY()
	for _, row := range b.Rows {
		pdf.SetFont(r.family, "B", 10)
		pdf.SetTextColor(matchaDark[0], matchaDark[1], matchaDark[2])
		if b.Boxed {
			pdf.SetFillColor(lightFill[0], lightFill[1], lightFill[2])
		}
		pdf.CellFormat(labelWidth, 16, r.tr(row[0]), "", 0, "L", b.Boxed, 0, "")

		pdf.SetFont(r.family, "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(valueWidth, 16, r.tr(row[1]), "", 1, "L", b.Boxed, 0, "")
	}
	if b.Boxed {
		pdf.SetDrawColor(matchaGreen[0], matchaGreen[1], matchaGreen[2])
		pdf.SetLineWidth(1)
		pdf.Rect(marginSide, startY, contentWidth, pdf.GetY()-startY, "D")
	}
	pdf.Ln(12)
}

func (r *sheetRenderer) grid(b Block) {
	pdf := r.pdf
	pdf.SetDrawColor(matchaGreen[0], matchaGreen[1], matchaGreen[2])
	pdf.SetLineWidth(1)
	for i, row := range b.Grid {
		head := i == 0
		if head {
			pdf.SetFont(r.family, "B", 10)
			pdf.SetFillColor(matchaLight[0], matchaLight[1], matchaLight[2])
		} else {
			pdf.SetFont(r.family, "", 10)
		}
		pdf.SetTextColor(0, 0, 0)
		for j, cell := range row {
			ln := 0
			if j == len(row)-1 {
				ln = 1
			}
			pdf.CellFormat(gridColWidth, 24, r.tr(cell), "1", ln, "C", head, 0, "")
		}
	}
	pdf.Ln(12)
}

func (r *sheetRenderer) paragraph(b Block) {
	pdf := r.pdf
	pdf.SetFont(r.family, "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(contentWidth, 14, r.tr(b.Text), "", "L", false)
	pdf.Ln(12)
}

func (r *sheetRenderer) footer(b Block) {
	pdf := r.pdf
	pdf.SetFont(r.family, "", 8)
	pdf.SetTextColor(gray[0], gray[1], gray[2])
	pdf.CellFormat(contentWidth, 12, r.tr(b.Text), "", 1, "L", false, 0, "")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
