// Package specsheet builds and renders PDF specification sheets for catalog
// products. A sheet is first assembled as an ordered sequence of layout
// blocks, then rendered onto a fixed letter-size page layout.
package specsheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/matchatrade/assetgen/internal/catalog"
)

// Separator joins list values (certifications, uses) on a sheet.
const Separator = " • " // bullet

// Kind identifies the layout treatment of a Block.
type Kind int

const (
	KindHeader Kind = iota // icon glyph, product name, grade badge
	KindSubtitle
	KindSection // bordered section heading
	KindKVTable // bold label column + value column
	KindGrid    // gridded table, first row is the header
	KindParagraph
	KindFooter
)

// Block is one layout element of a rendered sheet. Only the fields relevant
// to its Kind are set.
type Block struct {
	Kind  Kind
	Title string      // header: product name; section: heading text
	Badge string      // header: grade badge text
	Text  string      // subtitle, paragraph, and footer content
	Rows  [][2]string // key/value rows
	Grid  [][]string  // grid rows
	Boxed bool        // key/value table drawn with fill and outer border
}

// Build assembles the ordered block sequence for one product. The
// Certifications section is omitted entirely when the product has none;
// every other section is always present.
func Build(p catalog.Product, brand string, now time.Time) []Block {
	blocks := []Block{
		{Kind: KindHeader, Title: p.Name, Badge: string(p.Grade) + " Grade"},
		{Kind: KindSubtitle, Text: fmt.Sprintf("Origin: %s, %s", p.Region, p.Origin)},

		{Kind: KindSection, Title: "PRODUCT OVERVIEW"},
		{Kind: KindKVTable, Rows: [][2]string{
			{"Harvest:", p.Harvest},
			{"Cultivation:", p.Cultivation},
			{"Processing:", p.Processing},
			{"Mesh Size:", p.Mesh},
		}},

		{Kind: KindSection, Title: "SENSORY PROFILE"},
		{Kind: KindKVTable, Rows: [][2]string{
			{"Color:", p.Color},
			{"Flavor:", p.Flavor},
			{"Aroma:", p.Aroma},
		}},

		{Kind: KindSection, Title: "NUTRITIONAL INFORMATION (per gram)"},
		{Kind: KindGrid, Grid: [][]string{
			{"Caffeine", "L-Theanine", "Catechins"},
			{p.Caffeine, p.LTheanine, p.Catechins},
		}},

		{Kind: KindSection, Title: "STORAGE & SHELF LIFE"},
		{Kind: KindKVTable, Rows: [][2]string{
			{"Shelf Life:", p.ShelfLife},
			{"Storage:", p.Storage},
		}},
	}

	if len(p.Certifications) > 0 {
		blocks = append(blocks,
			Block{Kind: KindSection, Title: "CERTIFICATIONS"},
			Block{Kind: KindParagraph, Text: "✓ " + strings.Join(p.Certifications, Separator)},
		)
	}

	blocks = append(blocks,
		Block{Kind: KindSection, Title: "RECOMMENDED USES"},
		Block{Kind: KindParagraph, Text: strings.Join(p.Uses, Separator)},

		Block{Kind: KindSection, Title: "ORDERING INFORMATION"},
		Block{Kind: KindKVTable, Boxed: true, Rows: [][2]string{
			{"Minimum Order:", p.MOQ},
			{"Lead Time:", p.LeadTime},
			{"Price Range:", p.PriceRange},
		}},

		Block{Kind: KindFooter, Text: fmt.Sprintf("Document generated: %s | %s", now.Format("2006-01-02"), brand)},
		Block{Kind: KindFooter, Text: "For the most current information, please contact your sales representative."},
	)

	return blocks
}
