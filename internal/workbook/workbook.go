// Package workbook exports the product catalog as an XLSX workbook for
// sales-team use.
package workbook

import (
	"fmt"
	"strings"

	"github.com/matchatrade/assetgen/internal/catalog"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Catalog"

var headers = []string{
	"Slug", "Name", "Grade", "Region", "Origin", "Harvest", "Cultivation",
	"Processing", "Mesh Size", "Color", "Flavor", "Aroma", "Caffeine",
	"L-Theanine", "Catechins", "Shelf Life", "Storage", "Certifications",
	"Uses", "Minimum Order", "Lead Time", "Price Range",
}

// Write creates an XLSX workbook at path with one styled header row and one
// row per product in catalog order. List fields are joined with ", ".
func Write(products []catalog.Product, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4C8C4A"}},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("resolving header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("writing header %q: %w", h, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("styling header row: %w", err)
	}

	for i, p := range products {
		row := i + 2
		values := []string{
			p.Slug, p.Name, string(p.Grade), p.Region, p.Origin, p.Harvest,
			p.Cultivation, p.Processing, p.Mesh, p.Color, p.Flavor, p.Aroma,
			p.Caffeine, p.LTheanine, p.Catechins, p.ShelfLife, p.Storage,
			strings.Join(p.Certifications, ", "),
			strings.Join(p.Uses, ", "),
			p.MOQ, p.LeadTime, p.PriceRange,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("resolving cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("writing row for %s: %w", p.Slug, err)
			}
		}
	}

	// Widen the identifying columns; the rest keep the default width.
	if err := f.SetColWidth(sheetName, "A", "B", 26); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
