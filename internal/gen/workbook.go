package gen

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/matchatrade/assetgen/internal/catalog"
	"github.com/matchatrade/assetgen/internal/config"
	"github.com/matchatrade/assetgen/internal/workbook"
)

// Workbook exports the catalog as a single XLSX workbook at the configured
// path.
func Workbook(cfg *config.Config, opts Options) (*Result, error) {
	start := time.Now()

	path := cfg.Output.Workbook
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}

	logf(opts, "Generating catalog workbook...\n")
	if opts.Verbose {
		logf(opts, "  output: %s, products: %d\n", path, len(catalog.Products()))
	}

	if err := workbook.Write(catalog.Products(), path); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	logf(opts, "  ✓ Created: %s\n", filepath.Base(path))

	size, err := DirSize(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("calculating output size: %w", err)
	}

	result := &Result{FilesWritten: 1, Duration: time.Since(start), OutputSize: size}
	logf(opts, "\nGenerated catalog workbook at %s (%s)\n", path, result.Duration.Round(time.Millisecond))
	return result, nil
}
