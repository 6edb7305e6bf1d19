package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/matchatrade/assetgen/internal/catalog"
	"github.com/matchatrade/assetgen/internal/config"
	"github.com/matchatrade/assetgen/internal/specsheet"
)

// Docs runs the specification sheet pipeline: one PDF per catalog entry,
// named <slug>-spec.pdf. Write failures abort the batch.
func Docs(cfg *config.Config, opts Options) (*Result, error) {
	start := time.Now()
	result := &Result{}

	outDir := cfg.Output.Docs
	if err := EnsureDir(outDir); err != nil {
		return nil, err
	}

	composer := specsheet.NewComposer(cfg.Brand, cfg.Fonts.Regular, cfg.Fonts.Bold)

	logf(opts, "Generating PDF specification sheets...\n")
	if opts.Verbose {
		logf(opts, "  output: %s, brand: %s\n", outDir, cfg.Brand)
	}

	for _, p := range catalog.Products() {
		name := p.Slug + "-spec.pdf"
		path := filepath.Join(outDir, name)
		if err := writeSheet(composer, p, path); err != nil {
			return nil, err
		}
		result.FilesWritten++
		logf(opts, "  ✓ Created: %s\n", name)
	}

	size, err := DirSize(outDir)
	if err != nil {
		return nil, fmt.Errorf("calculating output size: %w", err)
	}
	result.OutputSize = size
	result.Duration = time.Since(start)

	logf(opts, "\nGenerated %d PDF specification sheets in %s (%s)\n",
		result.FilesWritten, outDir, result.Duration.Round(time.Millisecond))
	return result, nil
}

func writeSheet(composer *specsheet.Composer, p catalog.Product, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := composer.Render(p, f); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}
