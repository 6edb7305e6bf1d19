package gen

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/matchatrade/assetgen/internal/catalog"
	"github.com/matchatrade/assetgen/internal/config"
	"github.com/matchatrade/assetgen/internal/render"
)

// Images runs the product image pipeline: one full image and one thumbnail
// per catalog entry, plus the generic placeholder. Filenames derive from each
// record's slug, so repeated runs overwrite the same paths. The first write
// failure aborts the batch, leaving earlier files in place.
func Images(cfg *config.Config, opts Options) (*Result, error) {
	start := time.Now()
	result := &Result{}

	outDir := cfg.Output.Images
	if err := EnsureDir(outDir); err != nil {
		return nil, err
	}

	fonts := render.LoadFonts(cfg.Fonts.Bold, cfg.Fonts.Regular)
	renderOpts := render.Options{
		Size:        cfg.Images.Size,
		Fonts:       fonts,
		TextureSeed: cfg.Images.TextureSeed,
	}
	formats := render.NormalizeFormats(cfg.Images.Formats)

	logf(opts, "Generating product images...\n")
	if opts.Verbose {
		logf(opts, "  output: %s, size: %d, thumb: %d, formats: %v\n",
			outDir, cfg.Images.Size, cfg.Images.ThumbSize, formats)
	}

	for _, p := range catalog.Products() {
		img := render.ProductImage(p, renderOpts)
		if err := writeVariants(img, outDir, p.Slug, formats, cfg.Images.Quality, opts, result); err != nil {
			return nil, err
		}

		thumb := render.Thumbnail(img, cfg.Images.ThumbSize)
		if err := writeVariants(thumb, outDir, p.Slug+"-thumb", formats, cfg.Images.ThumbQuality, opts, result); err != nil {
			return nil, err
		}
	}

	// One generic placeholder, independent of the catalog.
	placeholder := render.Placeholder(renderOpts)
	if err := writeVariants(placeholder, outDir, "placeholder", formats, cfg.Images.ThumbQuality, opts, result); err != nil {
		return nil, err
	}

	size, err := DirSize(outDir)
	if err != nil {
		return nil, fmt.Errorf("calculating output size: %w", err)
	}
	result.OutputSize = size
	result.Duration = time.Since(start)

	logf(opts, "\nGenerated %d images in %s (%s)\n", result.FilesWritten, outDir, result.Duration.Round(time.Millisecond))
	return result, nil
}

// writeVariants encodes img under every configured format as {stem}.{ext}.
func writeVariants(img image.Image, outDir, stem string, formats []string, quality int, opts Options, result *Result) error {
	for _, format := range formats {
		name := stem + "." + render.FormatExtension(format)
		path := filepath.Join(outDir, name)
		if err := render.Encode(img, path, format, quality); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		result.FilesWritten++
		logf(opts, "  ✓ Created: %s\n", name)
	}
	return nil
}
