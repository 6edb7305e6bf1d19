package render

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/webp"
)

// Encode writes img to outPath in the given format. Quality applies to jpeg
// and webp; png ignores it.
func Encode(img image.Image, outPath, format string, quality int) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "webp":
		if err := webp.Encode(f, img, webp.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encoding webp: %w", err)
		}
	case "png":
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
	default: // jpeg
		if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encoding jpeg: %w", err)
		}
	}
	return f.Close()
}

// FormatExtension returns the file extension (without dot) for a format name.
func FormatExtension(format string) string {
	switch format {
	case "webp":
		return "webp"
	case "png":
		return "png"
	default:
		return "jpg"
	}
}

// NormalizeFormats lowercases and dedupes the configured output formats,
// dropping anything unrecognised. The result always starts with "jpeg" so
// the canonical <slug>.jpg outputs exist regardless of configuration.
func NormalizeFormats(configFormats []string) []string {
	formats := []string{"jpeg"}
	seen := map[string]bool{"jpeg": true}
	for _, f := range configFormats {
		f = strings.ToLower(f)
		if f == "jpg" {
			f = "jpeg"
		}
		switch f {
		case "jpeg", "png", "webp":
			if !seen[f] {
				seen[f] = true
				formats = append(formats, f)
			}
		}
	}
	return formats
}
