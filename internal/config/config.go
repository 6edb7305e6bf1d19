// Package config handles loading and defaulting the assetgen configuration:
// output directories, image parameters, and font paths.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level assetgen configuration.
type Config struct {
	Brand  string       `yaml:"brand"  mapstructure:"brand"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Images ImageConfig  `yaml:"images" mapstructure:"images"`
	Fonts  FontConfig   `yaml:"fonts"  mapstructure:"fonts"`
}

// OutputConfig holds the destination paths for each pipeline.
type OutputConfig struct {
	Images   string `yaml:"images"   mapstructure:"images"`
	Docs     string `yaml:"docs"     mapstructure:"docs"`
	Workbook string `yaml:"workbook" mapstructure:"workbook"`
}

// ImageConfig controls product image generation.
type ImageConfig struct {
	Size         int      `yaml:"size"         mapstructure:"size"`
	ThumbSize    int      `yaml:"thumbSize"    mapstructure:"thumbSize"`
	Quality      int      `yaml:"quality"      mapstructure:"quality"`
	ThumbQuality int      `yaml:"thumbQuality" mapstructure:"thumbQuality"`
	Formats      []string `yaml:"formats"      mapstructure:"formats"`
	TextureSeed  int64    `yaml:"textureSeed"  mapstructure:"textureSeed"`
}

// FontConfig points at the preferred TTF pair. Missing files are tolerated;
// renderers substitute a built-in face.
type FontConfig struct {
	Bold    string `yaml:"bold"    mapstructure:"bold"`
	Regular string `yaml:"regular" mapstructure:"regular"`
}

// Default returns a Config populated with the stock generation parameters.
func Default() *Config {
	return &Config{
		Brand: "Matcha Trading Platform",
		Output: OutputConfig{
			Images:   filepath.Join("assets", "images"),
			Docs:     filepath.Join("assets", "docs"),
			Workbook: filepath.Join("assets", "docs", "catalog.xlsx"),
		},
		Images: ImageConfig{
			Size:         800,
			ThumbSize:    400,
			Quality:      90,
			ThumbQuality: 85,
			Formats:      []string{"jpeg"},
			TextureSeed:  42,
		},
		Fonts: FontConfig{
			Bold:    "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			Regular: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		},
	}
}

// Load reads a configuration file (YAML or TOML) and returns a Config with
// defaults applied first and file values overlaid on top. A missing file is
// not an error: generation works with zero setup, so defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	v := viper.New()

	// Determine format from extension.
	ext := strings.TrimPrefix(filepath.Ext(configPath), ".")
	switch ext {
	case "yaml", "yml":
		v.SetConfigType("yaml")
	case "toml":
		v.SetConfigType("toml")
	default:
		// Default to yaml if unrecognised.
		v.SetConfigType("yaml")
	}

	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
