package main

import (
	"fmt"

	"github.com/matchatrade/assetgen/internal/config"
	"github.com/matchatrade/assetgen/internal/gen"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "assetgen",
	Short: "Placeholder asset generator for the matcha demo platform",
	Long:  "Assetgen synthesizes placeholder marketing assets (product images, spec sheet PDFs, and a catalog workbook) from the built-in product catalog.",
}

func init() {
	rootCmd.PersistentFlags().String("config", "assetgen.yaml", "path to config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configured file and applies any per-command overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// genOptions builds driver options from the command's flags and output.
func genOptions(cmd *cobra.Command) gen.Options {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	return gen.Options{Out: cmd.OutOrStdout(), Verbose: verbose}
}
