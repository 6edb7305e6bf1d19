package main

import (
	"github.com/matchatrade/assetgen/internal/gen"
	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate every asset type",
	Long:  "Run the image, spec sheet, and workbook pipelines in sequence.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		opts := genOptions(cmd)

		if _, err := gen.Images(cfg, opts); err != nil {
			return err
		}
		if _, err := gen.Docs(cfg, opts); err != nil {
			return err
		}
		_, err = gen.Workbook(cfg, opts)
		return err
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
