package main

import (
	"github.com/matchatrade/assetgen/internal/gen"
	"github.com/spf13/cobra"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Generate product images",
	Long:  "Generate a gradient product image and thumbnail per catalog entry, plus the generic placeholder image.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if dest, _ := cmd.Flags().GetString("destination"); dest != "" {
			cfg.Output.Images = dest
		}
		_, err = gen.Images(cfg, genOptions(cmd))
		return err
	},
}

func init() {
	imagesCmd.Flags().StringP("destination", "d", "", "override the images output directory")
	rootCmd.AddCommand(imagesCmd)
}
