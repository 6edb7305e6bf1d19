package main

import (
	"github.com/matchatrade/assetgen/internal/gen"
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate PDF specification sheets",
	Long:  "Generate one PDF specification sheet per catalog entry.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if dest, _ := cmd.Flags().GetString("destination"); dest != "" {
			cfg.Output.Docs = dest
		}
		_, err = gen.Docs(cfg, genOptions(cmd))
		return err
	},
}

func init() {
	docsCmd.Flags().StringP("destination", "d", "", "override the docs output directory")
	rootCmd.AddCommand(docsCmd)
}
