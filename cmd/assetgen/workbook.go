package main

import (
	"github.com/matchatrade/assetgen/internal/gen"
	"github.com/spf13/cobra"
)

var workbookCmd = &cobra.Command{
	Use:   "workbook",
	Short: "Export the catalog workbook",
	Long:  "Export the full product catalog as an XLSX workbook for the sales team.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if dest, _ := cmd.Flags().GetString("destination"); dest != "" {
			cfg.Output.Workbook = dest
		}
		_, err = gen.Workbook(cfg, genOptions(cmd))
		return err
	},
}

func init() {
	workbookCmd.Flags().StringP("destination", "d", "", "override the workbook output path")
	rootCmd.AddCommand(workbookCmd)
}
