package main

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/matchatrade/assetgen/internal/catalog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the product catalog",
	Long:  "List the built-in product catalog as a table, or export it with --format yaml, toml, or json.",
	RunE: func(cmd *cobra.Command, args []string) error {
		products := catalog.Products()
		out := cmd.OutOrStdout()

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "":
			for _, p := range products {
				fmt.Fprintf(out, "%-25s %-12s %-25s %s\n", p.Slug, p.Grade, p.Name, p.PriceRange)
			}
			return nil
		case "yaml":
			data, err := yaml.Marshal(products)
			if err != nil {
				return fmt.Errorf("encoding catalog as yaml: %w", err)
			}
			_, err = out.Write(data)
			return err
		case "toml":
			// TOML has no top-level arrays; wrap in a named table array.
			wrapper := struct {
				Products []catalog.Product `toml:"product"`
			}{products}
			if err := toml.NewEncoder(out).Encode(wrapper); err != nil {
				return fmt.Errorf("encoding catalog as toml: %w", err)
			}
			return nil
		case "json":
			data, err := json.MarshalIndent(products, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding catalog as json: %w", err)
			}
			_, err = fmt.Fprintf(out, "%s\n", data)
			return err
		default:
			return fmt.Errorf("unknown format %q (want yaml, toml, or json)", format)
		}
	},
}

func init() {
	listCmd.Flags().String("format", "", "export format: yaml, toml, or json")
	rootCmd.AddCommand(listCmd)
}
