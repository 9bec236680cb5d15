package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesliupenn/vehicle-simulator/internal/catalog"
)

func newCategoriesCmd() *cobra.Command {
	var catalogFile string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the telemetry categories and subcategories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			if catalogFile != "" {
				var err error
				cat, err = catalog.Load(catalogFile)
				if err != nil {
					return err
				}
			}

			fmt.Printf("Catalog: %s\n", cat.Name)
			if cat.Description != "" {
				fmt.Printf("Description: %s\n", cat.Description)
			}
			fmt.Printf("Categories: %d, subcategories: %d\n\n",
				len(cat.Categories), cat.TotalSubcategories())

			for _, c := range cat.Categories {
				fmt.Printf("  - %s: %d subcategories\n", c.Name, len(c.Subcategories))
				fmt.Printf("      %s\n", strings.Join(c.Subcategories, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogFile, "catalog", "", "YAML catalog file overriding the built-in DIMO catalog")

	return cmd
}
