package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sparkvibe/sparkvibe-cli/internal/catalog"
)

func newProductsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the SparkVibe product showcase",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, product := range catalog.All() {
				availability := ""
				if !product.InStock {
					availability = "\t(out of stock)"
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t$%.2f%s\n",
					product.ID, product.Name, product.Price, availability)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}
