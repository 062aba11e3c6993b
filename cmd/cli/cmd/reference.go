// Package cmd - reference command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tariff-optimizer/core/output"
	"tariff-optimizer/core/reference"
)

// referenceCmd lists the constant reference data
var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "List reference data (categories, countries)",
}

// referenceCategoriesCmd lists catalog categories
var referenceCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories with subcategories",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range reference.Categories() {
			subs, err := reference.SubcategoriesOf(name)
			if err != nil {
				return err
			}
			line := name
			if reference.IsExcluded(name) {
				line += " (excluded from new tariffs)"
			}
			fmt.Println(line)
			if len(subs) > 0 {
				fmt.Printf("  %s\n", strings.Join(subs, ", "))
			}
		}
		return nil
	},
}

// referenceCountriesCmd lists selectable sourcing countries with rates
var referenceCountriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List selectable sourcing countries with tariff rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range reference.SelectableCountries() {
			marker := ""
			if !reference.IsListed(name) {
				marker = " (default rate)"
			}
			fmt.Printf("%-34s %s%s\n", name,
				output.FormatPercent(reference.TariffOf(name)), marker)
		}
		return nil
	},
}

func init() {
	referenceCmd.AddCommand(referenceCategoriesCmd)
	referenceCmd.AddCommand(referenceCountriesCmd)
}
