// Package cmd - optimize command
package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tariff-optimizer/core/engine"
	"tariff-optimizer/core/export"
	"tariff-optimizer/core/output"
	"tariff-optimizer/internal/config"
	"tariff-optimizer/internal/logging"
)

var (
	optCategory    string
	optSubcategory string
	optCountry     string
	optValue       float64
	optShipment    float64
	optTop         int
	optFormat      string
	optExportPath  string
)

// optimizeCmd represents the optimize command
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rank alternative sourcing countries for a category and origin",
	Long: `Compute tariff savings for every viable alternative sourcing country.

Countries with no tariff saving are dropped; the rest are ranked by supply
strength first, then by saving percentage.

Examples:
  tariff-optimizer optimize --category Apparel --country China --value 100000
  tariff-optimizer optimize --category Apparel --country China --value 100000 --format json
  tariff-optimizer optimize --category Furniture --country Vietnam --value 50000 --export out.xlsx`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optCategory, "category", "c", "", "product category (required)")
	optimizeCmd.Flags().StringVarP(&optSubcategory, "subcategory", "s", "", "product subcategory (informational)")
	optimizeCmd.Flags().StringVar(&optCountry, "country", "", "current sourcing country (required)")
	optimizeCmd.Flags().Float64Var(&optValue, "value", 0, "annual import value in USD (required)")
	optimizeCmd.Flags().Float64Var(&optShipment, "shipment", 0, "individual shipment value in USD (optional)")
	optimizeCmd.Flags().IntVarP(&optTop, "top", "t", 0, "limit displayed rows (default from config)")
	optimizeCmd.Flags().StringVarP(&optFormat, "format", "f", "", "output format (cli, json)")
	optimizeCmd.Flags().StringVar(&optExportPath, "export", "", "write the full ranked list to an xlsx file")

	optimizeCmd.MarkFlagRequired("category")
	optimizeCmd.MarkFlagRequired("country")
	optimizeCmd.MarkFlagRequired("value")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	if optValue < 0 {
		return fmt.Errorf("--value must not be negative")
	}
	if optShipment < 0 {
		return fmt.Errorf("--shipment must not be negative")
	}

	req := engine.Request{
		Category:          optCategory,
		Subcategory:       optSubcategory,
		CurrentCountry:    optCountry,
		AnnualImportValue: decimal.NewFromFloat(optValue),
		ShipmentValue:     decimal.NewFromFloat(optShipment),
	}

	logging.Debug("running optimization",
		zap.String("category", optCategory),
		zap.String("country", optCountry))

	result, err := engine.Recommend(req)
	if err != nil {
		return err
	}

	cfg := config.Get()
	format := optFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	topN := optTop
	if topN <= 0 {
		topN = cfg.Output.TopN
	}

	formatter := output.ForFormat(format, topN, cfg.Output.ShowDetails)
	if err := formatter.Render(os.Stdout, result); err != nil {
		return err
	}

	if optExportPath != "" {
		f, err := os.Create(optExportPath)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		if err := export.WriteXLSX(f, result.Rows); err != nil {
			return err
		}
		fmt.Printf("\nExported %d rows to %s\n", len(result.Rows), optExportPath)
	}

	return nil
}
