// Package export serializes ranked recommendation rows to a spreadsheet
// byte stream for download. The column set exactly matches the
// recommendation row fields plus formatted percentage and currency strings.
package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"tariff-optimizer/core/output"
	"tariff-optimizer/core/types"
	"tariff-optimizer/internal/errors"
)

// SheetName is the single worksheet holding the results
const SheetName = "Tariff Optimization"

// Columns is the header row, in order
var Columns = []string{
	"Alternative Country",
	"New Tariff %",
	"Saving %",
	"Estimated Annual Savings ($)",
	"Supply Strength",
	"Tariff Status",
}

// WriteXLSX writes the given rows as an xlsx workbook. Callers pass
// result.Rows for the full ranked list or result.Top(n) for a truncated
// view; the exporter does not decide.
func WriteXLSX(w io.Writer, rows []types.RecommendationRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return errors.Export("failed to create worksheet", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.Export("failed to drop default worksheet", err)
	}

	for col, name := range Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.Export("failed to address header cell", err)
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return errors.Export("failed to write header cell", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Country,
			output.FormatPercent(row.NewTariffPct),
			output.FormatPercent(row.SavingPct),
			output.FormatUSD(row.AnnualSavings),
			row.Strength.String(),
			string(row.Status),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return errors.Export("failed to address cell", err)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return errors.Export("failed to write cell", err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Export("failed to serialize workbook", err)
	}
	return nil
}
