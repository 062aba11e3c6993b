// Package output - human-readable CLI rendering
package output

import (
	"fmt"
	"io"

	"tariff-optimizer/core/engine"
)

// CLIFormatter renders a result as a boxed terminal table
type CLIFormatter struct {
	// TopN limits displayed rows; zero or negative shows all
	TopN int

	// ShowDetails includes tariff status per row
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render produces the CLI table
func (f *CLIFormatter) Render(w io.Writer, result *engine.Result) error {
	fmt.Fprintf(w, "Current tariff from %s: %s\n\n",
		result.CurrentCountry, FormatPercent(result.CurrentTariffPct))

	for _, adv := range result.Advisories {
		fmt.Fprintf(w, "Note: %s\n", adv.Message)
	}
	if len(result.Advisories) > 0 {
		fmt.Fprintln(w)
	}

	if result.CategoryExcluded {
		// An excluded category has no tariff delta worth optimizing;
		// the advisory above is the whole answer.
		return nil
	}

	if !result.HasAlternatives() {
		fmt.Fprintln(w, "No better alternative countries found.")
		return nil
	}

	rows := result.Top(f.TopN)

	fmt.Fprintln(w, "┌──────────────────────────┬────────────┬──────────┬──────────────────┬──────────┐")
	fmt.Fprintln(w, "│ Alternative Country      │ New Tariff │ Saving   │ Annual Savings   │ Strength │")
	fmt.Fprintln(w, "├──────────────────────────┼────────────┼──────────┼──────────────────┼──────────┤")
	for _, row := range rows {
		fmt.Fprintf(w, "│ %-24s │ %10s │ %8s │ %16s │ %-8s │\n",
			truncate(row.Country, 24),
			FormatPercent(row.NewTariffPct),
			FormatPercent(row.SavingPct),
			FormatUSD(row.AnnualSavings),
			row.Strength)
	}
	fmt.Fprintln(w, "└──────────────────────────┴────────────┴──────────┴──────────────────┴──────────┘")

	if len(rows) < len(result.Rows) {
		fmt.Fprintf(w, "Showing top %d of %d alternatives.\n", len(rows), len(result.Rows))
	}

	if pick, ok := result.TopPick(); ok {
		fmt.Fprintf(w, "\nBest option: %s — save %s = %s per year (supply strength: %s)\n",
			pick.Country, FormatPercent(pick.SavingPct),
			FormatUSD(pick.AnnualSavings), pick.Strength)
		if f.ShowDetails {
			fmt.Fprintf(w, "Tariff status: %s\n", pick.Status)
		}
	}

	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
