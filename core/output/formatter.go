// Package output provides output formatting interfaces.
// This package produces human and machine-readable renderings of
// recommendation results; it never computes them.
package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tariff-optimizer/core/engine"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *engine.Result) error
}

// ForFormat returns a formatter for the named format, defaulting to CLI
func ForFormat(format string, topN int, showDetails bool) Formatter {
	switch Format(format) {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &CLIFormatter{TopN: topN, ShowDetails: showDetails}
	}
}

// FormatUSD renders a dollar amount with thousands separators,
// e.g. "$24,000.00"
func FormatUSD(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	dot := strings.IndexByte(fixed, '.')
	intPart, fracPart := fixed[:dot], fixed[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatPercent renders a whole-number percentage, e.g. "24%"
func FormatPercent(pct int) string {
	return strconv.Itoa(pct) + "%"
}
