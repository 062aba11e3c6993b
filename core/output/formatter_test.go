package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"tariff-optimizer/core/engine"
)

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{8000, "$8,000.00"},
		{24000, "$24,000.00"},
		{1234567.89, "$1,234,567.89"},
		{999.5, "$999.50"},
		{-1500, "-$1,500.00"},
	}
	for _, tc := range cases {
		if got := FormatUSD(decimal.NewFromFloat(tc.amount)); got != tc.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(24); got != "24%" {
		t.Errorf("FormatPercent(24) = %q", got)
	}
	if got := FormatPercent(0); got != "0%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
}

func TestCLIFormatterRendersTableAndTopPick(t *testing.T) {
	res, err := engine.Recommend(engine.Request{
		Category:          "Apparel",
		CurrentCountry:    "China",
		AnnualImportValue: decimal.NewFromInt(100000),
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	var buf bytes.Buffer
	f := &CLIFormatter{TopN: 5, ShowDetails: true}
	if err := f.Render(&buf, res); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Current tariff from China: 34%") {
		t.Errorf("missing current tariff line:\n%s", out)
	}
	if !strings.Contains(out, "India") {
		t.Errorf("missing India row:\n%s", out)
	}
	if !strings.Contains(out, "Best option: India") {
		t.Errorf("missing top pick headline:\n%s", out)
	}
	if !strings.Contains(out, "$8,000.00") {
		t.Errorf("missing formatted savings:\n%s", out)
	}
}

func TestCLIFormatterNoViableAlternative(t *testing.T) {
	res, err := engine.Recommend(engine.Request{
		Category:          "Apparel",
		CurrentCountry:    "USA",
		AnnualImportValue: decimal.NewFromInt(100000),
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	var buf bytes.Buffer
	if err := (&CLIFormatter{TopN: 5}).Render(&buf, res); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No better alternative countries found.") {
		t.Errorf("missing terminal no-better-option message:\n%s", buf.String())
	}
}

func TestCLIFormatterExcludedCategoryShortCircuits(t *testing.T) {
	res, err := engine.Recommend(engine.Request{
		Category:          "Food",
		CurrentCountry:    "China",
		AnnualImportValue: decimal.NewFromInt(100000),
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	var buf bytes.Buffer
	if err := (&CLIFormatter{TopN: 5}).Render(&buf, res); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "excluded category") {
		t.Errorf("missing exemption advisory:\n%s", out)
	}
	if strings.Contains(out, "Best option") {
		t.Errorf("excluded category must not render a ranking:\n%s", out)
	}
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	res, err := engine.Recommend(engine.Request{
		Category:          "Apparel",
		CurrentCountry:    "China",
		AnnualImportValue: decimal.NewFromInt(100000),
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Render(&buf, res); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var decoded engine.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.CurrentCountry != "China" || len(decoded.Rows) != len(res.Rows) {
		t.Errorf("JSON output lost data: %+v", decoded)
	}
}

func TestForFormat(t *testing.T) {
	if f := ForFormat("json", 5, true); f.Format() != FormatJSON {
		t.Errorf("ForFormat(json) = %s", f.Format())
	}
	if f := ForFormat("cli", 5, true); f.Format() != FormatCLI {
		t.Errorf("ForFormat(cli) = %s", f.Format())
	}
	if f := ForFormat("", 5, true); f.Format() != FormatCLI {
		t.Errorf("ForFormat default = %s", f.Format())
	}
}
