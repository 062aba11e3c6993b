// Package engine - Alternative-country recommendation engine
// Pure, synchronous computation over constant reference data. The engine
// never performs I/O, holds no state between calls, and cannot fail from
// valid inputs except for explicit catalog validation.
package engine

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"tariff-optimizer/core/reference"
	"tariff-optimizer/core/types"
	"tariff-optimizer/internal/errors"
)

// DeMinimisThresholdUSD is the single-shipment value below which the
// simplified-entry exemption no longer applies for flagged origins.
const DeMinimisThresholdUSD = 800

// deMinimisOrigins are the origins the de-minimis elimination targets
var deMinimisOrigins = map[string]struct{}{
	"China":     {},
	"Hong Kong": {},
}

// Request carries the inputs for one optimization run. The caller owns the
// request and the returned result; nothing is retained between calls.
type Request struct {
	// Category is the product category (must exist in the catalog)
	Category string `json:"category"`

	// Subcategory is informational only; it never narrows rate or
	// strength lookups
	Subcategory string `json:"subcategory,omitempty"`

	// CurrentCountry is the current sourcing country
	CurrentCountry string `json:"current_country"`

	// AnnualImportValue is the yearly import value in USD
	AnnualImportValue decimal.Decimal `json:"annual_import_value"`

	// ShipmentValue is an optional single-shipment value in USD.
	// Zero means not provided.
	ShipmentValue decimal.Decimal `json:"shipment_value,omitempty"`
}

// AdvisoryCode identifies a class of informational advisory
type AdvisoryCode string

const (
	// AdvisoryExcludedCategory signals the category is exempt from the
	// new tariff regime, so there is no tariff delta worth optimizing
	AdvisoryExcludedCategory AdvisoryCode = "EXCLUDED_CATEGORY"

	// AdvisoryDeMinimis signals the simplified-entry exemption no longer
	// applies to small shipments from the current origin
	AdvisoryDeMinimis AdvisoryCode = "DE_MINIMIS_ELIMINATED"
)

// Advisory is an informational message attached to a result. Advisories
// never affect the ranking arithmetic.
type Advisory struct {
	Code    AdvisoryCode `json:"code"`
	Message string       `json:"message"`
}

// Result is the outcome of one optimization run
type Result struct {
	// Category echoes the requested category
	Category string `json:"category"`

	// Subcategory echoes the requested subcategory, if any
	Subcategory string `json:"subcategory,omitempty"`

	// CurrentCountry echoes the current sourcing country
	CurrentCountry string `json:"current_country"`

	// CurrentTariffPct is the resolved tariff for the current country
	CurrentTariffPct int `json:"current_tariff_pct"`

	// AnnualImportValue echoes the requested import value
	AnnualImportValue decimal.Decimal `json:"annual_import_value"`

	// CategoryExcluded is true when the category is exempt from the new
	// tariff regime. Rows are still computed; consumers should present
	// the exemption advisory instead of the ranking.
	CategoryExcluded bool `json:"category_excluded"`

	// Rows is the full ranked list of viable alternatives. Empty means
	// no better option exists, which is a terminal outcome, not an error.
	Rows []types.RecommendationRow `json:"rows"`

	// Advisories carries informational messages for this run
	Advisories []Advisory `json:"advisories,omitempty"`
}

// Recommend produces the ranked list of alternative sourcing countries for
// a request. It is idempotent: identical inputs yield identical output.
//
// Only countries with strictly positive savings are emitted; the current
// country is never compared against itself. Rows are ordered by supply
// strength first (High before Medium before Low), then by saving percentage
// descending, then by country name for determinism.
func Recommend(req Request) (*Result, error) {
	if !reference.HasCategory(req.Category) {
		return nil, errors.UnknownCategory(req.Category)
	}

	currentTariff := reference.TariffOf(req.CurrentCountry)

	res := &Result{
		Category:          req.Category,
		Subcategory:       req.Subcategory,
		CurrentCountry:    req.CurrentCountry,
		CurrentTariffPct:  currentTariff,
		AnnualImportValue: req.AnnualImportValue,
		CategoryExcluded:  reference.IsExcluded(req.Category),
	}

	status := types.StatusSubject
	if res.CategoryExcluded {
		status = types.StatusExcluded
		res.Advisories = append(res.Advisories, Advisory{
			Code: AdvisoryExcludedCategory,
			Message: fmt.Sprintf("%s is an excluded category. No new tariffs apply.",
				req.Category),
		})
	}

	if deMinimisApplies(req) {
		res.Advisories = append(res.Advisories, Advisory{
			Code: AdvisoryDeMinimis,
			Message: fmt.Sprintf("De minimis eliminated for %s under $%d shipments. Full duties now apply.",
				req.CurrentCountry, DeMinimisThresholdUSD),
		})
	}

	hundred := decimal.NewFromInt(100)
	for _, alt := range reference.TariffCountries() {
		if alt == req.CurrentCountry {
			continue
		}
		altTariff := reference.TariffOf(alt)
		savingPct := currentTariff - altTariff
		if savingPct <= 0 {
			continue
		}
		amount := decimal.NewFromInt(int64(savingPct)).
			Div(hundred).
			Mul(req.AnnualImportValue)

		res.Rows = append(res.Rows, types.RecommendationRow{
			Country:       alt,
			NewTariffPct:  altTariff,
			SavingPct:     savingPct,
			AnnualSavings: amount,
			Strength:      reference.StrengthOf(alt, req.Category),
			Status:        status,
		})
	}

	sort.Slice(res.Rows, func(i, j int) bool {
		a, b := res.Rows[i], res.Rows[j]
		if a.Strength.Rank() != b.Strength.Rank() {
			return a.Strength.Rank() < b.Strength.Rank()
		}
		if a.SavingPct != b.SavingPct {
			return a.SavingPct > b.SavingPct
		}
		return a.Country < b.Country
	})

	return res, nil
}

// deMinimisApplies reports whether the small-shipment warning applies:
// a shipment value was provided, it is under the threshold, and the
// current origin is one the elimination targets.
func deMinimisApplies(req Request) bool {
	if req.ShipmentValue.IsZero() {
		return false
	}
	if _, ok := deMinimisOrigins[req.CurrentCountry]; !ok {
		return false
	}
	return req.ShipmentValue.LessThan(decimal.NewFromInt(DeMinimisThresholdUSD))
}

// HasAlternatives reports whether any viable alternative was found
func (r *Result) HasAlternatives() bool {
	return len(r.Rows) > 0
}

// Top returns a view of the first n ranked rows. The full list is
// unaffected; truncation is a presentation decision.
func (r *Result) Top(n int) []types.RecommendationRow {
	if n <= 0 || n >= len(r.Rows) {
		return r.Rows
	}
	return r.Rows[:n]
}

// TopPick returns the headline recommendation, if any
func (r *Result) TopPick() (types.RecommendationRow, bool) {
	if len(r.Rows) == 0 {
		return types.RecommendationRow{}, false
	}
	return r.Rows[0], true
}
