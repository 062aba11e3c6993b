// Package types - Core domain types for tariff sourcing optimization
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Tier is a qualitative supply-strength rating for a (country, category) pair
type Tier string

const (
	// TierHigh indicates a mature, established supplier ecosystem
	TierHigh Tier = "High"

	// TierMedium indicates a developing supplier ecosystem
	TierMedium Tier = "Medium"

	// TierLow indicates little or no known supplier ecosystem.
	// Absence from the strength table means Low, not "unknown".
	TierLow Tier = "Low"
)

// tierRanks is the explicit sort order: better strength sorts first.
// Alphabetic order (High, Low, Medium) is wrong, so never compare strings.
var tierRanks = map[Tier]int{
	TierHigh:   1,
	TierMedium: 2,
	TierLow:    3,
}

// Rank returns the sort rank for the tier (High=1, Medium=2, Low=3).
// Unrecognized tiers rank as Low.
func (t Tier) Rank() int {
	if r, ok := tierRanks[t]; ok {
		return r
	}
	return tierRanks[TierLow]
}

// Valid reports whether the tier is one of the three known values
func (t Tier) Valid() bool {
	_, ok := tierRanks[t]
	return ok
}

// String returns the string representation
func (t Tier) String() string {
	return string(t)
}

// TariffStatus labels whether a recommendation is subject to the new
// tariff regime. Derived from category membership in the excluded set;
// see the status rule in DESIGN.md.
type TariffStatus string

const (
	// StatusSubject indicates the new tariff regime applies
	StatusSubject TariffStatus = "Subject to Tariffs"

	// StatusExcluded indicates the category is statutorily exempt
	StatusExcluded TariffStatus = "Excluded"
)

// RecommendationRow is one ranked alternative sourcing country.
// Rows are derived per query and never mutated after computation.
type RecommendationRow struct {
	// Country is the alternative sourcing country
	Country string `json:"country"`

	// NewTariffPct is the tariff rate from the alternative country
	NewTariffPct int `json:"new_tariff_pct"`

	// SavingPct is the current rate minus the alternative rate.
	// Always strictly positive: non-positive rows are dropped entirely.
	SavingPct int `json:"saving_pct"`

	// AnnualSavings is (SavingPct / 100) * annual import value
	AnnualSavings decimal.Decimal `json:"annual_savings"`

	// Strength is the supply-strength tier for (Country, category)
	Strength Tier `json:"strength"`

	// Status labels the row under the modeled tariff regime
	Status TariffStatus `json:"status"`
}
