// Package reference provides pure lookups over constant trade reference data:
// annex tariff rates, the product category catalog, supply-strength ratings,
// and the excluded-category set. All tables are fixed for the process
// lifetime; nothing here has side effects or can fail except explicit
// catalog lookups for unknown categories.
package reference

import (
	"sort"

	"tariff-optimizer/core/types"
	"tariff-optimizer/internal/errors"
)

// DefaultTariffPct is the rate applied to any country without an annex entry
const DefaultTariffPct = 10

// TariffOf returns the annex tariff percentage for a country, or
// DefaultTariffPct when the country has no entry. Never fails: absence
// means the generic rate, not missing data.
func TariffOf(country string) int {
	if pct, ok := annexTariffs[country]; ok {
		return pct
	}
	return DefaultTariffPct
}

// StrengthOf returns the supply-strength tier for a (country, category)
// pair, or TierLow when the pair has no entry. Never fails: the table is
// closed-world and absence means Low.
func StrengthOf(country, category string) types.Tier {
	if tier, ok := supplyStrengths[strengthKey{country, category}]; ok {
		return tier
	}
	return types.TierLow
}

// SubcategoriesOf returns the subcategory list for a category, sorted.
// An empty list means no subcategory selection is offered. Unlike country
// lookups, an unknown category is a validation error, never defaulted.
func SubcategoriesOf(category string) ([]string, error) {
	subs, ok := productCatalog[category]
	if !ok {
		return nil, errors.UnknownCategory(category)
	}
	out := make([]string, len(subs))
	copy(out, subs)
	sort.Strings(out)
	return out, nil
}

// IsListed reports whether the country has an explicit annex entry
func IsListed(country string) bool {
	_, ok := annexTariffs[country]
	return ok
}

// HasCategory reports whether the category exists in the catalog
func HasCategory(category string) bool {
	_, ok := productCatalog[category]
	return ok
}

// IsExcluded reports whether a category is exempt from the new tariff regime
func IsExcluded(category string) bool {
	_, ok := excludedCategories[category]
	return ok
}

// Categories returns all catalog categories, sorted
func Categories() []string {
	out := make([]string, 0, len(productCatalog))
	for c := range productCatalog {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// TariffCountries returns every country with an annex tariff entry, sorted.
// This is the universe the recommendation engine scans.
func TariffCountries() []string {
	out := make([]string, 0, len(annexTariffs))
	for c := range annexTariffs {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SelectableCountries returns the countries offered as current-sourcing
// choices: every annex country plus a few common partners that resolve to
// the default rate.
func SelectableCountries() []string {
	out := make([]string, 0, len(annexTariffs)+len(extraSourcingCountries))
	for c := range annexTariffs {
		out = append(out, c)
	}
	out = append(out, extraSourcingCountries...)
	sort.Strings(out)
	return out
}
