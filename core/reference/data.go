// Package reference - Hand-curated trade reference data
package reference

import "tariff-optimizer/core/types"

// annexTariffs maps each annex country to its whole-number tariff percentage.
// Countries not listed here fall back to DefaultTariffPct.
var annexTariffs = map[string]int{
	"Algeria":                          30,
	"Angola":                           32,
	"Bangladesh":                       37,
	"Bosnia and Herzegovina":           35,
	"Botswana":                         37,
	"Brunei":                           24,
	"Cambodia":                         49,
	"Cameroon":                         11,
	"Chad":                             13,
	"China":                            34,
	"Côte d`Ivoire":                    21,
	"Democratic Republic of the Congo": 11,
	"Equatorial Guinea":                13,
	"European Union":                   20,
	"Falkland Islands":                 41,
	"Fiji":                             32,
	"Guyana":                           38,
	"India":                            26,
	"Indonesia":                        32,
	"Iraq":                             39,
	"Israel":                           17,
	"Japan":                            24,
	"Jordan":                           20,
	"Kazakhstan":                       27,
	"Laos":                             48,
	"Lesotho":                          50,
	"Libya":                            31,
	"Liechtenstein":                    37,
	"Madagascar":                       47,
	"Malawi":                           17,
	"Malaysia":                         24,
	"Mauritius":                        40,
	"Moldova":                          31,
	"Mozambique":                       16,
	"Myanmar (Burma)":                  44,
	"Namibia":                          21,
	"Nauru":                            30,
	"Nicaragua":                        18,
	"Nigeria":                          14,
	"North Macedonia":                  33,
	"Norway":                           15,
	"Pakistan":                         29,
	"Philippines":                      17,
	"Serbia":                           37,
	"South Africa":                     30,
	"South Korea":                      25,
	"Sri Lanka":                        44,
	"Switzerland":                      31,
	"Syria":                            41,
	"Taiwan":                           32,
	"Thailand":                         36,
	"Tunisia":                          28,
	"Vanuatu":                          22,
	"Venezuela":                        15,
	"Vietnam":                          46,
	"Zambia":                           17,
	"Zimbabwe":                         18,
}

// extraSourcingCountries are offered as current-country choices even though
// they carry no annex rate (they resolve to the default).
var extraSourcingCountries = []string{"Canada", "Mexico", "Hong Kong", "USA"}

// productCatalog maps each category to its subcategory list. An empty list
// means no subcategory selection is offered for that category.
var productCatalog = map[string][]string{
	"Apparel":                  {"Cotton/Natural", "Synthetic"},
	"Electronics":              {"Chips", "EV Batteries", "Consumer Devices"},
	"Furniture":                {},
	"Steel/Aluminum":           {},
	"Chemicals":                {"Plastics", "Industrial Chemicals"},
	"Automotive Parts":         {"EV Components", "Traditional Components"},
	"Semiconductors":           {},
	"Food":                     {},
	"Medicine":                 {},
	"Energy/Critical Minerals": {},
}

// strengthKey identifies a (country, category) pair in the strength table
type strengthKey struct {
	country  string
	category string
}

// supplyStrengths rates supplier ecosystem maturity per (country, category).
// Any pair absent from this table is Low by definition.
var supplyStrengths = map[strengthKey]types.Tier{
	// Apparel
	{"China", "Apparel"}:      types.TierHigh,
	{"Vietnam", "Apparel"}:    types.TierHigh,
	{"Bangladesh", "Apparel"}: types.TierHigh,
	{"India", "Apparel"}:      types.TierHigh,
	{"Cambodia", "Apparel"}:   types.TierMedium,
	{"Indonesia", "Apparel"}:  types.TierMedium,

	// Electronics
	{"China", "Electronics"}:       types.TierHigh,
	{"South Korea", "Electronics"}: types.TierHigh,
	{"Malaysia", "Electronics"}:    types.TierHigh,
	{"Taiwan", "Electronics"}:      types.TierHigh,
	{"Thailand", "Electronics"}:    types.TierMedium,
	{"Indonesia", "Electronics"}:   types.TierMedium,

	// Furniture
	{"China", "Furniture"}:     types.TierHigh,
	{"Vietnam", "Furniture"}:   types.TierHigh,
	{"Malaysia", "Furniture"}:  types.TierMedium,
	{"Indonesia", "Furniture"}: types.TierMedium,

	// Steel/Aluminum
	{"China", "Steel/Aluminum"}:       types.TierHigh,
	{"South Korea", "Steel/Aluminum"}: types.TierHigh,
	{"India", "Steel/Aluminum"}:       types.TierMedium,

	// Chemicals
	{"China", "Chemicals"}:    types.TierHigh,
	{"India", "Chemicals"}:    types.TierHigh,
	{"Malaysia", "Chemicals"}: types.TierMedium,

	// Automotive Parts
	{"Mexico", "Automotive Parts"}:      types.TierHigh,
	{"China", "Automotive Parts"}:       types.TierHigh,
	{"South Korea", "Automotive Parts"}: types.TierHigh,
	{"Thailand", "Automotive Parts"}:    types.TierMedium,

	// Semiconductors
	{"Taiwan", "Semiconductors"}:      types.TierHigh,
	{"South Korea", "Semiconductors"}: types.TierHigh,
	{"Malaysia", "Semiconductors"}:    types.TierMedium,
	{"Singapore", "Semiconductors"}:   types.TierMedium,

	// Food
	{"USA", "Food"}:            types.TierHigh,
	{"Canada", "Food"}:         types.TierHigh,
	{"Mexico", "Food"}:         types.TierHigh,
	{"European Union", "Food"}: types.TierHigh,
	{"Brazil", "Food"}:         types.TierMedium,
	{"Argentina", "Food"}:      types.TierMedium,

	// Medicine
	{"USA", "Medicine"}:            types.TierHigh,
	{"European Union", "Medicine"}: types.TierHigh,
	{"India", "Medicine"}:          types.TierHigh,
	{"China", "Medicine"}:          types.TierMedium,

	// Energy/Critical Minerals
	{"Australia", "Energy/Critical Minerals"}:    types.TierHigh,
	{"Canada", "Energy/Critical Minerals"}:       types.TierHigh,
	{"USA", "Energy/Critical Minerals"}:          types.TierHigh,
	{"Chile", "Energy/Critical Minerals"}:        types.TierMedium,
	{"South Africa", "Energy/Critical Minerals"}: types.TierMedium,
}

// excludedCategories are statutorily exempt from the new tariff regime.
// Some entries are not in the product catalog; exemption is broader than
// what the catalog offers for optimization.
var excludedCategories = map[string]struct{}{
	"Food":                     {},
	"Medicine":                 {},
	"Humanitarian Goods":       {},
	"Steel/Aluminum":           {},
	"Autos/Auto Parts":         {},
	"Semiconductors":           {},
	"Lumber":                   {},
	"Pharmaceuticals":          {},
	"Energy/Critical Minerals": {},
	"Precious Metals":          {},
}
