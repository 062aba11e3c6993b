// Package api - request and response types
package api

import (
	"github.com/shopspring/decimal"

	"tariff-optimizer/core/engine"
	"tariff-optimizer/core/types"
)

// RecommendRequest is the body for POST /recommend and /recommend/export
type RecommendRequest struct {
	// Category is the product category (required)
	Category string `json:"category"`

	// Subcategory is optional and informational only
	Subcategory string `json:"subcategory,omitempty"`

	// CurrentCountry is the current sourcing country (required)
	CurrentCountry string `json:"current_country"`

	// AnnualImportValue is the yearly import value in USD
	AnnualImportValue decimal.Decimal `json:"annual_import_value"`

	// ShipmentValue is an optional single-shipment value in USD
	ShipmentValue decimal.Decimal `json:"shipment_value,omitempty"`

	// Top limits the rows echoed in the response; zero means the
	// configured display default. Export ignores this and emits all rows.
	Top int `json:"top,omitempty"`
}

// engineRequest maps the API request onto the engine input
func (r *RecommendRequest) engineRequest() engine.Request {
	return engine.Request{
		Category:          r.Category,
		Subcategory:       r.Subcategory,
		CurrentCountry:    r.CurrentCountry,
		AnnualImportValue: r.AnnualImportValue,
		ShipmentValue:     r.ShipmentValue,
	}
}

// RecommendResponse is the body for POST /recommend
type RecommendResponse struct {
	// Result is the full engine output, including the complete ranked list
	Result *engine.Result `json:"result"`

	// Top is the truncated display view of the ranked list
	Top []types.RecommendationRow `json:"top"`

	// TopPick is the headline recommendation, if any
	TopPick *types.RecommendationRow `json:"top_pick,omitempty"`

	// Metadata contains execution context
	Metadata *ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains execution context for a request
type ResponseMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string `json:"request_id"`

	// InputHash is a deterministic hash of the request body
	InputHash string `json:"input_hash"`

	// EngineVersion is the serving version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the handling time in milliseconds
	DurationMs int64 `json:"duration_ms"`
}

// AdvisoryRequest is the body for POST /advisory
type AdvisoryRequest struct {
	// Question is the free-text question to forward
	Question string `json:"question"`
}

// AdvisoryResponse is the body for POST /advisory
type AdvisoryResponse struct {
	// Answer is the raw generated reply
	Answer string `json:"answer"`

	// ConversationLength is the message count after this exchange
	ConversationLength int `json:"conversation_length"`
}

// CategoryInfo describes one catalog category
type CategoryInfo struct {
	// Name is the category name
	Name string `json:"name"`

	// Subcategories is the ordered subcategory list, possibly empty
	Subcategories []string `json:"subcategories"`

	// Excluded is true when the category is exempt from the new regime
	Excluded bool `json:"excluded"`
}

// CountryInfo describes one selectable sourcing country
type CountryInfo struct {
	// Name is the country name
	Name string `json:"name"`

	// TariffPct is the resolved tariff rate (default applied)
	TariffPct int `json:"tariff_pct"`

	// Listed is true when the country has an explicit annex entry
	Listed bool `json:"listed"`
}
