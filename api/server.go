// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs ranking logic.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tariff-optimizer/core/engine"
	"tariff-optimizer/core/export"
	"tariff-optimizer/core/reference"
	"tariff-optimizer/internal/advisor"
	"tariff-optimizer/internal/errors"
	"tariff-optimizer/internal/logging"
)

// defaultTopN bounds the display view when the request does not say
const defaultTopN = 5

// Server is the API server
type Server struct {
	mux     *http.ServeMux
	version string

	advisory *advisor.Client

	// conv is the process-wide append-only conversation log. The model is
	// single-user; the mutex only covers net/http running handlers on
	// separate goroutines.
	convMu sync.Mutex
	conv   advisor.Conversation
}

// NewServer creates a new API server. The advisory client may be nil when
// no credential is configured; /advisory then reports a recoverable failure.
func NewServer(version string, advisory *advisor.Client) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		version:  version,
		advisory: advisory,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /recommend", s.handleRecommend)
	s.mux.HandleFunc("POST /recommend/export", s.handleExport)
	s.mux.HandleFunc("POST /advisory", s.handleAdvisory)

	// Reference data
	s.mux.HandleFunc("GET /reference/categories", s.handleCategories)
	s.mux.HandleFunc("GET /reference/countries", s.handleCountries)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleRecommend handles POST /recommend
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if err := validateRecommendRequest(&req); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := engine.Recommend(req.engineRequest())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	topN := req.Top
	if topN <= 0 {
		topN = defaultTopN
	}

	resp := &RecommendResponse{
		Result: result,
		Top:    result.Top(topN),
		Metadata: &ResponseMetadata{
			RequestID:     uuid.NewString(),
			InputHash:     computeInputHash(&req),
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}
	if pick, ok := result.TopPick(); ok {
		resp.TopPick = &pick
	}

	s.writeJSON(w, resp, http.StatusOK)
}

// handleExport handles POST /recommend/export
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if err := validateRecommendRequest(&req); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := engine.Recommend(req.engineRequest())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		`attachment; filename="tariff_optimization_results.xlsx"`)
	// Export always carries the full ranked list, not the display view.
	if err := export.WriteXLSX(w, result.Rows); err != nil {
		logging.Error("spreadsheet export failed", zap.Error(err))
	}
}

// handleAdvisory handles POST /advisory
func (s *Server) handleAdvisory(w http.ResponseWriter, r *http.Request) {
	var req AdvisoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if s.advisory == nil {
		s.writeError(w, string(errors.TypeAdvisory),
			"advisory service is not configured", http.StatusServiceUnavailable)
		return
	}

	s.convMu.Lock()
	defer s.convMu.Unlock()

	answer, err := s.advisory.Ask(r.Context(), &s.conv, req.Question)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, &AdvisoryResponse{
		Answer:             answer,
		ConversationLength: s.conv.Len(),
	}, http.StatusOK)
}

// handleCategories handles GET /reference/categories
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	var infos []CategoryInfo
	for _, name := range reference.Categories() {
		subs, err := reference.SubcategoriesOf(name)
		if err != nil {
			s.writeError(w, string(errors.TypeInternal), err.Error(), http.StatusInternalServerError)
			return
		}
		infos = append(infos, CategoryInfo{
			Name:          name,
			Subcategories: subs,
			Excluded:      reference.IsExcluded(name),
		})
	}
	s.writeJSON(w, map[string]interface{}{
		"categories": infos,
		"count":      len(infos),
	}, http.StatusOK)
}

// handleCountries handles GET /reference/countries
func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	var infos []CountryInfo
	for _, name := range reference.SelectableCountries() {
		infos = append(infos, CountryInfo{
			Name:      name,
			TariffPct: reference.TariffOf(name),
			Listed:    reference.IsListed(name),
		})
	}
	s.writeJSON(w, map[string]interface{}{
		"countries":          infos,
		"count":              len(infos),
		"default_tariff_pct": reference.DefaultTariffPct,
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "tariff-optimizer",
		"api_version": "v1",
	}, http.StatusOK)
}

func validateRecommendRequest(req *RecommendRequest) error {
	if req.Category == "" {
		return fmt.Errorf("category is required")
	}
	if req.CurrentCountry == "" {
		return fmt.Errorf("current_country is required")
	}
	if req.AnnualImportValue.IsNegative() {
		return fmt.Errorf("annual_import_value must not be negative")
	}
	if req.ShipmentValue.IsNegative() {
		return fmt.Errorf("shipment_value must not be negative")
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// writeDomainError maps typed domain errors onto HTTP statuses
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	code := string(errors.TypeInternal)
	status := http.StatusInternalServerError

	if e, ok := err.(*errors.Error); ok {
		code = string(e.Type)
		switch e.Type {
		case errors.TypeInput:
			status = http.StatusBadRequest
		case errors.TypeNotFound:
			status = http.StatusNotFound
		case errors.TypeAdvisory:
			status = http.StatusBadGateway
		}
	}

	s.writeError(w, code, err.Error(), status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

// Helper functions

func computeInputHash(req *RecommendRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
