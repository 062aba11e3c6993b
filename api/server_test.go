package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tariff-optimizer/core/export"
	"tariff-optimizer/internal/advisor"
)

func newTestServer(t *testing.T, advisory *advisor.Client) *Server {
	t.Helper()
	return NewServer("test", advisory)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestRecommendEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/recommend", map[string]interface{}{
		"category":            "Apparel",
		"current_country":     "China",
		"annual_import_value": 100000,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RecommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.Result)
	assert.Equal(t, 34, resp.Result.CurrentTariffPct)
	assert.False(t, resp.Result.CategoryExcluded)
	assert.NotEmpty(t, resp.Result.Rows)

	require.NotNil(t, resp.TopPick)
	assert.Equal(t, "India", resp.TopPick.Country)

	assert.Len(t, resp.Top, 5)

	require.NotNil(t, resp.Metadata)
	assert.NotEmpty(t, resp.Metadata.RequestID)
	assert.NotEmpty(t, resp.Metadata.InputHash)
	assert.Equal(t, "test", resp.Metadata.EngineVersion)
}

func TestRecommendEndpointCustomTop(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/recommend", map[string]interface{}{
		"category":            "Apparel",
		"current_country":     "China",
		"annual_import_value": 100000,
		"top":                 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RecommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Top, 2)
	assert.Greater(t, len(resp.Result.Rows), 2, "full ranked list must not be truncated")
}

func TestRecommendEndpointValidation(t *testing.T) {
	s := newTestServer(t, nil)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing category", map[string]interface{}{
			"current_country": "China", "annual_import_value": 1000,
		}},
		{"missing country", map[string]interface{}{
			"category": "Apparel", "annual_import_value": 1000,
		}},
		{"negative value", map[string]interface{}{
			"category": "Apparel", "current_country": "China", "annual_import_value": -5,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, s, http.MethodPost, "/recommend", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRecommendEndpointUnknownCategory(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/recommend", map[string]interface{}{
		"category":            "Toys",
		"current_country":     "China",
		"annual_import_value": 1000,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INPUT_ERROR")
}

func TestRecommendEndpointInvalidJSON(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/recommend/export", map[string]interface{}{
		"category":            "Apparel",
		"current_country":     "China",
		"annual_import_value": 100000,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "tariff_optimization_results.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err, "response body must be a readable workbook")
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, export.Columns[0], rows[0][0])
	assert.Greater(t, len(rows), 6, "export carries the full list, not the display view")
}

func TestAdvisoryEndpointNotConfigured(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/advisory", map[string]interface{}{
		"question": "anything",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAdvisoryEndpoint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Diversify origins."}]}}]}`))
	}))
	defer upstream.Close()

	client := advisor.NewClient(advisor.Config{
		APIKey:  "test-key",
		BaseURL: upstream.URL,
	})
	s := newTestServer(t, client)

	rec := doJSON(t, s, http.MethodPost, "/advisory", map[string]interface{}{
		"question": "How do I hedge tariff exposure?",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AdvisoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Diversify origins.", resp.Answer)
	assert.Equal(t, 2, resp.ConversationLength)

	// The conversation log is append-only across requests.
	rec = doJSON(t, s, http.MethodPost, "/advisory", map[string]interface{}{
		"question": "And what about de minimis?",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.ConversationLength)
}

func TestAdvisoryEndpointUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := advisor.NewClient(advisor.Config{
		APIKey:  "test-key",
		BaseURL: upstream.URL,
	})
	s := newTestServer(t, client)

	rec := doJSON(t, s, http.MethodPost, "/advisory", map[string]interface{}{
		"question": "anything",
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADVISORY_ERROR")
	assert.NotContains(t, rec.Body.String(), "test-key")
}

func TestReferenceCategoriesEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/reference/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Categories []CategoryInfo `json:"categories"`
		Count      int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Count)

	byName := map[string]CategoryInfo{}
	for _, c := range resp.Categories {
		byName[c.Name] = c
	}
	assert.True(t, byName["Food"].Excluded)
	assert.False(t, byName["Apparel"].Excluded)
	assert.Len(t, byName["Electronics"].Subcategories, 3)
	assert.Empty(t, byName["Furniture"].Subcategories)
}

func TestReferenceCountriesEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/reference/countries", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Countries        []CountryInfo `json:"countries"`
		Count            int           `json:"count"`
		DefaultTariffPct int           `json:"default_tariff_pct"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.DefaultTariffPct)
	assert.Equal(t, 61, resp.Count)

	byName := map[string]CountryInfo{}
	for _, c := range resp.Countries {
		byName[c.Name] = c
	}
	assert.Equal(t, 34, byName["China"].TariffPct)
	assert.True(t, byName["China"].Listed)
	assert.Equal(t, 10, byName["Canada"].TariffPct)
	assert.False(t, byName["Canada"].Listed)
}

func TestHealthAndVersionEndpoints(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")

	rec = doJSON(t, s, http.MethodGet, "/version", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tariff-optimizer")
}
