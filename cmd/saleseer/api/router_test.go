package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spherical/saleseer/internal/catalog"
	"github.com/spherical/saleseer/internal/domain"
	"github.com/spherical/saleseer/internal/interpret"
	"github.com/spherical/saleseer/internal/observability"
	"github.com/spherical/saleseer/internal/search"
)

type replyCompleter struct {
	reply string
}

func (c replyCompleter) Complete(ctx context.Context, systemPrompt, userText string, maxTokens int, temperature float64) (string, error) {
	return c.reply, nil
}

func newTestRouter(completer domain.Completer) http.Handler {
	cat := catalog.New([]domain.Product{
		{Name: "Red Dress", Category: "dress", Color: "red", Price: 150.0, Rating: 4.5},
		{Name: "Blue Jeans", Category: "jeans", Color: "blue", Price: 89.99, Rating: 4.2},
		{Name: "Black Jacket", Category: "jacket", Color: "black", Price: 299.99, Rating: 4.8},
	})
	interp := interpret.New(completer, observability.Nop(), interpret.DefaultConfig())
	svc := search.NewService(interp, cat, observability.Nop())
	return NewRouter(observability.Nop(), svc, DefaultConfig())
}

func postSearch(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSearch_ModelPath(t *testing.T) {
	h := newTestRouter(replyCompleter{reply: `{"price_min": 100}`})

	rec := postSearch(t, h, `{"query": "things over 100"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.SourceModel, resp.Source)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "Black Jacket", resp.Products[0].Name)
	assert.Equal(t, "Red Dress", resp.Products[1].Name)
	assert.Equal(t, "Searching for: Min price: $100", resp.Summary)
}

func TestSearch_FallbackPath(t *testing.T) {
	h := newTestRouter(nil)

	rec := postSearch(t, h, `{"query": "Show me red dresses under $200"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, domain.SourceFallback, resp.Source)
	assert.Equal(t, interpret.ReasonModelDisabled, resp.FallbackReason)
	assert.Equal(t, "dress", resp.Criteria.Category)
	assert.Equal(t, 1, resp.Count)
}

func TestSearch_EmptyResultHasEmptyArray(t *testing.T) {
	h := newTestRouter(replyCompleter{reply: `{"category": "shoes", "color": "purple"}`})

	rec := postSearch(t, h, `{"query": "purple shoes"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"products":[]`)
	assert.Contains(t, rec.Body.String(), "No products found")
}

func TestSearch_BadRequests(t *testing.T) {
	h := newTestRouter(nil)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"query":`},
		{"empty query", `{"query": "   "}`},
		{"missing query", `{}`},
		{"too long", `{"query": "` + strings.Repeat("a", maxQueryLength+1) + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postSearch(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestCatalogStats(t *testing.T) {
	h := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/stats", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats domain.CatalogStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalProducts)
	assert.InDelta(t, 89.99, stats.PriceRange.Min, 1e-9)
	assert.InDelta(t, 299.99, stats.PriceRange.Max, 1e-9)
	assert.Equal(t, []string{"dress", "jacket", "jeans"}, stats.Categories)
}

func TestHealthAndReady(t *testing.T) {
	h := newTestRouter(nil)

	for _, path := range []string{"/health", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/search", nil)
	req.Header.Set("Origin", "https://shop.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://shop.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
