package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/spherical/saleseer/internal/domain"
	"github.com/spherical/saleseer/internal/observability"
	"github.com/spherical/saleseer/internal/search"
)

const maxQueryLength = 500

// SearchHandler serves search and catalog requests.
type SearchHandler struct {
	logger *observability.Logger
	svc    *search.Service
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(logger *observability.Logger, svc *search.Service) *SearchHandler {
	return &SearchHandler{
		logger: logger.WithComponent("api"),
		svc:    svc,
	}
}

// SearchRequestDTO is the body of POST /api/v1/search.
type SearchRequestDTO struct {
	Query string `json:"query"`
}

// SearchResponseDTO is the response of POST /api/v1/search.
type SearchResponseDTO struct {
	ID             string                `json:"id"`
	Query          string                `json:"query"`
	Criteria       domain.Criteria       `json:"criteria"`
	Source         domain.CriteriaSource `json:"source"`
	FallbackReason string                `json:"fallback_reason,omitempty"`
	Summary        string                `json:"summary"`
	Explanation    string                `json:"explanation"`
	Count          int                   `json:"count"`
	LatencyMs      int64                 `json:"latency_ms"`
	Products       []domain.Product      `json:"products"`
}

// Search handles POST /api/v1/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required", "")
		return
	}
	if len(query) > maxQueryLength {
		writeError(w, http.StatusBadRequest, "query is too long", "")
		return
	}

	res := h.svc.Search(r.Context(), query)

	products := []domain.Product(res.Products)
	if products == nil {
		products = []domain.Product{}
	}

	writeJSON(w, http.StatusOK, SearchResponseDTO{
		ID:             res.ID.String(),
		Query:          res.Query,
		Criteria:       res.Criteria,
		Source:         res.Source,
		FallbackReason: res.FallbackReason,
		Summary:        res.Summary,
		Explanation:    res.Explanation,
		Count:          res.Count(),
		LatencyMs:      res.Latency.Milliseconds(),
		Products:       products,
	})
}

// Stats handles GET /api/v1/catalog/stats.
func (h *SearchHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats())
}
