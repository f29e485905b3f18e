// Package search runs one query end to end: interpret, summarize, filter, explain.
package search

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spherical/saleseer/internal/catalog"
	"github.com/spherical/saleseer/internal/domain"
	"github.com/spherical/saleseer/internal/interpret"
	"github.com/spherical/saleseer/internal/observability"
)

// Result is everything a presenter needs for one query.
type Result struct {
	ID             uuid.UUID             `json:"id"`
	Query          string                `json:"query"`
	Criteria       domain.Criteria       `json:"criteria"`
	Source         domain.CriteriaSource `json:"source"`
	FallbackReason string                `json:"fallback_reason,omitempty"`
	Summary        string                `json:"summary"`
	Explanation    string                `json:"explanation"`
	Products       domain.FilterResult   `json:"products"`
	Latency        time.Duration         `json:"-"`
}

// Count returns the number of matching products.
func (r *Result) Count() int {
	return len(r.Products)
}

// Service ties an interpreter to a read-only catalog.
type Service struct {
	interpreter domain.Interpreter
	catalog     *catalog.Catalog
	logger      *observability.Logger
}

// NewService creates a search service.
func NewService(interpreter domain.Interpreter, cat *catalog.Catalog, logger *observability.Logger) *Service {
	if logger == nil {
		logger = observability.Nop()
	}
	return &Service{
		interpreter: interpreter,
		catalog:     cat,
		logger:      logger.WithComponent("search"),
	}
}

// Search processes one query. It never fails: interpretation degrades to the
// keyword fallback and an empty match is an explained outcome.
func (s *Service) Search(ctx context.Context, query string) *Result {
	start := time.Now()

	interp := s.interpreter.Interpret(ctx, query)
	products := s.catalog.Filter(interp.Criteria)

	result := &Result{
		ID:             uuid.New(),
		Query:          query,
		Criteria:       interp.Criteria.Clone(),
		Source:         interp.Source,
		FallbackReason: interp.FallbackReason,
		Summary:        interpret.Summarize(interp.Criteria, query),
		Explanation:    catalog.Explain(products, interp.Criteria),
		Products:       products,
		Latency:        time.Since(start),
	}

	s.logger.WithContext(ctx).Info().
		Str("search_id", result.ID.String()).
		Str("source", string(result.Source)).
		Bool("fallback", result.Source == domain.SourceFallback).
		Int("matches", result.Count()).
		Dur("latency", result.Latency).
		Msg("Search completed")

	return result
}

// Stats returns aggregate figures for the whole catalog.
func (s *Service) Stats() domain.CatalogStats {
	return s.catalog.Stats()
}

// Catalog returns the catalog the service searches.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}
