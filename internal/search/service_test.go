package search

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spherical/saleseer/internal/catalog"
	"github.com/spherical/saleseer/internal/domain"
	"github.com/spherical/saleseer/internal/interpret"
	"github.com/spherical/saleseer/internal/observability"
)

type fixedInterpreter struct {
	result domain.Interpretation
}

func (f fixedInterpreter) Interpret(ctx context.Context, query string) domain.Interpretation {
	return f.result
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Product{
		{Name: "Red Dress", Category: "dress", Color: "red", Price: 150.0, Rating: 4.5},
		{Name: "Blue Jeans", Category: "jeans", Color: "blue", Price: 89.99, Rating: 4.2},
		{Name: "Black Jacket", Category: "jacket", Color: "black", Price: 299.99, Rating: 4.8},
	})
}

func TestSearch_ModelCriteria(t *testing.T) {
	svc := NewService(fixedInterpreter{domain.Interpretation{
		Criteria: domain.Criteria{PriceMax: domain.Float(200)},
		Source:   domain.SourceModel,
	}}, testCatalog(), observability.Nop())

	res := svc.Search(context.Background(), "anything under 200")

	require.NotNil(t, res)
	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, domain.SourceModel, res.Source)
	assert.Equal(t, 2, res.Count())
	assert.Equal(t, "Red Dress", res.Products[0].Name)
	assert.Equal(t, "Searching for: Max price: $200", res.Summary)
	assert.Contains(t, res.Explanation, "Found 2 items")
}

func TestSearch_FallbackPipeline(t *testing.T) {
	svc := NewService(interpret.New(nil, nil, interpret.DefaultConfig()), testCatalog(), nil)

	res := svc.Search(context.Background(), "Show me red dresses under $200")

	assert.Equal(t, domain.SourceFallback, res.Source)
	assert.Equal(t, interpret.ReasonModelDisabled, res.FallbackReason)
	require.Equal(t, 1, res.Count())
	assert.Equal(t, "Red Dress", res.Products[0].Name)
	assert.Equal(t, "Found 1 item. in dress in red under $200. • All items have excellent ratings.", res.Explanation)
}

func TestSearch_EmptyResult(t *testing.T) {
	svc := NewService(fixedInterpreter{domain.Interpretation{
		Criteria: domain.Criteria{Category: "shoes", Color: "purple"},
		Source:   domain.SourceModel,
	}}, testCatalog(), nil)

	res := svc.Search(context.Background(), "purple shoes")

	assert.Zero(t, res.Count())
	assert.Equal(t, catalog.NoResultsMessage, res.Explanation)
}

func TestSearch_ResultsAreIndependent(t *testing.T) {
	svc := NewService(interpret.New(nil, nil, interpret.DefaultConfig()), testCatalog(), nil)

	a := svc.Search(context.Background(), "red dress")
	b := svc.Search(context.Background(), "red dress")

	assert.NotEqual(t, a.ID, b.ID)
	a.Products[0].Name = "mutated"
	assert.Equal(t, "Red Dress", b.Products[0].Name)
}

func TestSearch_ResultCriteriaDoNotAliasInterpreter(t *testing.T) {
	svc := NewService(fixedInterpreter{domain.Interpretation{
		Criteria: domain.Criteria{PriceMax: domain.Float(200)},
		Source:   domain.SourceModel,
	}}, testCatalog(), nil)

	first := svc.Search(context.Background(), "under 200")
	*first.Criteria.PriceMax = 50

	second := svc.Search(context.Background(), "under 200")
	require.NotNil(t, second.Criteria.PriceMax)
	assert.Equal(t, 200.0, *second.Criteria.PriceMax)
	assert.Equal(t, 2, second.Count())
}

func TestStats(t *testing.T) {
	svc := NewService(fixedInterpreter{}, testCatalog(), nil)
	stats := svc.Stats()
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, []string{"dress", "jacket", "jeans"}, stats.Categories)
}
