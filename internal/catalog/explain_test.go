package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spherical/saleseer/internal/domain"
)

func TestExplain_NoResults(t *testing.T) {
	got := Explain(nil, domain.Criteria{Category: "shoes", Color: "purple"})
	assert.Equal(t, NoResultsMessage, got)
	assert.Contains(t, got, "No products found")
}

func TestExplain_MultipleResults(t *testing.T) {
	result := domain.FilterResult{
		{Name: "Red Dress", Price: 150, Rating: 4.5},
		{Name: "Blue Jeans", Price: 89.99, Rating: 4.2},
	}
	criteria := domain.Criteria{PriceMax: domain.Float(200)}

	assert.Equal(t,
		"Found 2 items. under $200. • Items have good to excellent ratings. • Price range: $89.99 - $150.00.",
		Explain(result, criteria))
}

func TestExplain_SingleResult(t *testing.T) {
	result := domain.FilterResult{{Name: "Black Jacket", Price: 299.99, Rating: 4.8}}
	got := Explain(result, domain.Criteria{Category: "jacket", Color: "black", RatingMin: domain.Float(4.5)})

	assert.Equal(t, "Found 1 item. in jacket in black with rating ≥ 4.5. • All items have excellent ratings.", got)
	assert.NotContains(t, got, "1 items")
}

func TestExplain_RatingClauseKeepsOneDecimal(t *testing.T) {
	result := domain.FilterResult{{Price: 40, Rating: 4.2}}
	assert.Equal(t,
		"Found 1 item. with rating ≥ 4.0. • Items have good to excellent ratings.",
		Explain(result, domain.Criteria{RatingMin: domain.Float(4)}))
}

func TestExplain_LowRatingsOmitNote(t *testing.T) {
	result := domain.FilterResult{{Price: 10, Rating: 3.0}}
	assert.Equal(t, "Found 1 item.", Explain(result, domain.Criteria{}))
}

func TestExplain_PriceMinHasNoClause(t *testing.T) {
	result := domain.FilterResult{{Price: 120, Rating: 4.0}}
	assert.Equal(t,
		"Found 1 item. • Items have good to excellent ratings.",
		Explain(result, domain.Criteria{PriceMin: domain.Float(100)}))
}
