package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spherical/saleseer/internal/domain"
)

func TestFallbackExtract(t *testing.T) {
	tests := []struct {
		query string
		want  domain.Criteria
	}{
		{
			query: "Show me red dresses under $200",
			want:  domain.Criteria{Category: "dress", Color: "red", PriceMax: domain.Float(200)},
		},
		{
			query: "blue denim",
			want:  domain.Criteria{Category: "jeans", Color: "blue"},
		},
		{
			query: "boots over $80",
			want:  domain.Criteria{Category: "shoes", PriceMin: domain.Float(80)},
		},
		{
			query: "jackets more than 150",
			want:  domain.Criteria{Category: "jacket", PriceMin: domain.Float(150)},
		},
		{
			query: "a blazer for 120",
			want:  domain.Criteria{Category: "jacket", PriceMax: domain.Float(120)},
		},
		{
			query: "something nice",
			want:  domain.Criteria{},
		},
		{
			query: "",
			want:  domain.Criteria{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackExtract(tt.query))
		})
	}
}

func TestFallbackExtract_FirstMatchWins(t *testing.T) {
	c := FallbackExtract("red or blue shirt")
	assert.Equal(t, "red", c.Color)
	assert.Equal(t, "shirt", c.Category)

	// "top" is a shirt keyword, checked after dress.
	c = FallbackExtract("dress with a top")
	assert.Equal(t, "dress", c.Category)
}

func TestFallbackExtract_OnlyFirstNumber(t *testing.T) {
	c := FallbackExtract("shoes between $50 and $200")
	assert.Nil(t, c.PriceMin)
	assert.Equal(t, domain.Float(50), c.PriceMax)
}

func TestFallbackExtract_NeverSetsRating(t *testing.T) {
	c := FallbackExtract("shoes rated 5 stars")
	assert.Nil(t, c.RatingMin)
}
