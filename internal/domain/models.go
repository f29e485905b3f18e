package domain

import (
	"strconv"
	"strings"
)

// Criteria is the sparse search intent extracted from a query.
// A nil field means the dimension is unconstrained.
type Criteria struct {
	Category  string   `json:"category,omitempty"`
	Color     string   `json:"color,omitempty"`
	PriceMax  *float64 `json:"price_max,omitempty"`
	PriceMin  *float64 `json:"price_min,omitempty"`
	RatingMin *float64 `json:"rating_min,omitempty"`
}

// IsEmpty reports whether no field is set.
func (c Criteria) IsEmpty() bool {
	return c.Category == "" && c.Color == "" &&
		c.PriceMax == nil && c.PriceMin == nil && c.RatingMin == nil
}

// Clone returns a deep copy so callers never share the pointer fields.
func (c Criteria) Clone() Criteria {
	out := Criteria{Category: c.Category, Color: c.Color}
	out.PriceMax = cloneFloat(c.PriceMax)
	out.PriceMin = cloneFloat(c.PriceMin)
	out.RatingMin = cloneFloat(c.RatingMin)
	return out
}

// Float returns a pointer to v, for building Criteria literals.
func Float(v float64) *float64 {
	return &v
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// CriteriaSource records which path produced a Criteria value.
type CriteriaSource string

const (
	SourceModel    CriteriaSource = "model"
	SourceFallback CriteriaSource = "fallback"
	SourceCache    CriteriaSource = "cache"
)

// Interpretation is the outcome of interpreting one query.
type Interpretation struct {
	Criteria Criteria       `json:"criteria"`
	Source   CriteriaSource `json:"source"`
	// FallbackReason is set when Source is SourceFallback.
	FallbackReason string `json:"fallback_reason,omitempty"`
}

// Product is one catalog row.
type Product struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Color       string  `json:"color"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
}

// CatalogColumns is the exact column set every catalog source must provide.
var CatalogColumns = []string{"name", "category", "color", "price", "rating", "image_url", "description"}

// IsCatalogColumn reports whether name is one of CatalogColumns.
func IsCatalogColumn(name string) bool {
	name = strings.TrimSpace(strings.ToLower(name))
	for _, c := range CatalogColumns {
		if c == name {
			return true
		}
	}
	return false
}

// FilterResult is the ranked subsequence of a catalog matching some Criteria.
type FilterResult []Product

// PriceRange holds aggregate price figures.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// CatalogStats summarizes a full catalog.
type CatalogStats struct {
	TotalProducts int        `json:"total_products"`
	Categories    []string   `json:"categories"`
	Colors        []string   `json:"colors"`
	PriceRange    PriceRange `json:"price_range"`
	AvgRating     float64    `json:"avg_rating"`
}

// FormatRating prints a rating with one decimal: 4 -> "4.0".
func FormatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatNumber prints v without trailing zeros: 200 -> "200", 89.5 -> "89.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
