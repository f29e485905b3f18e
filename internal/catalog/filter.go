package catalog

import (
	"sort"
	"strings"

	"github.com/spherical/saleseer/internal/domain"
)

// Filter narrows the catalog by each present criteria field and ranks the
// remainder by rating descending, then price ascending. Category and color
// match as case-insensitive substrings, so "dress" also matches "dresses".
// Rows with equal rating and price keep catalog order.
func (c *Catalog) Filter(criteria domain.Criteria) domain.FilterResult {
	category := strings.ToLower(criteria.Category)
	color := strings.ToLower(criteria.Color)

	result := make(domain.FilterResult, 0, len(c.products))
	for _, p := range c.products {
		if matches(p, category, color, criteria) {
			result = append(result, p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Rating != result[j].Rating {
			return result[i].Rating > result[j].Rating
		}
		return result[i].Price < result[j].Price
	})

	return result
}

func matches(p domain.Product, category, color string, criteria domain.Criteria) bool {
	if category != "" && !strings.Contains(strings.ToLower(p.Category), category) {
		return false
	}
	if color != "" && !strings.Contains(strings.ToLower(p.Color), color) {
		return false
	}
	if criteria.PriceMax != nil && p.Price > *criteria.PriceMax {
		return false
	}
	if criteria.PriceMin != nil && p.Price < *criteria.PriceMin {
		return false
	}
	if criteria.RatingMin != nil && p.Rating < *criteria.RatingMin {
		return false
	}
	return true
}
