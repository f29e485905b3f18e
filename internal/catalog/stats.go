package catalog

import (
	"sort"

	"github.com/spherical/saleseer/internal/domain"
)

// Stats aggregates the full catalog. An empty catalog yields zero values
// and empty category and color lists.
func (c *Catalog) Stats() domain.CatalogStats {
	stats := domain.CatalogStats{
		TotalProducts: len(c.products),
		Categories:    []string{},
		Colors:        []string{},
	}
	if len(c.products) == 0 {
		return stats
	}

	categories := make(map[string]struct{})
	colors := make(map[string]struct{})

	minPrice, maxPrice := c.products[0].Price, c.products[0].Price
	var priceSum, ratingSum float64

	for _, p := range c.products {
		categories[p.Category] = struct{}{}
		colors[p.Color] = struct{}{}

		if p.Price < minPrice {
			minPrice = p.Price
		}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
		priceSum += p.Price
		ratingSum += p.Rating
	}

	n := float64(len(c.products))
	stats.Categories = sortedKeys(categories)
	stats.Colors = sortedKeys(colors)
	stats.PriceRange = domain.PriceRange{
		Min: minPrice,
		Max: maxPrice,
		Avg: priceSum / n,
	}
	stats.AvgRating = ratingSum / n

	return stats
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
