package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/spherical/saleseer/internal/domain"
)

// BroadenSuggestions are shown when a search returns nothing.
var BroadenSuggestions = []string{
	"Try broader search terms",
	"Check the available categories and colors (saleseer stats)",
	"Adjust your price range",
}

// Stars renders a rating as whole stars followed by the exact value.
func Stars(rating float64) string {
	n := int(math.Floor(rating))
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return fmt.Sprintf("%s (%s/5)", strings.Repeat("★", n), domain.FormatNumber(rating))
}

// FormatPrice renders a price with two decimals.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// Title capitalizes the first letter of each word.
func Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ProductCard formats one product for a Box.
func ProductCard(p domain.Product) string {
	lines := []string{
		fmt.Sprintf("Category: %s", Title(p.Category)),
		fmt.Sprintf("Color: %s", Title(p.Color)),
		fmt.Sprintf("Price: %s", FormatPrice(p.Price)),
		fmt.Sprintf("Rating: %s", Stars(p.Rating)),
	}
	if p.Description != "" {
		lines = append(lines, "", p.Description)
	}
	if p.ImageURL != "" {
		lines = append(lines, "Image: "+p.ImageURL)
	}
	return strings.Join(lines, "\n")
}

// ProductCards prints each product in its own box.
func ProductCards(products []domain.Product) {
	for i, p := range products {
		Box(fmt.Sprintf("%d. %s", i+1, p.Name), ProductCard(p))
	}
}

// ProductTable prints products as an aligned table.
func ProductTable(products []domain.Product) {
	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{p.Name, p.Category, p.Color, FormatPrice(p.Price), domain.FormatNumber(p.Rating), p.Description}
	}
	Table([]string{"NAME", "CATEGORY", "COLOR", "PRICE", "RATING", "DESCRIPTION"}, rows)
}

// CatalogStats prints the catalog overview.
func CatalogStats(stats domain.CatalogStats) {
	Section("Inventory Overview")
	KeyValue("Total Products", fmt.Sprintf("%d", stats.TotalProducts))
	KeyValue("Average Rating", fmt.Sprintf("%.1f/5", stats.AvgRating))
	KeyValue("Price Range", fmt.Sprintf("$%.0f - $%.0f", stats.PriceRange.Min, stats.PriceRange.Max))
	KeyValue("Average Price", FormatPrice(stats.PriceRange.Avg))

	Section("Available Categories")
	fmt.Fprint(out, FormatList(titled(stats.Categories)))

	Section("Available Colors")
	fmt.Fprint(out, FormatList(titled(stats.Colors)))
}

func titled(items []string) []string {
	titles := make([]string, len(items))
	for i, s := range items {
		titles[i] = Title(s)
	}
	return titles
}
