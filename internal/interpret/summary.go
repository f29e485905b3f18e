package interpret

import (
	"fmt"
	"strings"

	"github.com/spherical/saleseer/internal/domain"
)

const (
	summaryLeadIn    = "Searching for: "
	summarySeparator = " | "
)

// Summarize describes what was understood from the query.
func Summarize(c domain.Criteria, query string) string {
	if c.IsEmpty() {
		return fmt.Sprintf("%s'%s' (showing all products)", summaryLeadIn, query)
	}

	var parts []string
	if c.Category != "" {
		parts = append(parts, "Category: "+c.Category)
	}
	if c.Color != "" {
		parts = append(parts, "Color: "+c.Color)
	}
	if c.PriceMax != nil {
		parts = append(parts, "Max price: $"+domain.FormatNumber(*c.PriceMax))
	}
	if c.PriceMin != nil {
		parts = append(parts, "Min price: $"+domain.FormatNumber(*c.PriceMin))
	}
	if c.RatingMin != nil {
		parts = append(parts, "Min rating: "+domain.FormatRating(*c.RatingMin))
	}

	return summaryLeadIn + strings.Join(parts, summarySeparator)
}
