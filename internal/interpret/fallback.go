package interpret

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spherical/saleseer/internal/domain"
)

// fallbackColors is scanned in order; the first substring hit wins.
var fallbackColors = []string{
	"red", "blue", "green", "black", "white", "pink", "yellow",
	"purple", "orange", "brown", "grey", "gray", "navy",
}

type categoryKeywords struct {
	category string
	keywords []string
}

// fallbackCategories is scanned in order; the first category with any keyword hit wins.
var fallbackCategories = []categoryKeywords{
	{"dress", []string{"dress", "gown"}},
	{"jeans", []string{"jeans", "denim"}},
	{"shirt", []string{"shirt", "blouse", "top"}},
	{"shoes", []string{"shoes", "sneakers", "boots"}},
	{"jacket", []string{"jacket", "blazer", "coat"}},
}

var (
	pricePattern = regexp.MustCompile(`\$?(\d+)`)

	upperBoundWords = []string{"under", "below", "less than"}
	lowerBoundWords = []string{"over", "above", "more than"}
)

// FallbackExtract builds Criteria from keyword and regex matches alone.
// It never sets RatingMin. Only the first number in the query is considered,
// so ranges like "between $50 and $200" yield a single bound.
func FallbackExtract(query string) domain.Criteria {
	lower := strings.ToLower(query)
	var c domain.Criteria

	for _, color := range fallbackColors {
		if strings.Contains(lower, color) {
			c.Color = color
			break
		}
	}

	for _, entry := range fallbackCategories {
		if containsAny(lower, entry.keywords) {
			c.Category = entry.category
			break
		}
	}

	if m := pricePattern.FindStringSubmatch(query); m != nil {
		price, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			switch {
			case containsAny(lower, upperBoundWords):
				c.PriceMax = &price
			case containsAny(lower, lowerBoundWords):
				c.PriceMin = &price
			default:
				c.PriceMax = &price
			}
		}
	}

	return c
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
