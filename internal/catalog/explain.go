package catalog

import (
	"fmt"
	"strings"

	"github.com/spherical/saleseer/internal/domain"
)

// NoResultsMessage is returned by Explain for an empty result.
const NoResultsMessage = "No products found matching your criteria. Try adjusting your search terms."

const (
	excellentRatingNote = "• All items have excellent ratings"
	goodRatingNote      = "• Items have good to excellent ratings"
	explainDelimiter    = ". "
)

// Explain describes a filter result in one sentence.
func Explain(result domain.FilterResult, criteria domain.Criteria) string {
	if len(result) == 0 {
		return NoResultsMessage
	}

	count := len(result)
	noun := "items"
	if count == 1 {
		noun = "item"
	}
	segments := []string{fmt.Sprintf("Found %d %s", count, noun)}

	var clauses []string
	if criteria.Category != "" {
		clauses = append(clauses, "in "+criteria.Category)
	}
	if criteria.Color != "" {
		clauses = append(clauses, "in "+criteria.Color)
	}
	if criteria.PriceMax != nil {
		clauses = append(clauses, "under $"+domain.FormatNumber(*criteria.PriceMax))
	}
	if criteria.RatingMin != nil {
		clauses = append(clauses, "with rating ≥ "+domain.FormatRating(*criteria.RatingMin))
	}
	if len(clauses) > 0 {
		segments = append(segments, strings.Join(clauses, " "))
	}

	minPrice, maxPrice := result[0].Price, result[0].Price
	var ratingSum float64
	for _, p := range result {
		ratingSum += p.Rating
		if p.Price < minPrice {
			minPrice = p.Price
		}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
	}

	switch avg := ratingSum / float64(count); {
	case avg >= 4.5:
		segments = append(segments, excellentRatingNote)
	case avg >= 4.0:
		segments = append(segments, goodRatingNote)
	}

	if count > 1 {
		segments = append(segments, fmt.Sprintf("• Price range: $%.2f - $%.2f", minPrice, maxPrice))
	}

	return strings.Join(segments, explainDelimiter) + "."
}
