package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/spherical/saleseer/internal/domain"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	var buf bytes.Buffer
	SetOutput(&buf, &buf)
	return &buf
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★ (4.5/5)", Stars(4.5))
	assert.Equal(t, "★★★★★ (5/5)", Stars(5))
	assert.Equal(t, " (0/5)", Stars(0))
	assert.Equal(t, "★★★★★ (7/5)", Stars(7))
}

func TestFormatPriceAndTitle(t *testing.T) {
	assert.Equal(t, "$89.99", FormatPrice(89.99))
	assert.Equal(t, "$150.00", FormatPrice(150))
	assert.Equal(t, "Evening Dress", Title("evening  dress"))
	assert.Equal(t, "", Title(""))
}

func TestProductCard(t *testing.T) {
	card := ProductCard(domain.Product{
		Name: "Red Dress", Category: "dress", Color: "red", Price: 150, Rating: 4.5,
		Description: "Elegant",
	})
	assert.Contains(t, card, "Category: Dress")
	assert.Contains(t, card, "Price: $150.00")
	assert.Contains(t, card, "Rating: ★★★★ (4.5/5)")
	assert.Contains(t, card, "Elegant")
	assert.NotContains(t, card, "Image:")
}

func TestProductTable(t *testing.T) {
	buf := captureOutput(t)
	ProductTable([]domain.Product{{Name: "Blue Jeans", Category: "jeans", Color: "blue", Price: 89.99, Rating: 4.2}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "$89.99")
}

func TestBox(t *testing.T) {
	buf := captureOutput(t)
	Box("Title", "line one\nline two")

	out := buf.String()
	assert.Contains(t, out, "│ Title")
	assert.Contains(t, out, "│ line two")
	assert.True(t, strings.HasPrefix(out, "┌"))
}

func TestCatalogStats(t *testing.T) {
	buf := captureOutput(t)
	CatalogStats(domain.CatalogStats{
		TotalProducts: 3,
		Categories:    []string{"dress", "jeans"},
		Colors:        []string{"red"},
		PriceRange:    domain.PriceRange{Min: 89.99, Max: 299.99, Avg: 180},
		AvgRating:     4.5,
	})

	out := buf.String()
	assert.Contains(t, out, "Total Products: 3")
	assert.Contains(t, out, "Price Range: $90 - $300")
	assert.Contains(t, out, "• Dress")
	assert.Contains(t, out, "• Red")
}
