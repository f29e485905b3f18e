// Package catalog holds the read-only product catalog and the operations
// that query it: Filter, Stats and Explain.
package catalog

import (
	"github.com/spherical/saleseer/internal/domain"
)

// Catalog is an immutable collection of products. It is safe for concurrent
// reads; nothing mutates it after construction.
type Catalog struct {
	products []domain.Product
	source   string
}

// New builds a Catalog from products. The slice is copied.
func New(products []domain.Product) *Catalog {
	return NewWithSource(products, "")
}

// NewWithSource builds a Catalog and records where it was loaded from.
func NewWithSource(products []domain.Product, source string) *Catalog {
	cp := make([]domain.Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp, source: source}
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Source returns the location the catalog was loaded from, if known.
func (c *Catalog) Source() string {
	return c.source
}

// Products returns a copy of all products in catalog order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}
