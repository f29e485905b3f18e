package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spherical/saleseer/internal/domain"
)

const utf8BOM = "\ufeff"

// LoadCSV reads a catalog file from path.
func LoadCSV(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.IOError(fmt.Sprintf("open catalog %s", path), err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses a catalog from r. The header must name exactly the catalog
// columns, in any order.
func ReadCSV(r io.Reader) ([]domain.Product, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.CatalogError("catalog has no header row", nil)
	}
	if err != nil {
		return nil, domain.CatalogError("read catalog header", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.CatalogError(fmt.Sprintf("row %d", row), err)
		}

		p, err := productFromRecord(record, index)
		if err != nil {
			return nil, domain.CatalogError(fmt.Sprintf("row %d", row), err)
		}
		products = append(products, p)
	}

	return products, nil
}

// columnIndex maps each catalog column to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if !domain.IsCatalogColumn(name) {
			return nil, domain.CatalogError(fmt.Sprintf("unexpected column %q", name), nil)
		}
		if _, dup := index[name]; dup {
			return nil, domain.CatalogError(fmt.Sprintf("duplicate column %q", name), nil)
		}
		index[name] = i
	}
	if err := requireColumns(index); err != nil {
		return nil, err
	}
	return index, nil
}

func requireColumns(index map[string]int) error {
	var missing []string
	for _, col := range domain.CatalogColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return domain.CatalogError("missing columns: "+strings.Join(missing, ", "), nil)
	}
	return nil
}

func productFromRecord(record []string, index map[string]int) (domain.Product, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	price, err := parseNumber(field("price"))
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid price: %w", err)
	}
	if price < 0 {
		return domain.Product{}, fmt.Errorf("invalid price: negative value %s", domain.FormatNumber(price))
	}

	rating, err := parseNumber(field("rating"))
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid rating: %w", err)
	}

	return domain.Product{
		Name:        field("name"),
		Category:    field("category"),
		Color:       field("color"),
		Price:       price,
		Rating:      rating,
		ImageURL:    field("image_url"),
		Description: field("description"),
	}, nil
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %s", s)
	}
	return f, nil
}
