package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/spherical/saleseer/internal/domain"
)

// Database driver names as registered with database/sql.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DB is the subset of *sql.DB and *sql.Tx used by the catalog.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateTable rejects table names that are not plain SQL identifiers.
func ValidateTable(table string) error {
	if !identifierPattern.MatchString(table) {
		return domain.ValidationError(fmt.Sprintf("invalid table name %q", table), nil)
	}
	return nil
}

// OpenDB opens a database connection for driver and verifies it.
func OpenDB(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, domain.IOError("open database", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, domain.IOError("ping database", err)
	}
	return db, nil
}

// ReadSQL loads all products from table in id order.
func ReadSQL(ctx context.Context, db DB, table string) ([]domain.Product, error) {
	if err := ValidateTable(table); err != nil {
		return nil, err
	}
	if err := checkTableColumns(ctx, db, table); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT name, category, color, price, rating, image_url, description
		FROM %s ORDER BY id
	`, table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.CatalogError("query catalog table", err)
	}
	defer rows.Close()

	var products []domain.Product
	row := 0
	for rows.Next() {
		row++
		var p domain.Product
		var imageURL, description sql.NullString
		if err := rows.Scan(&p.Name, &p.Category, &p.Color, &p.Price, &p.Rating, &imageURL, &description); err != nil {
			return nil, domain.CatalogError(fmt.Sprintf("row %d", row), err)
		}
		if p.Price < 0 {
			return nil, domain.CatalogError(fmt.Sprintf("row %d", row),
				fmt.Errorf("invalid price: negative value %s", domain.FormatNumber(p.Price)))
		}
		p.ImageURL = imageURL.String
		p.Description = description.String
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.CatalogError("iterate catalog rows", err)
	}

	return products, nil
}

// checkTableColumns requires the catalog columns plus the id column, nothing else.
func checkTableColumns(ctx context.Context, db DB, table string) error {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 0", table))
	if err != nil {
		return domain.CatalogError(fmt.Sprintf("read table %s", table), err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return domain.CatalogError(fmt.Sprintf("read columns of %s", table), err)
	}

	index := make(map[string]int, len(cols))
	for i, col := range cols {
		col = strings.ToLower(col)
		if col == "id" {
			continue
		}
		if !domain.IsCatalogColumn(col) {
			return domain.CatalogError(fmt.Sprintf("unexpected column %q in table %s", col, table), nil)
		}
		index[col] = i
	}
	return requireColumns(index)
}
