package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spherical/saleseer/internal/domain"
)

var createTableSQL = map[string]string{
	DriverSQLite: `
		CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			color TEXT NOT NULL,
			price REAL NOT NULL,
			rating REAL NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		)
	`,
	DriverPostgres: `
		CREATE TABLE IF NOT EXISTS %s (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			color TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			rating DOUBLE PRECISION NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		)
	`,
}

// ProgressFunc is called after each product is written.
type ProgressFunc func(written int)

// WriteSQL replaces the contents of table with products, creating the table
// if needed. The write happens in one transaction.
func WriteSQL(ctx context.Context, db *sql.DB, driver, table string, products []domain.Product, progress ProgressFunc) error {
	if err := ValidateTable(table); err != nil {
		return err
	}
	ddl, ok := createTableSQL[driver]
	if !ok {
		return domain.ValidationError(fmt.Sprintf("unsupported driver %q", driver), nil)
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf(ddl, table)); err != nil {
		return domain.IOError(fmt.Sprintf("create table %s", table), err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domain.IOError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return domain.IOError(fmt.Sprintf("clear table %s", table), err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (name, category, color, price, rating, image_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, table))
	if err != nil {
		return domain.IOError("prepare insert", err)
	}
	defer stmt.Close()

	for i, p := range products {
		if _, err := stmt.ExecContext(ctx, p.Name, p.Category, p.Color, p.Price, p.Rating, p.ImageURL, p.Description); err != nil {
			return domain.IOError(fmt.Sprintf("insert row %d", i+1), err)
		}
		if progress != nil {
			progress(i + 1)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.IOError("commit", err)
	}
	return nil
}
