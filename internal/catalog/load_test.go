package catalog

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spherical/saleseer/internal/domain"
	"github.com/spherical/saleseer/internal/observability"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		source string
		want   Location
	}{
		{"products.csv", Location{Kind: KindCSV, Target: "products.csv"}},
		{"data/catalog.db", Location{Kind: KindSQLite, Driver: DriverSQLite, Target: "data/catalog.db"}},
		{"catalog.SQLite3", Location{Kind: KindSQLite, Driver: DriverSQLite, Target: "catalog.SQLite3"}},
		{"sqlite::memory:", Location{Kind: KindSQLite, Driver: DriverSQLite, Target: ":memory:"}},
		{"postgres://u:p@h/db", Location{Kind: KindPostgres, Driver: DriverPostgres, Target: "postgres://u:p@h/db"}},
		{"postgresql://h/db", Location{Kind: KindPostgres, Driver: DriverPostgres, Target: "postgresql://h/db"}},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSource(tt.source))
		})
	}
}

func TestRedact(t *testing.T) {
	loc := ParseSource("postgres://user:secret@db:5432/shop?sslmode=disable")
	assert.Equal(t, "postgres://***@db:5432/shop?sslmode=disable", redact(loc))
	assert.Equal(t, "products.csv", redact(ParseSource("products.csv")))
}

func TestLoad_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	cat, err := Load(context.Background(), path, "products", observability.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, path, cat.Source())
}

func TestLoad_EmptySource(t *testing.T) {
	_, err := Load(context.Background(), " ", "products", nil)
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeConfig))
}

func TestWriteAndReadSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := OpenDB(ctx, DriverSQLite, path)
	require.NoError(t, err)

	var progress []int
	err = WriteSQL(ctx, db, DriverSQLite, "products", sampleProducts(), func(n int) {
		progress = append(progress, n)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, progress)

	// A second import replaces rows instead of appending.
	require.NoError(t, WriteSQL(ctx, db, DriverSQLite, "products", sampleProducts(), nil))
	require.NoError(t, db.Close())

	cat, err := Load(ctx, path, "products", observability.Nop())
	require.NoError(t, err)
	assert.Equal(t, sampleProducts(), cat.Products())
}

func TestReadSQL_SchemaMismatch(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	_, err = db.ExecContext(ctx, `CREATE TABLE products (id INTEGER PRIMARY KEY, name TEXT, price REAL)`)
	require.NoError(t, err)

	_, err = ReadSQL(ctx, db, "products")
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeCatalog))
	assert.Contains(t, err.Error(), "missing columns")
}

func TestValidateTable(t *testing.T) {
	assert.NoError(t, ValidateTable("products_v2"))
	assert.Error(t, ValidateTable("products; DROP TABLE x"))
	assert.Error(t, ValidateTable(""))
}
