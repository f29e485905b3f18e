package catalog

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/spherical/saleseer/internal/domain"
	"github.com/spherical/saleseer/internal/observability"
)

// SourceKind identifies how a catalog source is read.
type SourceKind string

const (
	KindCSV      SourceKind = "csv"
	KindSQLite   SourceKind = "sqlite"
	KindPostgres SourceKind = "postgres"
)

// Location is a parsed catalog source.
type Location struct {
	Kind SourceKind
	// Driver is the database/sql driver name; empty for CSV.
	Driver string
	// Target is the file path or DSN handed to the reader.
	Target string
}

// ParseSource classifies a source string. postgres:// and postgresql:// DSNs
// go to Postgres; sqlite: prefixes and .db/.sqlite/.sqlite3 files go to
// SQLite; anything else is read as CSV.
func ParseSource(source string) Location {
	lower := strings.ToLower(source)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return Location{Kind: KindPostgres, Driver: DriverPostgres, Target: source}
	case strings.HasPrefix(lower, "sqlite:"):
		return Location{Kind: KindSQLite, Driver: DriverSQLite, Target: source[len("sqlite:"):]}
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".db", ".sqlite", ".sqlite3":
		return Location{Kind: KindSQLite, Driver: DriverSQLite, Target: source}
	}
	return Location{Kind: KindCSV, Target: source}
}

// Load reads the catalog from source. table is used for SQL sources only.
// Any failure here is a startup error for callers.
func Load(ctx context.Context, source, table string, logger *observability.Logger) (*Catalog, error) {
	if logger == nil {
		logger = observability.Nop()
	}
	log := logger.WithComponent("catalog")
	start := time.Now()

	if strings.TrimSpace(source) == "" {
		return nil, domain.ConfigError("catalog source is empty", nil)
	}

	loc := ParseSource(source)

	var (
		products []domain.Product
		err      error
	)
	switch loc.Kind {
	case KindCSV:
		products, err = LoadCSV(loc.Target)
	default:
		products, err = loadSQL(ctx, loc, table)
	}
	if err != nil {
		log.Error().Err(err).Str("kind", string(loc.Kind)).Msg("Catalog load failed")
		return nil, err
	}

	log.Info().
		Str("kind", string(loc.Kind)).
		Int("products", len(products)).
		Dur("elapsed", time.Since(start)).
		Msg("Catalog loaded")

	return NewWithSource(products, redact(loc)), nil
}

func loadSQL(ctx context.Context, loc Location, table string) ([]domain.Product, error) {
	db, err := OpenDB(ctx, loc.Driver, loc.Target)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return ReadSQL(ctx, db, table)
}

// redact hides credentials in DSNs before they are shown to users.
func redact(loc Location) string {
	if loc.Kind != KindPostgres {
		return loc.Target
	}
	at := strings.LastIndex(loc.Target, "@")
	scheme := strings.Index(loc.Target, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return loc.Target
	}
	return loc.Target[:scheme+3] + "***" + loc.Target[at:]
}
