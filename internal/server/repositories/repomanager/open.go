package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedDSN = errors.New("unsupported database DSN")

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Backend identifies a database flavour.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// ParseDSN picks the backend from the DSN scheme and returns the driver name
// and data source to pass to sql.Open.
//
//	postgres://..., postgresql://...   PostgreSQL via pgx
//	sqlite://path, file:path, :memory: embedded SQLite
func ParseDSN(dsn string) (Backend, string, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, "pgx", dsn, nil

	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" || path == ":memory:" {
			return BackendSQLite, "sqlite", "file::memory:?" + sqlitePragmas, nil
		}
		return BackendSQLite, "sqlite", withPragmas("file:" + path), nil

	case strings.HasPrefix(dsn, "file:"):
		return BackendSQLite, "sqlite", withPragmas(dsn), nil

	case dsn == ":memory:":
		return BackendSQLite, "sqlite", "file::memory:?" + sqlitePragmas, nil
	}

	return "", "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redact(dsn))
}

func withPragmas(source string) string {
	if strings.Contains(source, "?") {
		return source + "&" + sqlitePragmas
	}
	return source + "?" + sqlitePragmas
}

// redact drops everything after the scheme so credentials are not echoed.
func redact(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://..."
	}
	return "..."
}

// Open connects to the database named by dsn, verifies the connection and
// returns the matching RepositoryManager. Migrations are not run.
func Open(ctx context.Context, dsn string) (*sql.DB, RepositoryManager, error) {
	backend, driver, source, err := ParseDSN(dsn)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", backend, err)
	}

	var m RepositoryManager
	switch backend {
	case BackendSQLite:
		// single writer; also keeps an in-memory database on one connection
		db.SetMaxOpenConns(1)
		m, err = NewSQLiteRepositoryManager(db)
	default:
		m, err = NewPostgresRepositoryManager(db)
	}
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", backend, err)
	}

	return db, m, nil
}
