// Package repotest provides migrated in-memory databases for tests of the
// repositories and the layers built on them.
package repotest

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/dmitrijs2005/swingnotes/internal/server/migrations"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// OpenSQLite returns a fresh, fully migrated in-memory SQLite database with
// foreign keys enforced. It is closed when the test ends.
func OpenSQLite(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	fsys, err := fs.Sub(migrations.Migrations, migrations.DirSQLite)
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	p, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		t.Fatalf("goose provider: %v", err)
	}
	if _, err := p.Up(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// InsertUser adds a bare user row so that notes can reference it.
func InsertUser(t testing.TB, db *sql.DB, id, userName string) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO users (id, username, password_hash, created_at, updated_at) VALUES (?, ?, 'x', 0, 0)`,
		id, userName)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
}
