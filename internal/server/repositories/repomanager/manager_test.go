package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/swingnotes/internal/server/models"
	"github.com/dmitrijs2005/swingnotes/internal/server/repositories/notes"
	"github.com/dmitrijs2005/swingnotes/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewRepositoryManagers_ReturnInterface(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	pg, err := NewPostgresRepositoryManager(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lite, err := NewSQLiteRepositoryManager(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var _ RepositoryManager = pg
	var _ RepositoryManager = lite
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	pg := &PostgresRepositoryManager{}
	if _, ok := pg.Users(db).(*users.PostgresRepository); !ok {
		t.Fatal("Postgres Users() has wrong type")
	}
	if _, ok := pg.Notes(db).(*notes.PostgresRepository); !ok {
		t.Fatal("Postgres Notes() has wrong type")
	}

	lite := &SQLiteRepositoryManager{}
	if _, ok := lite.Users(db).(*users.SQLiteRepository); !ok {
		t.Fatal("SQLite Users() has wrong type")
	}
	if _, ok := lite.Notes(db).(*notes.SQLiteRepository); !ok {
		t.Fatal("SQLite Notes() has wrong type")
	}
}

func TestRunMigrations_UsesDialectDir(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	var dirs []string
	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		dirs = append(dirs, dir)
		return nil
	}
	defer func() { gooseUpContext = orig }()

	if err := (&PostgresRepositoryManager{}).RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("postgres RunMigrations error: %v", err)
	}
	if err := (&SQLiteRepositoryManager{}).RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("sqlite RunMigrations error: %v", err)
	}
	assert.Equal(t, []string{"postgres", "sqlite"}, dirs)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestParseDSN(t *testing.T) {
	tests := []struct {
		dsn     string
		backend Backend
		driver  string
		source  string
	}{
		{"postgres://u:p@localhost:5432/notes", BackendPostgres, "pgx", "postgres://u:p@localhost:5432/notes"},
		{"postgresql://localhost/notes", BackendPostgres, "pgx", "postgresql://localhost/notes"},
		{"sqlite://notes.db", BackendSQLite, "sqlite", "file:notes.db?" + sqlitePragmas},
		{"sqlite://", BackendSQLite, "sqlite", "file::memory:?" + sqlitePragmas},
		{"file:/tmp/n.db?cache=shared", BackendSQLite, "sqlite", "file:/tmp/n.db?cache=shared&" + sqlitePragmas},
		{":memory:", BackendSQLite, "sqlite", "file::memory:?" + sqlitePragmas},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			backend, driver, source, err := ParseDSN(tt.dsn)
			require.NoError(t, err)
			assert.Equal(t, tt.backend, backend)
			assert.Equal(t, tt.driver, driver)
			assert.Equal(t, tt.source, source)
		})
	}
}

func TestParseDSN_Unsupported(t *testing.T) {
	_, _, _, err := ParseDSN("mysql://root:hunter2@db/notes")
	require.ErrorIs(t, err, ErrUnsupportedDSN)
	assert.NotContains(t, err.Error(), "hunter2")
}

func TestOpen_SQLiteMemory_MigratesAndServes(t *testing.T) {
	ctx := context.Background()

	db, m, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.IsType(t, &SQLiteRepositoryManager{}, m)
	require.NoError(t, m.RunMigrations(ctx, db))

	now := time.Now().UTC().Truncate(time.Microsecond)
	u, err := m.Users(db).Create(ctx, &models.User{UserName: "alice", PasswordHash: "h", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	n, err := m.Notes(db).Create(ctx, &models.Note{OwnerID: u.ID, Title: "t", Text: "x", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	got, err := m.Notes(db).GetByOwner(ctx, u.ID, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
}

func TestOpen_Unsupported(t *testing.T) {
	_, _, err := Open(context.Background(), "redis://localhost")
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
