package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/swingnotes/internal/dbx"
	"github.com/dmitrijs2005/swingnotes/internal/server/auth"
	"github.com/dmitrijs2005/swingnotes/internal/server/models"
	"github.com/dmitrijs2005/swingnotes/internal/server/repositories/notes"
	"github.com/dmitrijs2005/swingnotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/swingnotes/internal/server/repositories/repotest"
	"github.com/dmitrijs2005/swingnotes/internal/server/repositories/users"
)

// --- helpers ---

type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

type fixture struct {
	db     *sql.DB
	issuer *auth.Issuer
	users  *UserService
	notes  *NoteService
	clock  *stepClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := repotest.OpenSQLite(t)
	rm := &repomanager.SQLiteRepositoryManager{}
	clock := &stepClock{t: time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC), step: time.Second}
	issuer := auth.NewIssuer([]byte("test-secret"), time.Hour)

	return &fixture{
		db:     db,
		issuer: issuer,
		users:  NewUserService(db, rm, issuer).WithClock(clock.Now),
		notes:  NewNoteService(db, rm).WithClock(clock.Now),
		clock:  clock,
	}
}

func (f *fixture) signup(t *testing.T, name string) string {
	t.Helper()
	res, err := f.users.Signup(context.Background(), name, "password1")
	if err != nil {
		t.Fatalf("signup %s: %v", name, err)
	}
	return res.User.ID
}

// failingManager returns repositories whose every call fails with err.
type failingManager struct{ err error }

func (m failingManager) RunMigrations(context.Context, *sql.DB) error { return m.err }
func (m failingManager) Users(dbx.DBTX) users.Repository             { return failingUsers{m.err} }
func (m failingManager) Notes(dbx.DBTX) notes.Repository             { return failingNotes{m.err} }

type failingUsers struct{ err error }

func (f failingUsers) Create(context.Context, *models.User) (*models.User, error) { return nil, f.err }
func (f failingUsers) FindByUsername(context.Context, string) (*models.User, error) {
	return nil, f.err
}

type failingNotes struct{ err error }

func (f failingNotes) Create(context.Context, *models.Note) (*models.Note, error) { return nil, f.err }
func (f failingNotes) ListByOwner(context.Context, string) ([]models.Note, error) { return nil, f.err }
func (f failingNotes) GetByOwner(context.Context, string, string) (*models.Note, error) {
	return nil, f.err
}
func (f failingNotes) UpdateByOwner(context.Context, string, string, models.NotePatch, time.Time) (*models.Note, error) {
	return nil, f.err
}
func (f failingNotes) DeleteByOwner(context.Context, string, string) error { return f.err }
func (f failingNotes) SearchByTitle(context.Context, string, string) ([]models.Note, error) {
	return nil, f.err
}

type failingIssuer struct{}

func (failingIssuer) Issue(string, string) (string, error) { return "", errors.New("no key") }
