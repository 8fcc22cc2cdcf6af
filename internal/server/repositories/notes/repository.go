// Package notes persists notes. Every method that reads or changes an
// existing note is scoped by owner, and a note owned by someone else is
// indistinguishable from one that does not exist.
package notes

import (
	"context"
	"time"

	"github.com/dmitrijs2005/swingnotes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	// ListByOwner returns the owner's notes, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Note, error)
	GetByOwner(ctx context.Context, ownerID, id string) (*models.Note, error)
	// UpdateByOwner applies the non-nil fields of patch and sets updated_at.
	UpdateByOwner(ctx context.Context, ownerID, id string, patch models.NotePatch, now time.Time) (*models.Note, error)
	DeleteByOwner(ctx context.Context, ownerID, id string) error
	// SearchByTitle matches query as a case-insensitive literal substring of
	// the title, newest first.
	SearchByTitle(ctx context.Context, ownerID, query string) ([]models.Note, error)
}
