package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/swingnotes/internal/common"
	"github.com/dmitrijs2005/swingnotes/internal/server/models"
	"github.com/dmitrijs2005/swingnotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/swingnotes/internal/server/validation"
)

type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         Clock
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m, now: utcMicros}
}

// WithClock replaces the time source used for created/updated stamps.
func (s *NoteService) WithClock(c Clock) *NoteService {
	s.now = c
	return s
}

// List returns the caller's notes, newest first. Never nil.
func (s *NoteService) List(ctx context.Context, userID string) ([]models.Note, error) {
	notes, err := s.repomanager.Notes(s.db).ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return notes, nil
}

func (s *NoteService) Create(ctx context.Context, userID, title, text string) (*models.Note, error) {
	in, err := validation.NewNote(title, text)
	if err != nil {
		return nil, err
	}

	now := s.now()
	note := &models.Note{
		OwnerID:   userID,
		Title:     in.Title,
		Text:      in.Text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	note, err = s.repomanager.Notes(s.db).Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	return note, nil
}

// Get returns common.ErrorNotFound both for a missing note and for a note
// owned by someone else.
func (s *NoteService) Get(ctx context.Context, userID, noteID string) (*models.Note, error) {
	note, err := s.repomanager.Notes(s.db).GetByOwner(ctx, userID, noteID)
	if err != nil {
		return nil, notFoundOr(err, "error loading note")
	}
	return note, nil
}

// Update applies the provided fields. At least one must be set.
func (s *NoteService) Update(ctx context.Context, userID, noteID string, patch models.NotePatch) (*models.Note, error) {
	in, err := validation.NotePatch(patch.Title, patch.Text)
	if err != nil {
		return nil, err
	}

	note, err := s.repomanager.Notes(s.db).UpdateByOwner(ctx, userID, noteID,
		models.NotePatch{Title: in.Title, Text: in.Text}, s.now())
	if err != nil {
		return nil, notFoundOr(err, "error updating note")
	}
	return note, nil
}

// Delete removes the note. Deleting it again yields common.ErrorNotFound.
func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	if err := s.repomanager.Notes(s.db).DeleteByOwner(ctx, userID, noteID); err != nil {
		return notFoundOr(err, "error deleting note")
	}
	return nil
}

// SearchByTitle finds the caller's notes whose title contains query,
// ignoring case. Newest first. Never nil.
func (s *NoteService) SearchByTitle(ctx context.Context, userID, query string) ([]models.Note, error) {
	q, err := validation.SearchQuery(query)
	if err != nil {
		return nil, err
	}

	notes, err := s.repomanager.Notes(s.db).SearchByTitle(ctx, userID, q)
	if err != nil {
		return nil, fmt.Errorf("error searching notes: %w", err)
	}
	return notes, nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
