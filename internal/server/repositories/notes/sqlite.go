package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/swingnotes/internal/common"
	"github.com/dmitrijs2005/swingnotes/internal/dbx"
	"github.com/dmitrijs2005/swingnotes/internal/server/models"
	"github.com/google/uuid"
)

const sqliteNoteColumns = `id, user_id, title, text, created_at, updated_at`

// SQLiteRepository stores timestamps as UTC Unix nanoseconds. Ties on
// created_at are broken by insertion order.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func scanSQLiteNote(s rowScanner) (*models.Note, error) {
	var created, updated int64
	n := &models.Note{}
	if err := s.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Text, &created, &updated); err != nil {
		return nil, err
	}
	n.CreatedAt = dbx.FromUnixNano(created)
	n.UpdatedAt = dbx.FromUnixNano(updated)
	return n, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO notes (id, user_id, title, text, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		note.ID, note.OwnerID, note.Title, note.Text, dbx.UnixNano(note.CreatedAt), dbx.UnixNano(note.UpdatedAt))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Note, error) {
	query :=
		`SELECT ` + sqliteNoteColumns + ` FROM notes
		 WHERE user_id = ?
		 ORDER BY created_at DESC, rowid DESC`

	return r.query(ctx, query, ownerID)
}

func (r *SQLiteRepository) GetByOwner(ctx context.Context, ownerID, id string) (*models.Note, error) {
	query :=
		`SELECT ` + sqliteNoteColumns + ` FROM notes
		 WHERE id = ? AND user_id = ?`

	n, err := scanSQLiteNote(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) UpdateByOwner(ctx context.Context, ownerID, id string, patch models.NotePatch, now time.Time) (*models.Note, error) {
	query :=
		`UPDATE notes SET title = COALESCE(?, title), text = COALESCE(?, text), updated_at = ?
		 WHERE id = ? AND user_id = ?
		 RETURNING ` + sqliteNoteColumns

	n, err := scanSQLiteNote(r.db.QueryRowContext(ctx, query, patch.Title, patch.Text, dbx.UnixNano(now), id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) DeleteByOwner(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) SearchByTitle(ctx context.Context, ownerID, query string) ([]models.Note, error) {
	q :=
		`SELECT ` + sqliteNoteColumns + ` FROM notes
		 WHERE user_id = ? AND ` + dbx.FoldFunc + `(title) LIKE '%' || ` + dbx.FoldFunc + `(?) || '%' ESCAPE '\'
		 ORDER BY created_at DESC, rowid DESC`

	return r.query(ctx, q, ownerID, dbx.EscapeLike(query))
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Note, 0)
	for rows.Next() {
		n, err := scanSQLiteNote(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
