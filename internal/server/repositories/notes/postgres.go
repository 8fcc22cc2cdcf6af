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

const pgNoteColumns = `id, user_id, title, text, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostgresNote(s rowScanner) (*models.Note, error) {
	n := &models.Note{}
	if err := s.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Text, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	n.CreatedAt = n.CreatedAt.UTC()
	n.UpdatedAt = n.UpdatedAt.UTC()
	return n, nil
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO notes (id, user_id, title, text, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		note.ID, note.OwnerID, note.Title, note.Text, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Note, error) {
	query :=
		`SELECT ` + pgNoteColumns + ` FROM notes
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`

	return r.query(ctx, query, ownerID)
}

func (r *PostgresRepository) GetByOwner(ctx context.Context, ownerID, id string) (*models.Note, error) {
	query :=
		`SELECT ` + pgNoteColumns + ` FROM notes
		 WHERE id = $1 AND user_id = $2`

	n, err := scanPostgresNote(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) UpdateByOwner(ctx context.Context, ownerID, id string, patch models.NotePatch, now time.Time) (*models.Note, error) {
	query :=
		`UPDATE notes SET title = COALESCE($1, title), text = COALESCE($2, text), updated_at = $3
		 WHERE id = $4 AND user_id = $5
		 RETURNING ` + pgNoteColumns

	n, err := scanPostgresNote(r.db.QueryRowContext(ctx, query, patch.Title, patch.Text, now, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteByOwner(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
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

func (r *PostgresRepository) SearchByTitle(ctx context.Context, ownerID, query string) ([]models.Note, error) {
	q :=
		`SELECT ` + pgNoteColumns + ` FROM notes
		 WHERE user_id = $1 AND title ILIKE '%' || $2 || '%' ESCAPE '\'
		 ORDER BY created_at DESC, id DESC`

	return r.query(ctx, q, ownerID, dbx.EscapeLike(query))
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Note, 0)
	for rows.Next() {
		n, err := scanPostgresNote(rows)
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
