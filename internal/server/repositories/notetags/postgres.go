package notetags

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/dbx"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// uniqueViolation is the PostgreSQL error code raised when the
// (note_id, tag_id) unique index rejects a duplicate pair.
const uniqueViolation = "23505"

// PostgresRepository implements the join relation over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, noteID, tagID int64) (*models.NoteTag, error) {
	query := `
		INSERT INTO note_tags (note_id, tag_id)
		VALUES ($1, $2)
		RETURNING id`
	row := &models.NoteTag{NoteID: noteID, TagID: tagID}
	err := r.db.QueryRowContext(ctx, query, noteID, tagID).Scan(&row.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return row, nil
}

func (r *PostgresRepository) Remove(ctx context.Context, noteID, tagID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM note_tags WHERE note_id = $1 AND tag_id = $2`, noteID, tagID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return rows > 0, nil
}

func (r *PostgresRepository) ListByNote(ctx context.Context, noteID int64) ([]*models.NoteTag, error) {
	query := `SELECT id, note_id, tag_id FROM note_tags WHERE note_id = $1 ORDER BY id`
	return r.query(ctx, query, noteID)
}

func (r *PostgresRepository) ListByTag(ctx context.Context, tagID int64) ([]*models.NoteTag, error) {
	query := `SELECT id, note_id, tag_id FROM note_tags WHERE tag_id = $1 ORDER BY id`
	return r.query(ctx, query, tagID)
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.NoteTag, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]*models.NoteTag, 0)
	for rows.Next() {
		jt := &models.NoteTag{}
		if err := rows.Scan(&jt.ID, &jt.NoteID, &jt.TagID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, jt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
