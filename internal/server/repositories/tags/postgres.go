package tags

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/dbx"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// PostgresRepository implements tag storage over *sql.DB. Delete runs its
// join-row cascade inside a transaction.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.NewTag) (*models.Tag, error) {
	query := `
		INSERT INTO tags (name, user_id)
		VALUES ($1, $2)
		RETURNING id, name, user_id, created_at`
	return scanTag(r.db.QueryRowContext(ctx, query, t.Name, t.UserID))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	query := `SELECT id, name, user_id, created_at FROM tags WHERE id = $1`
	return scanTag(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, patch *models.TagPatch) (*models.Tag, error) {
	query := `
		UPDATE tags SET name = COALESCE($2, name)
		WHERE id = $1
		RETURNING id, name, user_id, created_at`
	return scanTag(r.db.QueryRowContext(ctx, query, id, patch.Name))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var found bool
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM note_tags WHERE tag_id = $1`, id); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected error: %w", err)
		}
		found = rows > 0
		return nil
	})
	return found, err
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID int64) ([]*models.Tag, error) {
	query := `SELECT id, name, user_id, created_at FROM tags WHERE user_id = $1 ORDER BY id`
	return r.queryTags(ctx, query, userID)
}

func (r *PostgresRepository) ListByNote(ctx context.Context, noteID int64) ([]*models.Tag, error) {
	query := `
		SELECT t.id, t.name, t.user_id, t.created_at
		FROM tags t
		JOIN note_tags nt ON nt.tag_id = t.id
		WHERE nt.note_id = $1
		ORDER BY t.id`
	return r.queryTags(ctx, query, noteID)
}

func (r *PostgresRepository) queryTags(ctx context.Context, query string, args ...any) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Tag, 0)
	for rows.Next() {
		t := &models.Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.UserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func scanTag(row *sql.Row) (*models.Tag, error) {
	t := &models.Tag{}
	err := row.Scan(&t.ID, &t.Name, &t.UserID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}
