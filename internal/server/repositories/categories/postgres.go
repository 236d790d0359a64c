package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/dbx"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// PostgresRepository implements category storage over *sql.DB. Delete runs
// its reference-nulling cascade inside a transaction.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.NewCategory) (*models.Category, error) {
	query := `
		INSERT INTO categories (name, color, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, color, user_id, created_at`
	return scanCategory(r.db.QueryRowContext(ctx, query, c.Name, c.Color, c.UserID))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	query := `SELECT id, name, color, user_id, created_at FROM categories WHERE id = $1`
	return scanCategory(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, patch *models.CategoryPatch) (*models.Category, error) {
	query := `
		UPDATE categories SET name = COALESCE($2, name), color = COALESCE($3, color)
		WHERE id = $1
		RETURNING id, name, color, user_id, created_at`
	return scanCategory(r.db.QueryRowContext(ctx, query, id, patch.Name, patch.Color))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var found bool
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `UPDATE notes SET category_id = NULL WHERE category_id = $1`, id); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
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

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID int64) ([]*models.Category, error) {
	query := `SELECT id, name, color, user_id, created_at FROM categories WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Category, 0)
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.UserID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func scanCategory(row *sql.Row) (*models.Category, error) {
	c := &models.Category{}
	err := row.Scan(&c.ID, &c.Name, &c.Color, &c.UserID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}
