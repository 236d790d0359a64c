package folders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/dbx"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// PostgresRepository implements folder storage over *sql.DB. Delete runs its
// reference-nulling cascade inside a transaction.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, f *models.NewFolder) (*models.Folder, error) {
	query := `
		INSERT INTO folders (name, user_id)
		VALUES ($1, $2)
		RETURNING id, name, user_id, created_at`
	return scanFolder(r.db.QueryRowContext(ctx, query, f.Name, f.UserID))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Folder, error) {
	query := `SELECT id, name, user_id, created_at FROM folders WHERE id = $1`
	return scanFolder(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, patch *models.FolderPatch) (*models.Folder, error) {
	query := `
		UPDATE folders SET name = COALESCE($2, name)
		WHERE id = $1
		RETURNING id, name, user_id, created_at`
	return scanFolder(r.db.QueryRowContext(ctx, query, id, patch.Name))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var found bool
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `UPDATE notes SET folder_id = NULL WHERE folder_id = $1`, id); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM folders WHERE id = $1`, id)
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

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID int64) ([]*models.Folder, error) {
	query := `SELECT id, name, user_id, created_at FROM folders WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Folder, 0)
	for rows.Next() {
		f := &models.Folder{}
		if err := rows.Scan(&f.ID, &f.Name, &f.UserID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func scanFolder(row *sql.Row) (*models.Folder, error) {
	f := &models.Folder{}
	err := row.Scan(&f.ID, &f.Name, &f.UserID, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}
