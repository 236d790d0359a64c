package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/dbx"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

const noteColumns = `id, title, content, user_id, folder_id, category_id, created_at, updated_at`

// PostgresRepository implements note storage over *sql.DB. Delete runs its
// join-row cascade inside a transaction.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, n *models.NewNote) (*models.Note, error) {
	query := `
		INSERT INTO notes (title, content, user_id, folder_id, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + noteColumns
	return scanNote(r.db.QueryRowContext(ctx, query,
		n.Title, []byte(n.Content), n.UserID, n.FolderID, n.CategoryID))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`
	return scanNote(r.db.QueryRowContext(ctx, query, id))
}

// Update builds the SET clause from the fields the patch actually carries, so
// an explicit null on folder_id/category_id clears the reference while an
// omitted field stays untouched. updated_at is re-stamped unconditionally.
func (r *PostgresRepository) Update(ctx context.Context, id int64, patch *models.NotePatch) (*models.Note, error) {
	set := []string{"updated_at = now()"}
	args := []any{}
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}

	if patch.Title != nil {
		set = append(set, "title = "+arg(*patch.Title))
	}
	if patch.Content != nil {
		set = append(set, "content = "+arg([]byte(patch.Content)))
	}
	if patch.FolderID.Set {
		set = append(set, "folder_id = "+arg(patch.FolderID.Ptr()))
	}
	if patch.CategoryID.Set {
		set = append(set, "category_id = "+arg(patch.CategoryID.Ptr()))
	}

	query := `UPDATE notes SET ` + strings.Join(set, ", ") +
		` WHERE id = ` + arg(id) + ` RETURNING ` + noteColumns
	return scanNote(r.db.QueryRowContext(ctx, query, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var found bool
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM note_tags WHERE note_id = $1`, id); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
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

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID int64) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 ORDER BY id`
	return r.queryNotes(ctx, query, userID)
}

func (r *PostgresRepository) ListByFolder(ctx context.Context, folderID int64) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE folder_id = $1 ORDER BY id`
	return r.queryNotes(ctx, query, folderID)
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE category_id = $1 ORDER BY id`
	return r.queryNotes(ctx, query, categoryID)
}

func (r *PostgresRepository) ListByTag(ctx context.Context, tagID int64) ([]*models.Note, error) {
	query := `
		SELECT ` + qualify(noteColumns, "n") + `
		FROM notes n
		JOIN note_tags nt ON nt.note_id = n.id
		WHERE nt.tag_id = $1
		ORDER BY n.id`
	return r.queryNotes(ctx, query, tagID)
}

func (r *PostgresRepository) Search(ctx context.Context, userID int64, query string) ([]*models.Note, error) {
	q := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE user_id = $1
		  AND (title ILIKE '%' || $2 || '%' OR COALESCE(content::text, '') ILIKE '%' || $2 || '%')
		ORDER BY id`
	return r.queryNotes(ctx, q, userID, query)
}

func (r *PostgresRepository) queryNotes(ctx context.Context, query string, args ...any) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Note, 0)
	for rows.Next() {
		note := &models.Note{}
		var content []byte
		err := rows.Scan(&note.ID, &note.Title, &content, &note.UserID,
			&note.FolderID, &note.CategoryID, &note.CreatedAt, &note.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		note.Content = content
		out = append(out, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func scanNote(row *sql.Row) (*models.Note, error) {
	note := &models.Note{}
	var content []byte
	err := row.Scan(&note.ID, &note.Title, &content, &note.UserID,
		&note.FolderID, &note.CategoryID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	note.Content = content
	return note, nil
}

// qualify prefixes each column in a comma-separated list with a table alias.
func qualify(columns, alias string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}
