// Package notes defines note persistence and the read-side note queries.
package notes

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// Repository is the authoritative note store.
//
// List results are in insertion order (ids are allocated monotonically and
// never reused, so id order is insertion order). Search is a case-insensitive
// substring match over the title and the serialized content document; it is a
// deliberate O(n) scan, acceptable at personal-notes scale.
type Repository interface {
	Create(ctx context.Context, n *models.NewNote) (*models.Note, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	// Update merges the patch over the stored note and re-stamps UpdatedAt.
	// Returns common.ErrorNotFound if the note does not exist.
	Update(ctx context.Context, id int64, patch *models.NotePatch) (*models.Note, error)
	// Delete removes the note and its join rows, reporting whether a note
	// was removed.
	Delete(ctx context.Context, id int64) (bool, error)

	ListByOwner(ctx context.Context, userID int64) ([]*models.Note, error)
	ListByFolder(ctx context.Context, folderID int64) ([]*models.Note, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*models.Note, error)
	ListByTag(ctx context.Context, tagID int64) ([]*models.Note, error)
	Search(ctx context.Context, userID int64, query string) ([]*models.Note, error)
}
