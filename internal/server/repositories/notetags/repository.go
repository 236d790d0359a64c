// Package notetags defines the note/tag join relation.
package notetags

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/server/models"
)

type Repository interface {
	// Add inserts a join row. A duplicate (noteID, tagID) pair is rejected
	// with common.ErrorConflict; this is a uniqueness contract, not an
	// upsert.
	Add(ctx context.Context, noteID, tagID int64) (*models.NoteTag, error)
	// Remove reports whether a join row existed. Repeated calls after the
	// first succeed in confirming absence without side effects.
	Remove(ctx context.Context, noteID, tagID int64) (bool, error)
	ListByNote(ctx context.Context, noteID int64) ([]*models.NoteTag, error)
	ListByTag(ctx context.Context, tagID int64) ([]*models.NoteTag, error)
}
