// Package tags defines tag persistence.
package tags

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, t *models.NewTag) (*models.Tag, error)
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
	// Update returns common.ErrorNotFound if the tag does not exist.
	Update(ctx context.Context, id int64, patch *models.TagPatch) (*models.Tag, error)
	// Delete removes the tag and every join row referencing it.
	Delete(ctx context.Context, id int64) (bool, error)
	ListByOwner(ctx context.Context, userID int64) ([]*models.Tag, error)
	// ListByNote resolves the tags associated with a note through the join
	// relation.
	ListByNote(ctx context.Context, noteID int64) ([]*models.Tag, error)
}
