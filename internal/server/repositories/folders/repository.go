// Package folders defines folder persistence.
package folders

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, f *models.NewFolder) (*models.Folder, error)
	GetByID(ctx context.Context, id int64) (*models.Folder, error)
	// Update returns common.ErrorNotFound if the folder does not exist.
	Update(ctx context.Context, id int64, patch *models.FolderPatch) (*models.Folder, error)
	// Delete nulls FolderID on every note referencing the folder, then
	// removes the folder. Notes themselves are never deleted.
	Delete(ctx context.Context, id int64) (bool, error)
	ListByOwner(ctx context.Context, userID int64) ([]*models.Folder, error)
}
