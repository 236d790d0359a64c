// Package categories defines category persistence.
package categories

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.NewCategory) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	// Update returns common.ErrorNotFound if the category does not exist.
	Update(ctx context.Context, id int64, patch *models.CategoryPatch) (*models.Category, error)
	// Delete nulls CategoryID on every note referencing the category, then
	// removes the category.
	Delete(ctx context.Context, id int64) (bool, error)
	ListByOwner(ctx context.Context, userID int64) ([]*models.Category, error)
}
