// Package users defines user persistence. Users are created on first
// external authentication and never updated or deleted afterwards.
package users

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.NewUser) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// GetByUID looks a user up by the external identity id.
	GetByUID(ctx context.Context, uid string) (*models.User, error)
}
