package services

import (
	"context"
	"fmt"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/server/models"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/repomanager"
)

// CategoryService implements category CRUD. Color is restricted to the
// fixed palette; deleting a category nulls the reference on notes.
type CategoryService struct {
	repos  repomanager.RepositoryManager
	mirror SyncNotifier
}

func NewCategoryService(m repomanager.RepositoryManager, mirror SyncNotifier) *CategoryService {
	return &CategoryService{repos: m, mirror: mirror}
}

func (s *CategoryService) List(ctx context.Context, userID int64) ([]*models.Category, error) {
	if userID == 0 {
		verr := &common.ValidationError{}
		verr.Add("userId", "is required")
		return nil, verr
	}
	result, err := s.repos.Categories().ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return result, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return s.repos.Categories().GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, c *models.NewCategory) (*models.Category, error) {
	verr := &common.ValidationError{}
	if c.Name == "" {
		verr.Add("name", "is required")
	}
	if c.UserID == 0 {
		verr.Add("userId", "is required")
	}
	if c.Color == "" {
		verr.Add("color", "is required")
	} else if !models.ValidCategoryColor(c.Color) {
		verr.Add("color", "is not in the palette")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	created, err := s.repos.Categories().Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	s.mirror.OwnerChanged(created.UserID)
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, patch *models.CategoryPatch) (*models.Category, error) {
	verr := &common.ValidationError{}
	if patch.Name != nil && *patch.Name == "" {
		verr.Add("name", "must not be empty")
	}
	if patch.Color != nil && !models.ValidCategoryColor(*patch.Color) {
		verr.Add("color", "is not in the palette")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	updated, err := s.repos.Categories().Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.mirror.OwnerChanged(updated.UserID)
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repos.Categories().GetByID(ctx, id)
	if err != nil {
		return err
	}

	found, err := s.repos.Categories().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	if !found {
		return common.ErrorNotFound
	}
	s.mirror.OwnerChanged(existing.UserID)
	return nil
}
