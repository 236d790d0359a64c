package memstore

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// CategoryRepo implements categories.Repository over the shared store.
type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) Create(ctx context.Context, c *models.NewCategory) (*models.Category, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categoryID++
	category := &models.Category{
		ID:        s.categoryID,
		Name:      c.Name,
		Color:     c.Color,
		UserID:    c.UserID,
		CreatedAt: s.now(),
	}
	s.categories[category.ID] = category

	out := *category
	return &out, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *category
	return &out, nil
}

func (r *CategoryRepo) Update(ctx context.Context, id int64, patch *models.CategoryPatch) (*models.Category, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Color != nil {
		category.Color = *patch.Color
	}

	out := *category
	return &out, nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return false, nil
	}

	for _, n := range s.notes {
		if n.CategoryID != nil && *n.CategoryID == id {
			n.CategoryID = nil
		}
	}
	delete(s.categories, id)
	return true, nil
}

func (r *CategoryRepo) ListByOwner(ctx context.Context, userID int64) ([]*models.Category, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Category, 0)
	for _, id := range sortedIDs(s.categories) {
		if s.categories[id].UserID == userID {
			c := *s.categories[id]
			out = append(out, &c)
		}
	}
	return out, nil
}
