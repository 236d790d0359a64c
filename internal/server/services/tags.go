package services

import (
	"context"
	"fmt"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/server/models"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/repomanager"
)

// TagService implements tag CRUD. Deleting a tag drops its join rows but
// leaves the notes alone.
type TagService struct {
	repos  repomanager.RepositoryManager
	mirror SyncNotifier
}

func NewTagService(m repomanager.RepositoryManager, mirror SyncNotifier) *TagService {
	return &TagService{repos: m, mirror: mirror}
}

// List returns either the tags of one note or every tag of the owner.
// One of noteID and userID must be provided; noteID wins when both are.
func (s *TagService) List(ctx context.Context, userID int64, noteID *int64) ([]*models.Tag, error) {
	if userID == 0 && noteID == nil {
		verr := &common.ValidationError{}
		verr.Add("userId", "either userId or noteId is required")
		return nil, verr
	}

	var (
		result []*models.Tag
		err    error
	)
	if noteID != nil {
		result, err = s.repos.Tags().ListByNote(ctx, *noteID)
	} else {
		result, err = s.repos.Tags().ListByOwner(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	return result, nil
}

func (s *TagService) Get(ctx context.Context, id int64) (*models.Tag, error) {
	return s.repos.Tags().GetByID(ctx, id)
}

func (s *TagService) Create(ctx context.Context, t *models.NewTag) (*models.Tag, error) {
	verr := &common.ValidationError{}
	if t.Name == "" {
		verr.Add("name", "is required")
	}
	if t.UserID == 0 {
		verr.Add("userId", "is required")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	created, err := s.repos.Tags().Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("creating tag: %w", err)
	}
	s.mirror.OwnerChanged(created.UserID)
	return created, nil
}

func (s *TagService) Update(ctx context.Context, id int64, patch *models.TagPatch) (*models.Tag, error) {
	if patch.Name != nil && *patch.Name == "" {
		verr := &common.ValidationError{}
		verr.Add("name", "must not be empty")
		return nil, verr
	}

	updated, err := s.repos.Tags().Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.mirror.OwnerChanged(updated.UserID)
	return updated, nil
}

func (s *TagService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repos.Tags().GetByID(ctx, id)
	if err != nil {
		return err
	}

	found, err := s.repos.Tags().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}
	if !found {
		return common.ErrorNotFound
	}
	s.mirror.OwnerChanged(existing.UserID)
	return nil
}
