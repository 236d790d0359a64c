package services

import (
	"context"
	"fmt"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/server/models"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/repomanager"
)

// FolderService implements folder CRUD. Deleting a folder never deletes
// notes; the repository nulls their folder reference.
type FolderService struct {
	repos  repomanager.RepositoryManager
	mirror SyncNotifier
}

func NewFolderService(m repomanager.RepositoryManager, mirror SyncNotifier) *FolderService {
	return &FolderService{repos: m, mirror: mirror}
}

func (s *FolderService) List(ctx context.Context, userID int64) ([]*models.Folder, error) {
	if userID == 0 {
		verr := &common.ValidationError{}
		verr.Add("userId", "is required")
		return nil, verr
	}
	result, err := s.repos.Folders().ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}
	return result, nil
}

func (s *FolderService) Get(ctx context.Context, id int64) (*models.Folder, error) {
	return s.repos.Folders().GetByID(ctx, id)
}

func (s *FolderService) Create(ctx context.Context, f *models.NewFolder) (*models.Folder, error) {
	verr := &common.ValidationError{}
	if f.Name == "" {
		verr.Add("name", "is required")
	}
	if f.UserID == 0 {
		verr.Add("userId", "is required")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	created, err := s.repos.Folders().Create(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("creating folder: %w", err)
	}
	s.mirror.OwnerChanged(created.UserID)
	return created, nil
}

func (s *FolderService) Update(ctx context.Context, id int64, patch *models.FolderPatch) (*models.Folder, error) {
	if patch.Name != nil && *patch.Name == "" {
		verr := &common.ValidationError{}
		verr.Add("name", "must not be empty")
		return nil, verr
	}

	updated, err := s.repos.Folders().Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.mirror.OwnerChanged(updated.UserID)
	return updated, nil
}

func (s *FolderService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repos.Folders().GetByID(ctx, id)
	if err != nil {
		return err
	}

	found, err := s.repos.Folders().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting folder: %w", err)
	}
	if !found {
		return common.ErrorNotFound
	}
	s.mirror.OwnerChanged(existing.UserID)
	return nil
}
