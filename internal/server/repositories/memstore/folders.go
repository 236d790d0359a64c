package memstore

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// FolderRepo implements folders.Repository over the shared store.
type FolderRepo struct {
	s *Store
}

func (r *FolderRepo) Create(ctx context.Context, f *models.NewFolder) (*models.Folder, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	s.folderID++
	folder := &models.Folder{
		ID:        s.folderID,
		Name:      f.Name,
		UserID:    f.UserID,
		CreatedAt: s.now(),
	}
	s.folders[folder.ID] = folder

	out := *folder
	return &out, nil
}

func (r *FolderRepo) GetByID(ctx context.Context, id int64) (*models.Folder, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	folder, ok := s.folders[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *folder
	return &out, nil
}

func (r *FolderRepo) Update(ctx context.Context, id int64, patch *models.FolderPatch) (*models.Folder, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	folder, ok := s.folders[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if patch.Name != nil {
		folder.Name = *patch.Name
	}

	out := *folder
	return &out, nil
}

func (r *FolderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.folders[id]; !ok {
		return false, nil
	}

	// Notes referencing the folder keep the row, only the reference is cleared.
	for _, n := range s.notes {
		if n.FolderID != nil && *n.FolderID == id {
			n.FolderID = nil
		}
	}
	delete(s.folders, id)
	return true, nil
}

func (r *FolderRepo) ListByOwner(ctx context.Context, userID int64) ([]*models.Folder, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Folder, 0)
	for _, id := range sortedIDs(s.folders) {
		if s.folders[id].UserID == userID {
			f := *s.folders[id]
			out = append(out, &f)
		}
	}
	return out, nil
}
