package memstore

import (
	"context"
	"strings"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// NoteRepo implements notes.Repository over the shared store.
type NoteRepo struct {
	s *Store
}

func (r *NoteRepo) Create(ctx context.Context, n *models.NewNote) (*models.Note, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	s.noteID++
	now := s.now()
	note := &models.Note{
		ID:         s.noteID,
		Title:      n.Title,
		Content:    n.Content,
		UserID:     n.UserID,
		FolderID:   n.FolderID,
		CategoryID: n.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.notes[note.ID] = note

	out := *note
	return &out, nil
}

func (r *NoteRepo) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *note
	return &out, nil
}

func (r *NoteRepo) Update(ctx context.Context, id int64, patch *models.NotePatch) (*models.Note, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = patch.Content
	}
	if patch.FolderID.Set {
		note.FolderID = patch.FolderID.Ptr()
	}
	if patch.CategoryID.Set {
		note.CategoryID = patch.CategoryID.Ptr()
	}
	note.UpdatedAt = s.now()

	out := *note
	return &out, nil
}

func (r *NoteRepo) Delete(ctx context.Context, id int64) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return false, nil
	}

	// Cascade: the join rows of a deleted note go with it.
	for jid, jt := range s.noteTags {
		if jt.NoteID == id {
			delete(s.noteTags, jid)
		}
	}
	delete(s.notes, id)
	return true, nil
}

func (r *NoteRepo) ListByOwner(ctx context.Context, userID int64) ([]*models.Note, error) {
	return r.list(func(n *models.Note) bool { return n.UserID == userID })
}

func (r *NoteRepo) ListByFolder(ctx context.Context, folderID int64) ([]*models.Note, error) {
	return r.list(func(n *models.Note) bool {
		return n.FolderID != nil && *n.FolderID == folderID
	})
}

func (r *NoteRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*models.Note, error) {
	return r.list(func(n *models.Note) bool {
		return n.CategoryID != nil && *n.CategoryID == categoryID
	})
}

func (r *NoteRepo) ListByTag(ctx context.Context, tagID int64) ([]*models.Note, error) {
	s := r.s
	s.mu.RLock()
	tagged := make(map[int64]bool)
	for _, jt := range s.noteTags {
		if jt.TagID == tagID {
			tagged[jt.NoteID] = true
		}
	}
	s.mu.RUnlock()

	return r.list(func(n *models.Note) bool { return tagged[n.ID] })
}

// Search is a linear scan: case-insensitive substring match over the title
// and the serialized content document, scoped to the owner.
func (r *NoteRepo) Search(ctx context.Context, userID int64, query string) ([]*models.Note, error) {
	q := strings.ToLower(query)
	return r.list(func(n *models.Note) bool {
		if n.UserID != userID {
			return false
		}
		if strings.Contains(strings.ToLower(n.Title), q) {
			return true
		}
		return strings.Contains(strings.ToLower(string(n.Content)), q)
	})
}

func (r *NoteRepo) list(match func(*models.Note) bool) ([]*models.Note, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Note, 0)
	for _, id := range sortedIDs(s.notes) {
		if match(s.notes[id]) {
			n := *s.notes[id]
			out = append(out, &n)
		}
	}
	return out, nil
}
