package memstore

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// TagRepo implements tags.Repository over the shared store.
type TagRepo struct {
	s *Store
}

func (r *TagRepo) Create(ctx context.Context, t *models.NewTag) (*models.Tag, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tagID++
	tag := &models.Tag{
		ID:        s.tagID,
		Name:      t.Name,
		UserID:    t.UserID,
		CreatedAt: s.now(),
	}
	s.tags[tag.ID] = tag

	out := *tag
	return &out, nil
}

func (r *TagRepo) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	tag, ok := s.tags[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *tag
	return &out, nil
}

func (r *TagRepo) Update(ctx context.Context, id int64, patch *models.TagPatch) (*models.Tag, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	tag, ok := s.tags[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if patch.Name != nil {
		tag.Name = *patch.Name
	}

	out := *tag
	return &out, nil
}

func (r *TagRepo) Delete(ctx context.Context, id int64) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tags[id]; !ok {
		return false, nil
	}

	// Cascade: every join row referencing the tag goes with it.
	for jid, jt := range s.noteTags {
		if jt.TagID == id {
			delete(s.noteTags, jid)
		}
	}
	delete(s.tags, id)
	return true, nil
}

func (r *TagRepo) ListByOwner(ctx context.Context, userID int64) ([]*models.Tag, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Tag, 0)
	for _, id := range sortedIDs(s.tags) {
		if s.tags[id].UserID == userID {
			t := *s.tags[id]
			out = append(out, &t)
		}
	}
	return out, nil
}

func (r *TagRepo) ListByNote(ctx context.Context, noteID int64) ([]*models.Tag, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	tagged := make(map[int64]bool)
	for _, jt := range s.noteTags {
		if jt.NoteID == noteID {
			tagged[jt.TagID] = true
		}
	}

	out := make([]*models.Tag, 0)
	for _, id := range sortedIDs(s.tags) {
		if tagged[id] {
			t := *s.tags[id]
			out = append(out, &t)
		}
	}
	return out, nil
}
