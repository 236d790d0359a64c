package memstore

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// NoteTagRepo implements notetags.Repository over the shared store.
type NoteTagRepo struct {
	s *Store
}

func (r *NoteTagRepo) Add(ctx context.Context, noteID, tagID int64) (*models.NoteTag, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	// Uniqueness check and insert happen under the same lock, so two
	// concurrent adds of the same pair cannot both pass.
	for _, jt := range s.noteTags {
		if jt.NoteID == noteID && jt.TagID == tagID {
			return nil, common.ErrorConflict
		}
	}

	s.noteTagID++
	row := &models.NoteTag{ID: s.noteTagID, NoteID: noteID, TagID: tagID}
	s.noteTags[row.ID] = row

	out := *row
	return &out, nil
}

func (r *NoteTagRepo) Remove(ctx context.Context, noteID, tagID int64) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for jid, jt := range s.noteTags {
		if jt.NoteID == noteID && jt.TagID == tagID {
			delete(s.noteTags, jid)
			return true, nil
		}
	}
	return false, nil
}

func (r *NoteTagRepo) ListByNote(ctx context.Context, noteID int64) ([]*models.NoteTag, error) {
	return r.list(func(jt *models.NoteTag) bool { return jt.NoteID == noteID })
}

func (r *NoteTagRepo) ListByTag(ctx context.Context, tagID int64) ([]*models.NoteTag, error) {
	return r.list(func(jt *models.NoteTag) bool { return jt.TagID == tagID })
}

func (r *NoteTagRepo) list(match func(*models.NoteTag) bool) ([]*models.NoteTag, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.NoteTag, 0)
	for _, id := range sortedIDs(s.noteTags) {
		if match(s.noteTags[id]) {
			jt := *s.noteTags[id]
			out = append(out, &jt)
		}
	}
	return out, nil
}
