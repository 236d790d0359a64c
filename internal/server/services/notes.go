// Package services contains server-side business logic: payload validation,
// ownership checks, query dispatch and mirror notification. Handlers stay
// thin; repositories stay dumb.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/logging"
	"github.com/rohithmohanan1/Notes/internal/server/cache"
	"github.com/rohithmohanan1/Notes/internal/server/models"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/repomanager"
)

// SyncNotifier receives mutation notifications for the dual-write mirror.
// Implementations must not block the caller and must never return a write
// failure through this interface.
type SyncNotifier interface {
	NoteSaved(n *models.Note)
	NoteDeleted(userID, noteID int64)
	OwnerChanged(userID int64)
	SyncAll(ctx context.Context, userID int64) (int, error)
}

// NoteFilter selects which notes a listing returns. Exactly one criterion
// applies, in precedence order: Query, FolderID, CategoryID, TagID, then
// all notes of the owner.
type NoteFilter struct {
	UserID     int64
	Query      string
	FolderID   *int64
	CategoryID *int64
	TagID      *int64
}

// NoteService implements the note operations, including the tag
// association pair, which is where the uniqueness contract lives.
type NoteService struct {
	repos  repomanager.RepositoryManager
	mirror SyncNotifier
	cache  *cache.Cache
	log    logging.Logger
}

func NewNoteService(m repomanager.RepositoryManager, mirror SyncNotifier,
	c *cache.Cache, log logging.Logger) *NoteService {
	return &NoteService{repos: m, mirror: mirror, cache: c, log: log}
}

// List dispatches by filter precedence. Folder, category and tag listings
// are owner-scoped here: rows belonging to other users are filtered out
// rather than leaked.
func (s *NoteService) List(ctx context.Context, f NoteFilter) ([]*models.Note, error) {
	verr := &common.ValidationError{}
	if f.UserID == 0 {
		verr.Add("userId", "is required")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	key := listKey(f)
	if cached, ok := s.cache.Get(key); ok {
		if result, ok := cached.([]*models.Note); ok {
			return result, nil
		}
	}

	var (
		result []*models.Note
		err    error
	)
	switch {
	case f.Query != "":
		result, err = s.repos.Notes().Search(ctx, f.UserID, f.Query)
	case f.FolderID != nil:
		result, err = s.repos.Notes().ListByFolder(ctx, *f.FolderID)
	case f.CategoryID != nil:
		result, err = s.repos.Notes().ListByCategory(ctx, *f.CategoryID)
	case f.TagID != nil:
		result, err = s.repos.Notes().ListByTag(ctx, *f.TagID)
	default:
		result, err = s.repos.Notes().ListByOwner(ctx, f.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	result = scopeToOwner(result, f.UserID)
	s.cache.Put(key, result)
	return result, nil
}

func (s *NoteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	return s.repos.Notes().GetByID(ctx, id)
}

func (s *NoteService) Create(ctx context.Context, n *models.NewNote) (*models.Note, error) {
	verr := &common.ValidationError{}
	if n.Title == "" {
		verr.Add("title", "is required")
	}
	if n.UserID == 0 {
		verr.Add("userId", "is required")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, n.UserID, n.FolderID, n.CategoryID); err != nil {
		return nil, err
	}

	created, err := s.repos.Notes().Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}
	s.mirror.NoteSaved(created)
	return created, nil
}

func (s *NoteService) Update(ctx context.Context, id int64, patch *models.NotePatch) (*models.Note, error) {
	existing, err := s.repos.Notes().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	verr := &common.ValidationError{}
	if patch.Title != nil && *patch.Title == "" {
		verr.Add("title", "must not be empty")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, existing.UserID, patch.FolderID.Ptr(), patch.CategoryID.Ptr()); err != nil {
		return nil, err
	}

	updated, err := s.repos.Notes().Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.mirror.NoteSaved(updated)
	return updated, nil
}

func (s *NoteService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repos.Notes().GetByID(ctx, id)
	if err != nil {
		return err
	}

	found, err := s.repos.Notes().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	if !found {
		return common.ErrorNotFound
	}
	s.mirror.NoteDeleted(existing.UserID, id)
	return nil
}

// ListTags resolves the tags attached to a note.
func (s *NoteService) ListTags(ctx context.Context, noteID int64) ([]*models.Tag, error) {
	if _, err := s.repos.Notes().GetByID(ctx, noteID); err != nil {
		return nil, err
	}
	result, err := s.repos.Tags().ListByNote(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("listing note tags: %w", err)
	}
	return result, nil
}

// AddTag associates a tag with a note. Note and tag must belong to the same
// owner, and the pair must not exist yet; a duplicate surfaces
// common.ErrorConflict from the join repository untouched.
func (s *NoteService) AddTag(ctx context.Context, noteID, tagID int64) (*models.NoteTag, error) {
	note, err := s.repos.Notes().GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	tag, err := s.repos.Tags().GetByID(ctx, tagID)
	if err != nil {
		return nil, err
	}

	if note.UserID != tag.UserID {
		verr := &common.ValidationError{}
		verr.Add("tagId", "tag belongs to a different user")
		return nil, verr
	}

	jt, err := s.repos.NoteTags().Add(ctx, noteID, tagID)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("adding tag to note: %w", err)
	}
	s.mirror.OwnerChanged(note.UserID)
	return jt, nil
}

func (s *NoteService) RemoveTag(ctx context.Context, noteID, tagID int64) error {
	removed, err := s.repos.NoteTags().Remove(ctx, noteID, tagID)
	if err != nil {
		return fmt.Errorf("removing tag from note: %w", err)
	}
	if !removed {
		return common.ErrorNotFound
	}
	if note, err := s.repos.Notes().GetByID(ctx, noteID); err == nil {
		s.mirror.OwnerChanged(note.UserID)
	}
	return nil
}

// SyncAll pushes the owner's full note set to the mirror.
func (s *NoteService) SyncAll(ctx context.Context, userID int64) (int, error) {
	if userID == 0 {
		verr := &common.ValidationError{}
		verr.Add("userId", "is required")
		return 0, verr
	}
	return s.mirror.SyncAll(ctx, userID)
}

// checkReferences verifies that the referenced folder and category exist and
// belong to the note's owner. A bad reference is a validation problem, not a
// not-found, because the note payload is what is wrong.
func (s *NoteService) checkReferences(ctx context.Context, userID int64, folderID, categoryID *int64) error {
	verr := &common.ValidationError{}

	if folderID != nil {
		folder, err := s.repos.Folders().GetByID(ctx, *folderID)
		switch {
		case errors.Is(err, common.ErrorNotFound):
			verr.Add("folderId", "folder does not exist")
		case err != nil:
			return fmt.Errorf("checking folder: %w", err)
		case folder.UserID != userID:
			verr.Add("folderId", "folder belongs to a different user")
		}
	}

	if categoryID != nil {
		category, err := s.repos.Categories().GetByID(ctx, *categoryID)
		switch {
		case errors.Is(err, common.ErrorNotFound):
			verr.Add("categoryId", "category does not exist")
		case err != nil:
			return fmt.Errorf("checking category: %w", err)
		case category.UserID != userID:
			verr.Add("categoryId", "category belongs to a different user")
		}
	}

	return verr.Err()
}

func listKey(f NoteFilter) string {
	prefix := cache.OwnerPrefix(f.UserID)
	switch {
	case f.Query != "":
		return prefix + "q=" + f.Query
	case f.FolderID != nil:
		return fmt.Sprintf("%sfolder=%d", prefix, *f.FolderID)
	case f.CategoryID != nil:
		return fmt.Sprintf("%scategory=%d", prefix, *f.CategoryID)
	case f.TagID != nil:
		return fmt.Sprintf("%stag=%d", prefix, *f.TagID)
	default:
		return prefix + "all"
	}
}

func scopeToOwner(notes []*models.Note, userID int64) []*models.Note {
	out := make([]*models.Note, 0, len(notes))
	for _, n := range notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}
