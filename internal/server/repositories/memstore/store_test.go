package memstore

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

func ptr[T any](v T) *T { return &v }

func newNote(t *testing.T, s *Store, userID int64, title string) *models.Note {
	t.Helper()
	n, err := s.Notes().Create(context.Background(), &models.NewNote{Title: title, UserID: userID})
	require.NoError(t, err)
	return n
}

func TestNoteCreate_IdsIncreaseAndTimestampsMatch(t *testing.T) {
	s := New()
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		n, err := s.Notes().Create(ctx, &models.NewNote{Title: "n", UserID: 1})
		require.NoError(t, err)
		assert.Greater(t, n.ID, last)
		assert.True(t, n.CreatedAt.Equal(n.UpdatedAt), "createdAt must equal updatedAt at creation")
		last = n.ID
	}
}

func TestNoteUpdate_DisjointPatchesCommute(t *testing.T) {
	s := New()
	ctx := context.Background()

	// Fake clock so updatedAt strictly advances between calls.
	base := time.Now()
	step := 0
	s.now = func() time.Time { step++; return base.Add(time.Duration(step) * time.Millisecond) }

	n := newNote(t, s, 1, "orig")
	prev := n.UpdatedAt

	n1, err := s.Notes().Update(ctx, n.ID, &models.NotePatch{Title: ptr("renamed")})
	require.NoError(t, err)
	assert.True(t, n1.UpdatedAt.After(prev))

	doc := json.RawMessage(`{"type":"doc"}`)
	n2, err := s.Notes().Update(ctx, n.ID, &models.NotePatch{Content: doc})
	require.NoError(t, err)

	// Net effect carries both disjoint fields regardless of order.
	assert.Equal(t, "renamed", n2.Title)
	assert.JSONEq(t, string(doc), string(n2.Content))
	assert.True(t, n2.UpdatedAt.After(n1.UpdatedAt))
}

func TestNoteUpdate_NullClearsReference(t *testing.T) {
	s := New()
	ctx := context.Background()

	f, err := s.Folders().Create(ctx, &models.NewFolder{Name: "work", UserID: 1})
	require.NoError(t, err)

	n, err := s.Notes().Create(ctx, &models.NewNote{Title: "n", UserID: 1, FolderID: &f.ID})
	require.NoError(t, err)
	require.NotNil(t, n.FolderID)

	// Omitted folderId leaves the reference alone.
	n, err = s.Notes().Update(ctx, n.ID, &models.NotePatch{Title: ptr("t2")})
	require.NoError(t, err)
	require.NotNil(t, n.FolderID)

	// Explicit null clears it.
	n, err = s.Notes().Update(ctx, n.ID, &models.NotePatch{FolderID: models.OptionalID{Set: true}})
	require.NoError(t, err)
	assert.Nil(t, n.FolderID)
}

func TestNoteUpdate_Missing(t *testing.T) {
	s := New()
	_, err := s.Notes().Update(context.Background(), 42, &models.NotePatch{})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFolderDelete_NullsReferencesKeepsNotes(t *testing.T) {
	s := New()
	ctx := context.Background()

	f, err := s.Folders().Create(ctx, &models.NewFolder{Name: "f1", UserID: 1})
	require.NoError(t, err)

	var ids []int64
	for i := 0; i < 3; i++ {
		n, err := s.Notes().Create(ctx, &models.NewNote{Title: "n", UserID: 1, FolderID: &f.ID})
		require.NoError(t, err)
		ids = append(ids, n.ID)
	}

	found, err := s.Folders().Delete(ctx, f.ID)
	require.NoError(t, err)
	assert.True(t, found)

	for _, id := range ids {
		n, err := s.Notes().GetByID(ctx, id)
		require.NoError(t, err, "notes must survive folder deletion")
		assert.Nil(t, n.FolderID)
	}

	list, err := s.Folders().ListByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCategoryDelete_NullsReferences(t *testing.T) {
	s := New()
	ctx := context.Background()

	c, err := s.Categories().Create(ctx, &models.NewCategory{Name: "ideas", Color: "blue", UserID: 1})
	require.NoError(t, err)

	n, err := s.Notes().Create(ctx, &models.NewNote{Title: "n", UserID: 1, CategoryID: &c.ID})
	require.NoError(t, err)

	found, err := s.Categories().Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, found)

	n, err = s.Notes().GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Nil(t, n.CategoryID)
}

func TestNoteTagAdd_DuplicateRejected(t *testing.T) {
	s := New()
	ctx := context.Background()

	n := newNote(t, s, 1, "n")
	tag, err := s.Tags().Create(ctx, &models.NewTag{Name: "x", UserID: 1})
	require.NoError(t, err)

	row, err := s.NoteTags().Add(ctx, n.ID, tag.ID)
	require.NoError(t, err)
	require.NotNil(t, row)

	_, err = s.NoteTags().Add(ctx, n.ID, tag.ID)
	assert.ErrorIs(t, err, common.ErrorConflict)

	rows, err := s.NoteTags().ListByTag(ctx, tag.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "join table must contain exactly one matching row")
}

func TestNoteTagRemove_AbsentIsNotFoundOutcome(t *testing.T) {
	s := New()
	found, err := s.NoteTags().Remove(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNoteDelete_RemovesJoinRows(t *testing.T) {
	s := New()
	ctx := context.Background()

	n := newNote(t, s, 1, "n")
	tag, err := s.Tags().Create(ctx, &models.NewTag{Name: "t1", UserID: 1})
	require.NoError(t, err)

	_, err = s.NoteTags().Add(ctx, n.ID, tag.ID)
	require.NoError(t, err)

	found, err := s.Notes().Delete(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, found)

	rows, err := s.NoteTags().ListByTag(ctx, tag.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTagDelete_RemovesJoinRows(t *testing.T) {
	s := New()
	ctx := context.Background()

	n := newNote(t, s, 1, "n")
	tag, err := s.Tags().Create(ctx, &models.NewTag{Name: "t1", UserID: 1})
	require.NoError(t, err)
	_, err = s.NoteTags().Add(ctx, n.ID, tag.ID)
	require.NoError(t, err)

	found, err := s.Tags().Delete(ctx, tag.ID)
	require.NoError(t, err)
	assert.True(t, found)

	rows, err := s.NoteTags().ListByNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSearch_OwnerScopedCaseInsensitive(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Notes().Create(ctx, &models.NewNote{Title: "Hello World", UserID: 1})
	require.NoError(t, err)
	_, err = s.Notes().Create(ctx, &models.NewNote{
		Title:   "shopping",
		Content: json.RawMessage(`{"type":"doc","text":"say HELLO to milk"}`),
		UserID:  1,
	})
	require.NoError(t, err)
	// Same text, different owner: must not leak.
	_, err = s.Notes().Create(ctx, &models.NewNote{Title: "hello from u2", UserID: 2})
	require.NoError(t, err)

	got, err := s.Notes().Search(ctx, 1, "hello")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, n := range got {
		assert.Equal(t, int64(1), n.UserID)
	}
}

func TestListByOwner_InsertionOrderAndEmpty(t *testing.T) {
	s := New()
	ctx := context.Background()

	titles := []string{"a", "b", "c"}
	for _, title := range titles {
		newNote(t, s, 1, title)
	}

	got, err := s.Notes().ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, n := range got {
		assert.Equal(t, titles[i], n.Title)
	}

	empty, err := s.Notes().ListByOwner(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestListByTag_Join(t *testing.T) {
	s := New()
	ctx := context.Background()

	n1 := newNote(t, s, 1, "n1")
	n2 := newNote(t, s, 1, "n2")
	tag, err := s.Tags().Create(ctx, &models.NewTag{Name: "x", UserID: 1})
	require.NoError(t, err)

	_, err = s.NoteTags().Add(ctx, n1.ID, tag.ID)
	require.NoError(t, err)

	got, err := s.Notes().ListByTag(ctx, tag.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, n1.ID, got[0].ID)
	_ = n2
}

func TestConcurrentTagAdds_OnlyOneWins(t *testing.T) {
	s := New()
	ctx := context.Background()

	n := newNote(t, s, 1, "n")
	tag, err := s.Tags().Create(ctx, &models.NewTag{Name: "x", UserID: 1})
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.NoteTags().Add(ctx, n.ID, tag.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, common.ErrorConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, conflicts)

	rows, err := s.NoteTags().ListByNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
