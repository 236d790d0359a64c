package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/logging"
	"github.com/rohithmohanan1/Notes/internal/server/cache"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

type call struct {
	op  string
	key string
	doc []byte
}

// fakeStore records operations and can simulate a missing document or a
// failing backend.
type fakeStore struct {
	mutex   sync.Mutex
	calls   []call
	missing bool
	fail    error
	flushed chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{flushed: make(chan struct{}, 16)}
}

func (f *fakeStore) record(op, key string, doc []byte) {
	f.mutex.Lock()
	f.calls = append(f.calls, call{op: op, key: key, doc: doc})
	f.mutex.Unlock()
	f.flushed <- struct{}{}
}

func (f *fakeStore) Update(ctx context.Context, key string, doc []byte) error {
	if f.fail != nil {
		f.record("update", key, doc)
		return f.fail
	}
	if f.missing {
		return common.ErrorNotFound
	}
	f.record("update", key, doc)
	return nil
}

func (f *fakeStore) Insert(ctx context.Context, key string, doc []byte) error {
	if f.fail != nil {
		f.record("insert", key, doc)
		return f.fail
	}
	f.record("insert", key, doc)
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.record("delete", key, nil)
	return f.fail
}

func (f *fakeStore) ops() []string {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.op + " " + c.key
	}
	return out
}

type fakeNotesRepo struct {
	byOwner []*models.Note
	err     error
}

func (f *fakeNotesRepo) Create(ctx context.Context, n *models.NewNote) (*models.Note, error) {
	return nil, nil
}
func (f *fakeNotesRepo) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	return nil, nil
}
func (f *fakeNotesRepo) Update(ctx context.Context, id int64, patch *models.NotePatch) (*models.Note, error) {
	return nil, nil
}
func (f *fakeNotesRepo) Delete(ctx context.Context, id int64) (bool, error) { return false, nil }
func (f *fakeNotesRepo) ListByOwner(ctx context.Context, userID int64) ([]*models.Note, error) {
	return f.byOwner, f.err
}
func (f *fakeNotesRepo) ListByFolder(ctx context.Context, folderID int64) ([]*models.Note, error) {
	return nil, nil
}
func (f *fakeNotesRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*models.Note, error) {
	return nil, nil
}
func (f *fakeNotesRepo) ListByTag(ctx context.Context, tagID int64) ([]*models.Note, error) {
	return nil, nil
}
func (f *fakeNotesRepo) Search(ctx context.Context, userID int64, query string) ([]*models.Note, error) {
	return nil, nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestAdapter(store Store, repo *fakeNotesRepo, c *cache.Cache) *Adapter {
	if repo == nil {
		repo = &fakeNotesRepo{}
	}
	if c == nil {
		c = cache.New(16)
	}
	return NewAdapter(store, repo, c, time.Millisecond, time.Second, testLogger())
}

func waitFlush(t *testing.T, store *fakeStore) {
	t.Helper()
	select {
	case <-store.flushed:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a mirror write")
	}
}

func TestNoteSaved_UpdatesExistingDocument(t *testing.T) {
	store := newFakeStore()
	a := newTestAdapter(store, nil, nil)
	defer a.Close()

	n := &models.Note{ID: 7, UserID: 1, Title: "groceries"}
	a.NoteSaved(n)
	waitFlush(t, store)

	assert.Equal(t, []string{"update users/1/notes/7.json"}, store.ops())

	var got models.Note
	require.NoError(t, json.Unmarshal(store.calls[0].doc, &got))
	assert.Equal(t, "groceries", got.Title)
}

func TestNoteSaved_FallsBackToInsertWhenMissing(t *testing.T) {
	store := newFakeStore()
	store.missing = true
	a := newTestAdapter(store, nil, nil)
	defer a.Close()

	a.NoteSaved(&models.Note{ID: 7, UserID: 1})
	waitFlush(t, store)

	assert.Equal(t, []string{"insert users/1/notes/7.json"}, store.ops())
}

func TestNoteSaved_CoalescesRapidEdits(t *testing.T) {
	store := newFakeStore()
	a := NewAdapter(store, &fakeNotesRepo{}, cache.New(16),
		50*time.Millisecond, time.Second, testLogger())
	defer a.Close()

	for i := 0; i < 5; i++ {
		a.NoteSaved(&models.Note{ID: 7, UserID: 1, Title: "draft"})
	}
	waitFlush(t, store)

	// allow any straggler, then confirm only one write happened
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, store.ops(), 1)
}

func TestNoteSaved_InvalidatesOwnerCacheSynchronously(t *testing.T) {
	store := newFakeStore()
	c := cache.New(16)
	c.Put(cache.OwnerPrefix(1)+"all", "stale")
	c.Put(cache.OwnerPrefix(2)+"all", "other user")

	a := newTestAdapter(store, nil, c)
	defer a.Close()

	a.NoteSaved(&models.Note{ID: 7, UserID: 1})

	_, ok := c.Get(cache.OwnerPrefix(1) + "all")
	assert.False(t, ok, "owner listing must be dropped before the flush")
	_, ok = c.Get(cache.OwnerPrefix(2) + "all")
	assert.True(t, ok)
}

func TestNoteSaved_WriteFailureIsSwallowed(t *testing.T) {
	store := newFakeStore()
	store.fail = errors.New("backend down")
	a := newTestAdapter(store, nil, nil)
	defer a.Close()

	// must not panic or surface the error anywhere
	a.NoteSaved(&models.Note{ID: 7, UserID: 1})
	waitFlush(t, store)
}

func TestNoteDeleted_CancelsPendingFlushAndDeletesDoc(t *testing.T) {
	store := newFakeStore()
	a := NewAdapter(store, &fakeNotesRepo{}, cache.New(16),
		time.Hour, time.Second, testLogger())
	defer a.Close()

	a.NoteSaved(&models.Note{ID: 7, UserID: 1})
	a.NoteDeleted(1, 7)
	waitFlush(t, store)

	assert.Equal(t, []string{"delete users/1/notes/7.json"}, store.ops())
}

func TestSyncAll_PushesEveryNote(t *testing.T) {
	store := newFakeStore()
	repo := &fakeNotesRepo{byOwner: []*models.Note{
		{ID: 1, UserID: 3},
		{ID: 2, UserID: 3},
	}}
	a := newTestAdapter(store, repo, nil)
	defer a.Close()

	synced, err := a.SyncAll(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, synced)
	assert.Equal(t, []string{
		"update users/3/notes/1.json",
		"update users/3/notes/2.json",
	}, store.ops())
}

func TestSyncAll_RepoFailureIsReturned(t *testing.T) {
	store := newFakeStore()
	repo := &fakeNotesRepo{err: errors.New("db down")}
	a := newTestAdapter(store, repo, nil)
	defer a.Close()

	_, err := a.SyncAll(context.Background(), 3)
	assert.Error(t, err)
}
