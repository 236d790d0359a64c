package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/logging"
	"github.com/rohithmohanan1/Notes/internal/server/cache"
	"github.com/rohithmohanan1/Notes/internal/server/models"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/notes"
)

// Adapter propagates note mutations to the document store. Cache
// invalidation is synchronous so the next read sees fresh data; the mirror
// write itself is debounced and best-effort. A failed write is logged and
// dropped, never surfaced to the caller.
type Adapter struct {
	store     Store
	notes     notes.Repository
	cache     *cache.Cache
	debouncer *Debouncer
	timeout   time.Duration
	log       logging.Logger
}

func NewAdapter(store Store, notesRepo notes.Repository, c *cache.Cache,
	debounce, timeout time.Duration, log logging.Logger) *Adapter {
	return &Adapter{
		store:     store,
		notes:     notesRepo,
		cache:     c,
		debouncer: NewDebouncer(debounce),
		timeout:   timeout,
		log:       log.With("component", "mirror"),
	}
}

// docKey is the object path of a note's mirror document.
func docKey(userID, noteID int64) string {
	return fmt.Sprintf("users/%d/notes/%d.json", userID, noteID)
}

// NoteSaved records a created or updated note. The snapshot captured here is
// what gets flushed; a later save of the same note replaces the pending one.
func (a *Adapter) NoteSaved(n *models.Note) {
	a.cache.InvalidatePrefix(cache.OwnerPrefix(n.UserID))

	snapshot := *n
	a.debouncer.Debounce(docKey(n.UserID, n.ID), func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		a.saveDoc(ctx, &snapshot)
	})
}

// NoteDeleted drops the pending flush for the note, if any, and removes its
// mirror document.
func (a *Adapter) NoteDeleted(userID, noteID int64) {
	a.cache.InvalidatePrefix(cache.OwnerPrefix(userID))

	key := docKey(userID, noteID)
	a.debouncer.Cancel(key)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		if err := a.store.Delete(ctx, key); err != nil {
			a.log.Warn(ctx, "mirror delete failed", "key", key, "error", err)
		}
	}()
}

// OwnerChanged invalidates the owner's cached listings without touching the
// mirror. Folder, category and tag mutations end up here: they change which
// notes a query returns but mirror documents carry notes only.
func (a *Adapter) OwnerChanged(userID int64) {
	a.cache.InvalidatePrefix(cache.OwnerPrefix(userID))
}

// SyncAll pushes the owner's full note set through the update-then-insert
// probe and reports how many documents went through. Per-note failures are
// logged and skipped.
func (a *Adapter) SyncAll(ctx context.Context, userID int64) (int, error) {
	all, err := a.notes.ListByOwner(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("listing notes: %w", err)
	}

	synced := 0
	for _, n := range all {
		if a.saveDoc(ctx, n) {
			synced++
		}
	}
	a.log.Info(ctx, "sync finished", "userID", userID, "total", len(all), "synced", synced)
	return synced, nil
}

// Close drops pending flushes. In-flight writes finish on their own timeout.
func (a *Adapter) Close() {
	a.debouncer.CancelAll()
}

func (a *Adapter) saveDoc(ctx context.Context, n *models.Note) bool {
	doc, err := json.Marshal(n)
	if err != nil {
		a.log.Error(ctx, "mirror marshal failed", "noteID", n.ID, "error", err)
		return false
	}

	key := docKey(n.UserID, n.ID)
	err = a.store.Update(ctx, key, doc)
	if errors.Is(err, common.ErrorNotFound) {
		err = a.store.Insert(ctx, key, doc)
	}
	if err != nil {
		a.log.Warn(ctx, "mirror write failed", "key", key, "error", err)
		return false
	}
	return true
}
