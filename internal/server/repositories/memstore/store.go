// Package memstore is the default, volatile entity store. It keeps every
// entity kind in a keyed map guarded by a single mutex, so each mutation
// (including the join-row uniqueness check) executes as an atomic unit.
// Ids are allocated per kind from monotonically increasing counters and are
// never reused. Nothing survives process exit.
package memstore

import (
	"sort"
	"sync"
	"time"

	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// Store holds all entity collections. Per-entity repository views over the
// same Store are vended by Users(), Notes() and friends; sharing one Store
// is what lets delete cascades cross kinds without leaving the lock.
type Store struct {
	mu sync.RWMutex

	users      map[int64]*models.User
	notes      map[int64]*models.Note
	folders    map[int64]*models.Folder
	categories map[int64]*models.Category
	tags       map[int64]*models.Tag
	noteTags   map[int64]*models.NoteTag

	userID     int64
	noteID     int64
	folderID   int64
	categoryID int64
	tagID      int64
	noteTagID  int64

	now func() time.Time
}

func New() *Store {
	return &Store{
		users:      make(map[int64]*models.User),
		notes:      make(map[int64]*models.Note),
		folders:    make(map[int64]*models.Folder),
		categories: make(map[int64]*models.Category),
		tags:       make(map[int64]*models.Tag),
		noteTags:   make(map[int64]*models.NoteTag),
		now:        time.Now,
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Notes returns the note repository view of the store.
func (s *Store) Notes() *NoteRepo { return &NoteRepo{s: s} }

// Folders returns the folder repository view of the store.
func (s *Store) Folders() *FolderRepo { return &FolderRepo{s: s} }

// Categories returns the category repository view of the store.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Tags returns the tag repository view of the store.
func (s *Store) Tags() *TagRepo { return &TagRepo{s: s} }

// NoteTags returns the join-relation repository view of the store.
func (s *Store) NoteTags() *NoteTagRepo { return &NoteTagRepo{s: s} }

// sortedIDs returns map keys in ascending order. Ids are monotonic and never
// reused, so id order is insertion order.
func sortedIDs[T any](m map[int64]*T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
