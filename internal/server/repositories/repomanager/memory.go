package repomanager

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/server/repositories/categories"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/folders"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/memstore"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/notes"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/notetags"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/tags"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/users"
)

// MemoryManager vends repository views of a single shared memstore.Store.
type MemoryManager struct {
	store *memstore.Store
}

func NewMemoryManager() *MemoryManager {
	return &MemoryManager{store: memstore.New()}
}

func (m *MemoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *MemoryManager) Users() users.Repository           { return m.store.Users() }
func (m *MemoryManager) Notes() notes.Repository           { return m.store.Notes() }
func (m *MemoryManager) Folders() folders.Repository       { return m.store.Folders() }
func (m *MemoryManager) Categories() categories.Repository { return m.store.Categories() }
func (m *MemoryManager) Tags() tags.Repository             { return m.store.Tags() }
func (m *MemoryManager) NoteTags() notetags.Repository     { return m.store.NoteTags() }

func (m *MemoryManager) Close() error { return nil }
