// Package repomanager vends the repository set for a storage backend. The
// default backend is the volatile in-memory store; a PostgreSQL backend is
// selected by providing a DSN.
package repomanager

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/server/repositories/categories"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/folders"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/notes"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/notetags"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/tags"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Notes() notes.Repository
	Folders() folders.Repository
	Categories() categories.Repository
	Tags() tags.Repository
	NoteTags() notetags.Repository
	Close() error
}

// New selects the backend by DSN: empty means in-memory, anything else is
// treated as a PostgreSQL DSN.
func New(dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewMemoryManager(), nil
	}
	return NewPostgresManager(dsn)
}
