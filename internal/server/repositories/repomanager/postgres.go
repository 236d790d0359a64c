package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/rohithmohanan1/Notes/internal/server/migrations"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/categories"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/folders"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/notes"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/notetags"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/tags"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/users"
)

// PostgresManager vends PostgreSQL-backed repositories over one connection
// pool and exposes the goose migration hook.
type PostgresManager struct {
	db         *sql.DB
	users      *users.PostgresRepository
	notes      *notes.PostgresRepository
	folders    *folders.PostgresRepository
	categories *categories.PostgresRepository
	tags       *tags.PostgresRepository
	noteTags   *notetags.PostgresRepository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func NewPostgresManager(dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &PostgresManager{
		db:         db,
		users:      users.NewPostgresRepository(db),
		notes:      notes.NewPostgresRepository(db),
		folders:    folders.NewPostgresRepository(db),
		categories: categories.NewPostgresRepository(db),
		tags:       tags.NewPostgresRepository(db),
		noteTags:   notetags.NewPostgresRepository(db),
	}, nil
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

func (m *PostgresManager) Users() users.Repository           { return m.users }
func (m *PostgresManager) Notes() notes.Repository           { return m.notes }
func (m *PostgresManager) Folders() folders.Repository       { return m.folders }
func (m *PostgresManager) Categories() categories.Repository { return m.categories }
func (m *PostgresManager) Tags() tags.Repository             { return m.tags }
func (m *PostgresManager) NoteTags() notetags.Repository     { return m.noteTags }

func (m *PostgresManager) Close() error {
	return m.db.Close()
}
