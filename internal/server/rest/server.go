// Package rest exposes the note service over HTTP. Handlers decode and
// dispatch; validation and ownership rules live in the services package.
package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rohithmohanan1/Notes/internal/logging"
	"github.com/rohithmohanan1/Notes/internal/server/services"
)

type Server struct {
	address    string
	logger     logging.Logger
	users      *services.UserService
	notes      *services.NoteService
	folders    *services.FolderService
	categories *services.CategoryService
	tags       *services.TagService
	jwtSecret  []byte
}

func NewServer(address string, logger logging.Logger,
	users *services.UserService, notes *services.NoteService,
	folders *services.FolderService, categories *services.CategoryService,
	tags *services.TagService, secretKey string) *Server {
	return &Server{
		address:    address,
		logger:     logger.With("module", "rest_server"),
		users:      users,
		notes:      notes,
		folders:    folders,
		categories: categories,
		tags:       tags,
		jwtSecret:  []byte(secretKey),
	}
}

// Router assembles the full route table. Exposed for handler tests.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(bearerAuth(s.jwtSecret))

	r.Get("/users/current", s.getCurrentUser)
	r.Post("/users", s.createUser)

	r.Route("/notes", func(r chi.Router) {
		r.Get("/", s.listNotes)
		r.Post("/", s.createNote)
		r.Get("/{id}", s.getNote)
		r.Put("/{id}", s.updateNote)
		r.Delete("/{id}", s.deleteNote)
		r.Get("/{id}/tags", s.listNoteTags)
		r.Post("/{id}/tags/{tagId}", s.addTagToNote)
		r.Delete("/{id}/tags/{tagId}", s.removeTagFromNote)
	})

	r.Route("/folders", func(r chi.Router) {
		r.Get("/", s.listFolders)
		r.Post("/", s.createFolder)
		r.Get("/{id}", s.getFolder)
		r.Put("/{id}", s.updateFolder)
		r.Delete("/{id}", s.deleteFolder)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", s.listCategories)
		r.Post("/", s.createCategory)
		r.Get("/{id}", s.getCategory)
		r.Put("/{id}", s.updateCategory)
		r.Delete("/{id}", s.deleteCategory)
	})

	r.Route("/tags", func(r chi.Router) {
		r.Get("/", s.listTags)
		r.Post("/", s.createTag)
		r.Get("/{id}", s.getTag)
		r.Put("/{id}", s.updateTag)
		r.Delete("/{id}", s.deleteTag)
	})

	r.Post("/sync", s.syncAll)

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// urlID parses a numeric id path parameter.
func urlID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// queryID parses an optional numeric query parameter. Absent means nil.
func queryID(r *http.Request, name string) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}
	return &id, true
}
