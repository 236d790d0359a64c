// Package server wires the application together: storage backend selection,
// the mirror adapter, the service layer and the HTTP server, plus graceful
// shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rohithmohanan1/Notes/internal/logging"
	"github.com/rohithmohanan1/Notes/internal/server/cache"
	"github.com/rohithmohanan1/Notes/internal/server/config"
	"github.com/rohithmohanan1/Notes/internal/server/mirror"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/repomanager"
	"github.com/rohithmohanan1/Notes/internal/server/rest"
	"github.com/rohithmohanan1/Notes/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	mirror *mirror.Adapter
	rest   *rest.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	repos, err := repomanager.New(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	if err := repos.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := mirrorStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("mirror init error: %w", err)
	}

	queryCache := cache.New(256)
	adapter := mirror.NewAdapter(store, repos.Notes(), queryCache,
		cfg.MirrorDebounce, cfg.MirrorTimeout, logger)

	restServer := rest.NewServer(cfg.EndpointAddrHTTP, logger,
		services.NewUserService(repos, logger),
		services.NewNoteService(repos, adapter, queryCache, logger),
		services.NewFolderService(repos, adapter),
		services.NewCategoryService(repos, adapter),
		services.NewTagService(repos, adapter),
		cfg.SecretKey,
	)

	return &App{
		config: cfg,
		logger: logger,
		repos:  repos,
		mirror: adapter,
		rest:   restServer,
	}, nil
}

// mirrorStore returns the S3-backed store, or a no-op one when mirroring is
// switched off.
func mirrorStore(cfg *config.Config) (mirror.Store, error) {
	if !cfg.MirrorEnabled {
		return mirror.NopStore{}, nil
	}
	return mirror.NewS3Store(cfg)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startRESTServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.rest.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startRESTServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.mirror.Close()
	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err)
	}
}
