package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justsurfingit/job-portal-search/internal/catalog"
	"github.com/justsurfingit/job-portal-search/internal/config"
	"github.com/justsurfingit/job-portal-search/internal/database"
	"github.com/justsurfingit/job-portal-search/internal/handlers"
	"github.com/justsurfingit/job-portal-search/internal/selection"
	"github.com/justsurfingit/job-portal-search/internal/services"
	"github.com/justsurfingit/job-portal-search/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load Configuration (.env is optional)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 2. Logger
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	// 3. Catalog Provider
	provider, db, err := newProvider(cfg, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() {
			if err := database.Close(db); err != nil {
				logger.Warn("failed to close database", "error", err)
			}
		}()
	}

	// 4. Initialize Core Services (Dependencies)
	selector := selection.New(selection.WithFallback(cfg.UnknownFilterPolicy))
	store, err := session.NewStore(cfg.SessionCapacity, session.WithEvictHook(func(id uuid.UUID) {
		logger.Debug("session released", "session", id)
	}))
	if err != nil {
		return err
	}
	searchService := services.NewSearchService(provider, selector, logger)
	sessionService := services.NewSessionService(store, searchService, logger)

	// 5. Initialize Handlers & Router
	router, err := handlers.NewRouter(
		handlers.NewSearchHandler(searchService),
		handlers.NewSessionHandler(sessionService),
		handlers.RouterConfig{AllowedOrigins: cfg.AllowedOrigins, Logger: logger},
	)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	// 6. Serve until interrupted
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🚀 server starting",
			"addr", srv.Addr,
			"data_source", cfg.DataSource,
			"unknown_filter_policy", cfg.UnknownFilterPolicy,
			"session_capacity", cfg.SessionCapacity,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "live_sessions", store.Len())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newProvider(cfg *config.Config, logger *slog.Logger) (catalog.Provider, *gorm.DB, error) {
	switch cfg.DataSource {
	case config.SourcePostgres:
		db, err := database.Connect(cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return database.NewStore(db), db, nil
	default:
		p, err := catalog.NewSeededProvider()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load seed catalog: %w", err)
		}
		logger.Info("serving embedded seed catalog")
		return p, nil, nil
	}
}
