// Package app wires configuration, storage and the link collection together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bunchhieng/lv/internal/collection"
	"github.com/bunchhieng/lv/internal/config"
	"github.com/bunchhieng/lv/internal/storage"
)

// App holds the long-lived objects of one lv process.
type App struct {
	Config  *config.Config
	Storage storage.Slot
	Store   *storage.Store
	Links   *collection.Collection
	Logger  *slog.Logger
}

// NewStorage opens the SQLite database named by cfg.
func NewStorage(cfg *config.Config) (*storage.SQLiteStorage, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("no database path configured")
	}
	return storage.NewSQLiteStorage(cfg.DBPath)
}

// New opens storage and rehydrates the collection.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s, err := NewStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}

	store := storage.NewStore(s, cfg.StorageKey, logger)
	if err := store.Check(ctx); err != nil && !errors.Is(err, storage.ErrEmptySlot) {
		logger.Warn("saved links could not be read, starting empty", "error", err, "db", cfg.DBPath)
	}

	return &App{
		Config:  cfg,
		Storage: s,
		Store:   store,
		Links:   collection.Open(ctx, store),
		Logger:  logger,
	}, nil
}

// Close releases the storage connection.
func (a *App) Close() error {
	return a.Storage.Close()
}
