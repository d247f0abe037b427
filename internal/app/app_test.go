package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/bunchhieng/lv/internal/config"
	"github.com/bunchhieng/lv/internal/model"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.Defaults(t.TempDir())
	return &cfg
}

func TestNewPersistsAcrossRuns(t *testing.T) {
	cfg := testConfig(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	a, err := New(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if a.Links.Len() != 0 {
		t.Fatalf("Expected empty collection, got %d", a.Links.Len())
	}
	added := a.Links.Add(ctx, model.Link{Title: "Example", URL: "https://example.com"})
	a.Close()

	b, err := New(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("Second New failed: %v", err)
	}
	defer b.Close()

	if _, err := b.Links.Get(added.ID); err != nil {
		t.Errorf("Expected link to survive restart: %v", err)
	}
}

func TestNewRequiresPath(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBPath = ""
	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Error("Expected error for empty db path")
	}
}

func TestNewCorruptSlotStartsEmpty(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBPath = filepath.Join(t.TempDir(), "links.db")
	ctx := context.Background()

	s, err := NewStorage(cfg)
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	if err := s.Write(ctx, cfg.StorageKey, []byte("{broken")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	s.Close()

	a, err := New(ctx, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close()

	if a.Links.Len() != 0 {
		t.Errorf("Expected empty collection, got %d", a.Links.Len())
	}
}
