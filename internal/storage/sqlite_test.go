package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *SQLiteStorage {
	storage, err := NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test storage: %v", err)
	}
	t.Cleanup(func() { storage.Close() })
	return storage
}

func TestReadEmptySlot(t *testing.T) {
	s := setupTestDB(t)

	_, err := s.Read(context.Background(), DefaultKey)
	if !errors.Is(err, ErrEmptySlot) {
		t.Errorf("Expected ErrEmptySlot, got %v", err)
	}
}

func TestWriteRead(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	if err := s.Write(ctx, "a", []byte(`[1]`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := s.Write(ctx, "a", []byte(`[2]`)); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	if err := s.Write(ctx, "b", []byte(`[3]`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := s.Read(ctx, "a")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != `[2]` {
		t.Errorf("Expected overwritten value [2], got %s", got)
	}

	got, err = s.Read(ctx, "b")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != `[3]` {
		t.Errorf("Expected [3], got %s", got)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "links.db")
	ctx := context.Background()

	s, err := NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	if err := s.Write(ctx, DefaultKey, []byte(`[]`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	s.Close()

	// Migrations must be skipped on the second open.
	s, err = NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("Failed to reopen storage: %v", err)
	}
	defer s.Close()

	got, err := s.Read(ctx, DefaultKey)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Expected [], got %s", got)
	}
}
