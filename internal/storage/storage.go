package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bunchhieng/lv/internal/model"
)

// DefaultKey is the slot the link collection is kept under.
const DefaultKey = "links-vault"

// ErrEmptySlot indicates nothing has been written under a key yet.
var ErrEmptySlot = errors.New("storage slot is empty")

// Slot defines keyed blob storage. Each write replaces the whole value.
type Slot interface {
	// Read returns the value stored under key, or ErrEmptySlot.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write replaces the value stored under key.
	Write(ctx context.Context, key string, data []byte) error

	// Close releases the underlying connection.
	Close() error
}

// Store persists the full link collection as one JSON array in a Slot.
// Failures are logged and swallowed: a failed Save loses that write and a
// failed Load yields an empty collection.
type Store struct {
	slot   Slot
	key    string
	logger *slog.Logger
}

// NewStore creates a Store over slot. An empty key selects DefaultKey and a
// nil logger selects slog.Default().
func NewStore(slot Slot, key string, logger *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{slot: slot, key: key, logger: logger.With("slot", key)}
}

// Save serializes links and writes them to the slot.
func (s *Store) Save(ctx context.Context, links []model.Link) {
	data, err := json.Marshal(normalizeTags(links))
	if err != nil {
		s.logger.Error("failed to encode links", "error", err)
		return
	}
	if err := s.slot.Write(ctx, s.key, data); err != nil {
		s.logger.Error("failed to save links", "error", err, "count", len(links))
		return
	}
	s.logger.Debug("saved links", "count", len(links))
}

// Load reads the collection back. An absent, corrupt or unreadable slot
// yields an empty collection.
func (s *Store) Load(ctx context.Context) []model.Link {
	links, err := s.read(ctx)
	if err != nil {
		if errors.Is(err, ErrEmptySlot) {
			s.logger.Debug("no saved links")
		} else {
			s.logger.Error("failed to load links", "error", err)
		}
		return []model.Link{}
	}
	s.logger.Debug("loaded links", "count", len(links))
	return links
}

// Check performs the same read as Load but returns the failure, so callers
// can tell an empty slot (ErrEmptySlot) from a broken one.
func (s *Store) Check(ctx context.Context) error {
	_, err := s.read(ctx)
	return err
}

func (s *Store) read(ctx context.Context) ([]model.Link, error) {
	data, err := s.slot.Read(ctx, s.key)
	if err != nil {
		return nil, err
	}
	var links []model.Link
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("decode links: %w", err)
	}
	if links == nil {
		return []model.Link{}, nil
	}
	kept := dropMalformed(links)
	if dropped := len(links) - len(kept); dropped > 0 {
		s.logger.Warn("dropped malformed links", "count", dropped)
	}
	return normalizeTags(kept), nil
}

// dropMalformed removes records without an id, title or url, and any record
// repeating an id seen earlier in the blob.
func dropMalformed(links []model.Link) []model.Link {
	seen := make(map[string]bool, len(links))
	out := make([]model.Link, 0, len(links))
	for _, link := range links {
		if link.ID == "" || link.Title == "" || link.URL == "" || seen[link.ID] {
			continue
		}
		seen[link.ID] = true
		out = append(out, link)
	}
	return out
}

// normalizeTags makes nil tag lists encode as [] rather than null.
func normalizeTags(links []model.Link) []model.Link {
	out := make([]model.Link, len(links))
	for i, link := range links {
		if link.Tags == nil {
			link.Tags = []string{}
		}
		out[i] = link
	}
	return out
}
