// ABOUTME: Memory storage with Charm KV backend for cloud-synced memories
// ABOUTME: Each memory is a JSON value under memory:{user}:{id}
package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/harper/vibe-memory/internal/charm"
	"github.com/harper/vibe-memory/internal/models"
)

// KV is the subset of charm.Client the store needs
type KV interface {
	SetJSON(key string, value interface{}) error
	GetJSON(key string, dest interface{}) error
	ListKeys(prefix string) ([]string, error)
}

// CharmStore manages memory storage using Charm KV
type CharmStore struct {
	kv     KV
	closer func() error
}

// NewCharmStore creates a store over a KV. The store does not own kv.
func NewCharmStore(kv KV) *CharmStore {
	return &CharmStore{kv: kv}
}

// Create saves a memory under the user's prefix
func (s *CharmStore) Create(ctx context.Context, userID string, m *models.Memory) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.UserID = userID
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = m.CreatedAt
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if err := m.Validate(); err != nil {
		return "", err
	}

	if err := s.kv.SetJSON(charm.MemoryKey(userID, m.ID), m); err != nil {
		return "", fmt.Errorf("failed to save memory: %w", err)
	}
	return m.ID, nil
}

// Get returns one memory, including a soft-deleted one. Returns nil when
// the user has no memory with that id.
func (s *CharmStore) Get(ctx context.Context, userID, id string) (*models.Memory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var m models.Memory
	if err := s.kv.GetJSON(charm.MemoryKey(userID, id), &m); err != nil {
		if errors.Is(err, charm.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load memory %s: %w", id, err)
	}
	if m.UserID != userID {
		return nil, nil
	}
	return &m, nil
}

// ListAll returns every non-deleted memory for a user, newest first.
// The key prefix also matches users whose id extends this one past a
// colon, so records are filtered on their owner too.
func (s *CharmStore) ListAll(ctx context.Context, userID string) ([]models.Memory, error) {
	keys, err := s.kv.ListKeys(charm.UserPrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to list memory keys: %w", err)
	}

	memories := []models.Memory{}
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var m models.Memory
		if err := s.kv.GetJSON(key, &m); err != nil {
			// Removed between ListKeys and GetJSON
			if errors.Is(err, charm.ErrKeyNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load memory %s: %w", key, err)
		}
		if m.UserID != userID || m.Deleted {
			continue
		}
		memories = append(memories, m)
	}

	sort.SliceStable(memories, func(i, j int) bool {
		return memories[i].Timestamp.After(memories[j].Timestamp)
	})
	return memories, nil
}

// MarkDeleted flags a memory as deleted without removing it
func (s *CharmStore) MarkDeleted(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := charm.MemoryKey(userID, id)
	keys, err := s.kv.ListKeys(key)
	if err != nil {
		return fmt.Errorf("failed to look up memory: %w", err)
	}
	if !slices.Contains(keys, key) {
		return fmt.Errorf("%w: %s", models.ErrMemoryNotFound, id)
	}

	var m models.Memory
	if err := s.kv.GetJSON(key, &m); err != nil {
		return fmt.Errorf("failed to load memory: %w", err)
	}
	if m.UserID != userID {
		return fmt.Errorf("%w: %s", models.ErrMemoryNotFound, id)
	}
	if !m.Deleted {
		now := time.Now()
		m.Deleted = true
		m.DeletedAt = &now
	}

	if err := s.kv.SetJSON(key, m); err != nil {
		return fmt.Errorf("failed to save memory: %w", err)
	}
	return nil
}

// Close releases the underlying client when the store owns it
func (s *CharmStore) Close() error {
	if s.closer != nil {
		return s.closer()
	}
	return nil
}
