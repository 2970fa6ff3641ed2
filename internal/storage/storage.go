// ABOUTME: Backend selection for the memory store adapter
// ABOUTME: Opens SQLite (file or in-memory) or Charm KV behind one Store interface
package storage

import (
	"context"
	"fmt"

	"github.com/harper/vibe-memory/internal/charm"
	"github.com/harper/vibe-memory/internal/models"
	"github.com/harper/vibe-memory/internal/storage/sqlite"
)

// Backend names
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendCharm  = "charm"
)

// Store persists memories keyed by user
type Store interface {
	Create(ctx context.Context, userID string, m *models.Memory) (string, error)
	Get(ctx context.Context, userID, id string) (*models.Memory, error)
	ListAll(ctx context.Context, userID string) ([]models.Memory, error)
	MarkDeleted(ctx context.Context, userID, id string) error
	Close() error
}

// Options selects and configures a backend
type Options struct {
	Backend string
	DBPath  string
	Charm   *charm.Config
}

// SQLiteStore is a sqlite.MemoryStore that owns its database
type SQLiteStore struct {
	*sqlite.MemoryStore
	db *sqlite.DB
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Open returns the configured backend
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendSQLite:
		path := opts.DBPath
		if path == "" {
			path = sqlite.DefaultDBPath()
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return &SQLiteStore{MemoryStore: sqlite.NewMemoryStore(db), db: db}, nil

	case BackendMemory:
		db, err := sqlite.OpenInMemory()
		if err != nil {
			return nil, fmt.Errorf("opening in-memory store: %w", err)
		}
		return &SQLiteStore{MemoryStore: sqlite.NewMemoryStore(db), db: db}, nil

	case BackendCharm:
		cfg := opts.Charm
		if cfg == nil {
			cfg = charm.DefaultConfig()
		}
		client, err := charm.NewClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("opening charm store: %w", err)
		}
		store := NewCharmStore(client)
		store.closer = client.Close
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q (want sqlite, memory, or charm)", opts.Backend)
	}
}
