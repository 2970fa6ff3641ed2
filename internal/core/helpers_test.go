// ABOUTME: Shared fakes for core tests
// ABOUTME: Table-driven generator and failing store stand in for real collaborators
package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harper/vibe-memory/internal/embedding"
	"github.com/harper/vibe-memory/internal/models"
	"github.com/harper/vibe-memory/internal/storage/sqlite"
)

// tableGenerator returns fixed vectors for known texts and falls back to
// the offline hash for everything else
type tableGenerator struct {
	mu      sync.Mutex
	tier    models.EmbeddingTier
	vectors map[string][]float64
	calls   map[string]int
}

func newTableGenerator(tier models.EmbeddingTier, vectors map[string][]float64) *tableGenerator {
	return &tableGenerator{tier: tier, vectors: vectors, calls: map[string]int{}}
}

func (g *tableGenerator) Generate(ctx context.Context, text string) models.Embedding {
	g.mu.Lock()
	g.calls[text]++
	g.mu.Unlock()

	if vec, ok := g.vectors[text]; ok {
		return models.Embedding{Vector: vec, Tier: g.tier}
	}
	vec, _ := embedding.NewHashEmbedder(embedding.DefaultDimension).Embed(ctx, text)
	return models.Embedding{Vector: vec, Tier: models.TierOffline}
}

func (g *tableGenerator) callsFor(text string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[text]
}

var errStoreDown = errors.New("store unavailable")

type failingStore struct{}

func (failingStore) Create(context.Context, string, *models.Memory) (string, error) {
	return "", errStoreDown
}

func (failingStore) Get(context.Context, string, string) (*models.Memory, error) {
	return nil, errStoreDown
}

func (failingStore) ListAll(context.Context, string) ([]models.Memory, error) {
	return nil, errStoreDown
}

func (failingStore) MarkDeleted(context.Context, string, string) error {
	return errStoreDown
}

func newSQLiteStore(t *testing.T) *sqlite.MemoryStore {
	t.Helper()
	db, err := sqlite.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewMemoryStore(db)
}
