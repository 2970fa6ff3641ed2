// ABOUTME: In-process embedding memo backed by ristretto
// ABOUTME: Wraps a Generator so repeated texts skip the network tiers
package embedding

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"

	"github.com/harper/vibe-memory/internal/models"
)

// Cache memoizes Generate results keyed by text. Offline results are not
// cached; they are cheap and a later network call may do better.
type Cache struct {
	next  Generator
	store *ristretto.Cache
}

// NewCache wraps next with a cache holding up to size embeddings
func NewCache(next Generator, size int64) (*Cache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", size)
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: size * 10,
		MaxCost:     size,
		BufferItems: 64,
		// Cost counts entries, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding cache: %w", err)
	}

	return &Cache{next: next, store: store}, nil
}

// Generate implements Generator
func (c *Cache) Generate(ctx context.Context, text string) models.Embedding {
	if v, ok := c.store.Get(text); ok {
		if emb, ok := v.(models.Embedding); ok {
			return emb
		}
	}

	emb := c.next.Generate(ctx, text)
	if emb.Tier != models.TierOffline {
		c.store.Set(text, emb, 1)
		c.store.Wait()
	}
	return emb
}

// Close releases the cache's background goroutines
func (c *Cache) Close() {
	c.store.Close()
}
