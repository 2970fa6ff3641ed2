// ABOUTME: Tiered embedding generation behind a single Embedder interface
// ABOUTME: Chain tries network tiers in order and always ends at the offline hash
package embedding

import (
	"context"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/harper/vibe-memory/internal/models"
	"github.com/harper/vibe-memory/internal/util"
)

// DefaultDimension is the vector length of the completion and offline tiers
const DefaultDimension = 20

// Embedder is one strategy for turning text into a vector
type Embedder interface {
	Tier() models.EmbeddingTier
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Generator produces an embedding for any text without failing
type Generator interface {
	Generate(ctx context.Context, text string) models.Embedding
}

// Chain is an ordered list of embedders ending with the offline tier
type Chain struct {
	tiers   []Embedder
	offline *HashEmbedder
	logger  *log.Logger
}

// NewChain builds a chain that tries each network embedder in order and
// falls back to offline. A nil offline embedder uses DefaultDimension.
func NewChain(offline *HashEmbedder, network ...Embedder) *Chain {
	if offline == nil {
		offline = NewHashEmbedder(DefaultDimension)
	}

	tiers := make([]Embedder, 0, len(network))
	for _, e := range network {
		if e != nil {
			tiers = append(tiers, e)
		}
	}

	return &Chain{
		tiers:   tiers,
		offline: offline,
		logger:  util.NewLogger("embeddings"),
	}
}

// Tiers returns the tier names in the order they are attempted
func (c *Chain) Tiers() []models.EmbeddingTier {
	names := make([]models.EmbeddingTier, 0, len(c.tiers)+1)
	for _, e := range c.tiers {
		names = append(names, e.Tier())
	}
	return append(names, c.offline.Tier())
}

// Generate returns the first usable vector. Failures are logged and the
// next tier is tried; the offline tier cannot fail.
func (c *Chain) Generate(ctx context.Context, text string) models.Embedding {
	for _, e := range c.tiers {
		if ctx.Err() != nil {
			c.logger.Debug("context done, skipping network tiers", "err", ctx.Err())
			break
		}

		vec, err := e.Embed(ctx, text)
		if err == nil {
			err = checkVector(vec)
		}
		if err != nil {
			c.logger.Warn("embedding tier failed", "tier", e.Tier(), "err", err)
			continue
		}

		c.logger.Debug("generated embedding", "tier", e.Tier(), "dimension", len(vec))
		return models.Embedding{Vector: vec, Tier: e.Tier()}
	}

	vec, _ := c.offline.Embed(ctx, text)
	return models.Embedding{Vector: vec, Tier: c.offline.Tier()}
}

func checkVector(vec []float64) error {
	if len(vec) == 0 {
		return fmt.Errorf("empty vector")
	}
	for i, v := range vec {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite value at index %d", i)
		}
	}
	return nil
}
