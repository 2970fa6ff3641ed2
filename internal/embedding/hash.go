// ABOUTME: Deterministic offline embedding derived from a rolling character hash
// ABOUTME: Needs no network; identical text always yields an identical vector
package embedding

import (
	"context"
	"math"
	"unicode/utf16"

	"github.com/harper/vibe-memory/internal/models"
)

// HashEmbedder is the last-resort tier
type HashEmbedder struct {
	dimension int
}

// NewHashEmbedder returns an offline embedder producing vectors of the
// given length
func NewHashEmbedder(dimension int) *HashEmbedder {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &HashEmbedder{dimension: dimension}
}

// Tier implements Embedder
func (h *HashEmbedder) Tier() models.EmbeddingTier {
	return models.TierOffline
}

// Dimension returns the vector length
func (h *HashEmbedder) Dimension() int {
	return h.dimension
}

// Embed never returns an error
func (h *HashEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	seed := float64(stringHash(text))

	vec := make([]float64, h.dimension)
	for i := range vec {
		vec[i] = math.Sin(seed*float64(i+1)) / 2
	}
	return vec, nil
}

// stringHash is the 32-bit h*31+c hash over UTF-16 code units
func stringHash(text string) int32 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(text)) {
		hash = (hash << 5) - hash + int32(unit)
	}
	return hash
}
