// ABOUTME: Embedding models for vector generation and similarity search
// ABOUTME: Defines Embedding and the tiers that can produce one
package models

import "fmt"

// EmbeddingTier names the strategy that produced a vector
type EmbeddingTier string

const (
	// TierPrimary is a real embedding endpoint
	TierPrimary EmbeddingTier = "primary"
	// TierCompletion is a language-model-simulated embedding
	TierCompletion EmbeddingTier = "completion"
	// TierOffline is the deterministic hash fallback
	TierOffline EmbeddingTier = "offline"
)

// Rank orders tiers by fidelity; higher is better
func (t EmbeddingTier) Rank() int {
	switch t {
	case TierPrimary:
		return 3
	case TierCompletion:
		return 2
	case TierOffline:
		return 1
	default:
		return 0
	}
}

// Embedding is a vector plus the tier that produced it
type Embedding struct {
	Vector []float64     `json:"vector"`
	Tier   EmbeddingTier `json:"tier"`
}

// Dimension returns the vector length
func (e Embedding) Dimension() int {
	return len(e.Vector)
}

// ValidateDimension checks the vector against an expected dimensionality
func (e Embedding) ValidateDimension(expected int) error {
	if len(e.Vector) == 0 {
		return fmt.Errorf("embedding vector cannot be empty")
	}
	if len(e.Vector) != expected {
		return fmt.Errorf("embedding dimension mismatch: expected %d, got %d", expected, len(e.Vector))
	}
	return nil
}
