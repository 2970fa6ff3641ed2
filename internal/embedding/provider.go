// ABOUTME: Primary embedding tier backed by a real embedding endpoint
// ABOUTME: Adapts any client exposing GenerateEmbedding to the Embedder interface
package embedding

import (
	"context"

	"github.com/harper/vibe-memory/internal/models"
)

// Provider is an embedding capability, such as llm.OpenAIClient
type Provider interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float64, error)
}

// ProviderEmbedder is the primary tier
type ProviderEmbedder struct {
	provider Provider
}

// NewProviderEmbedder wraps an embedding capability
func NewProviderEmbedder(p Provider) *ProviderEmbedder {
	return &ProviderEmbedder{provider: p}
}

// Tier implements Embedder
func (p *ProviderEmbedder) Tier() models.EmbeddingTier {
	return models.TierPrimary
}

// Embed implements Embedder
func (p *ProviderEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	return p.provider.GenerateEmbedding(ctx, text)
}
