// ABOUTME: Tests for cosine similarity scoring
// ABOUTME: Covers symmetry, bounds, and degenerate inputs
package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"scaled", []float64{1, 1}, []float64{5, 5}, 1},
		{"dimension mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosineSimilarity_SymmetricAndBounded(t *testing.T) {
	h := NewHashEmbedder(DefaultDimension)
	texts := []string{"alpha", "beta", "gamma delta", "thank you so much", "urgent deadline"}

	for _, x := range texts {
		a, _ := h.Embed(context.Background(), x)
		assert.InDelta(t, 1.0, CosineSimilarity(a, a), 1e-9, "self similarity of %q", x)

		for _, y := range texts {
			b, _ := h.Embed(context.Background(), y)
			ab := CosineSimilarity(a, b)
			assert.Equal(t, ab, CosineSimilarity(b, a), "similarity(%q,%q) should be symmetric", x, y)
			assert.GreaterOrEqual(t, ab, -1.0)
			assert.LessOrEqual(t, ab, 1.0)
		}
	}
}
