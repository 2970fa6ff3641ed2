// ABOUTME: Tests for Embedding model and dimension validation
// ABOUTME: Verifies vector dimension checking and tier ranking
package models

import (
	"strings"
	"testing"
)

func TestEmbedding_ValidateDimension(t *testing.T) {
	tests := []struct {
		name        string
		embedding   Embedding
		expectedDim int
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid dimension match",
			embedding:   Embedding{Vector: []float64{0.1, 0.2, 0.3, 0.4}, Tier: TierOffline},
			expectedDim: 4,
		},
		{
			name:        "empty vector",
			embedding:   Embedding{Vector: []float64{}},
			expectedDim: 4,
			wantErr:     true,
			errContains: "cannot be empty",
		},
		{
			name:        "nil vector",
			embedding:   Embedding{},
			expectedDim: 4,
			wantErr:     true,
			errContains: "cannot be empty",
		},
		{
			name:        "dimension mismatch - too short",
			embedding:   Embedding{Vector: []float64{0.1, 0.2}},
			expectedDim: 4,
			wantErr:     true,
			errContains: "dimension mismatch",
		},
		{
			name:        "fallback tier dimension",
			embedding:   Embedding{Vector: make([]float64, 20), Tier: TierCompletion},
			expectedDim: 20,
		},
		{
			name:        "primary tier dimension",
			embedding:   Embedding{Vector: make([]float64, 1536), Tier: TierPrimary},
			expectedDim: 1536,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.embedding.ValidateDimension(tt.expectedDim)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("ValidateDimension() error = %q, want to contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestEmbeddingTier_Rank(t *testing.T) {
	if !(TierPrimary.Rank() > TierCompletion.Rank() && TierCompletion.Rank() > TierOffline.Rank()) {
		t.Error("tiers should rank primary > completion > offline")
	}
	if EmbeddingTier("bogus").Rank() != 0 {
		t.Error("unknown tier should rank 0")
	}
}
