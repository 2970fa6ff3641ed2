// ABOUTME: Tests for keyword and embedding vibe classification
// ABOUTME: Embedding mode uses fixed reference vectors to make similarities exact
package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/vibe-memory/internal/models"
)

func TestKeywordClassifier(t *testing.T) {
	k := NewKeywordClassifier(nil)
	ctx := context.Background()

	tests := []struct {
		name       string
		text       string
		vibe       models.Vibe
		score      float64
		confidence float64
	}{
		{"empty", "", models.VibeNeutral, 0, 0},
		{"no markers", "the bus leaves at noon", models.VibeNeutral, 0, 0},
		{"friendly", "Thank you, this is AWESOME", models.VibeFriendly, 2, 1},
		{"serious", "urgent deadline for the project", models.VibeSerious, 3, 1},
		{"chaotic", "omg this is wild", models.VibeChaotic, 2, 1},
		{"tie goes to earlier category", "thanks for the help", models.VibeFriendly, 1, 0.5},
		{"tie between helpful and chaotic", "help with this crazy thing", models.VibeHelpful, 1, 0.5},
		{"emoji marker", "🤯", models.VibeChaotic, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := k.Classify(ctx, tt.text)
			assert.Equal(t, tt.vibe, got.Vibe)
			assert.Equal(t, tt.score, got.Score)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
			assert.Equal(t, models.MethodKeyword, got.Method)
		})
	}
}

func TestKeywordClassifier_NoCategoryOutscoresFriendly(t *testing.T) {
	scores := NewKeywordClassifier(nil).Scores("thank you, that was awesome")

	require.GreaterOrEqual(t, scores[models.VibeFriendly], 2)
	for v, s := range scores {
		if v != models.VibeFriendly {
			assert.LessOrEqual(t, s, scores[models.VibeFriendly], "vibe %s", v)
		}
	}
}

func TestKeywordClassifier_CustomLexicon(t *testing.T) {
	k := NewKeywordClassifier(Lexicon{models.VibeChaotic: {"banana"}})

	assert.Equal(t, models.VibeChaotic, k.Classify(context.Background(), "BANANA time").Vibe)
	assert.Equal(t, models.VibeNeutral, k.Classify(context.Background(), "thanks").Vibe)
}

// referenceVectors maps each reference sentence to a unit axis
func referenceVectors() map[string][]float64 {
	return map[string][]float64{
		ReferenceSentences[models.VibeFriendly]: {1, 0, 0, 0, 0},
		ReferenceSentences[models.VibeHelpful]:  {0, 1, 0, 0, 0},
		ReferenceSentences[models.VibeChaotic]:  {0, 0, 1, 0, 0},
		ReferenceSentences[models.VibeSerious]:  {0, 0, 0, 1, 0},
	}
}

func TestEmbeddingClassifier(t *testing.T) {
	vectors := referenceVectors()
	vectors["the audit needs attention"] = []float64{0.2, 0, 0, 0.9, 0}
	vectors["the weather is mild"] = []float64{0, 0, 0, 0, 1}
	vectors["short vector message"] = []float64{1, 0, 0}

	gen := newTableGenerator(models.TierPrimary, vectors)
	c := NewEmbeddingClassifier(gen, nil, 0)
	ctx := context.Background()

	t.Run("closest reference wins", func(t *testing.T) {
		got := c.Classify(ctx, "the audit needs attention")
		assert.Equal(t, models.VibeSerious, got.Vibe)
		assert.Equal(t, models.MethodEmbedding, got.Method)
		assert.InDelta(t, 0.9/0.9219544457, got.Confidence, 1e-6)
	})

	t.Run("below floor is neutral", func(t *testing.T) {
		got := c.Classify(ctx, "the weather is mild")
		assert.Equal(t, models.VibeNeutral, got.Vibe)
		assert.Equal(t, models.MethodEmbedding, got.Method)
		assert.Zero(t, got.Confidence)
	})

	t.Run("short text is neutral without embedding", func(t *testing.T) {
		got := c.Classify(ctx, "hey")
		assert.Equal(t, models.VibeNeutral, got.Vibe)
		assert.Equal(t, 0, gen.callsFor("hey"))
	})

	t.Run("offline message falls back to keywords", func(t *testing.T) {
		got := c.Classify(ctx, "thanks, this is awesome")
		assert.Equal(t, models.VibeFriendly, got.Vibe)
		assert.Equal(t, models.MethodKeyword, got.Method)
	})

	t.Run("dimension mismatch falls back to keywords", func(t *testing.T) {
		got := c.Classify(ctx, "short vector message")
		assert.Equal(t, models.MethodKeyword, got.Method)
	})

	t.Run("cancelled context falls back to keywords", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		got := c.Classify(cancelled, "the audit needs attention")
		assert.Equal(t, models.MethodKeyword, got.Method)
	})
}

func TestEmbeddingClassifier_CompletionTierIsComparable(t *testing.T) {
	vectors := referenceVectors()
	vectors["what a bizarre turn"] = []float64{0, 0, 1, 0, 0}

	c := NewEmbeddingClassifier(newTableGenerator(models.TierCompletion, vectors), nil, 0)
	got := c.Classify(context.Background(), "what a bizarre turn")

	assert.Equal(t, models.VibeChaotic, got.Vibe)
	assert.Equal(t, models.MethodEmbedding, got.Method)
}
