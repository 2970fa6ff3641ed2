// ABOUTME: Conversation vibe aggregation over a recency-weighted message window
// ABOUTME: Produces one dominant vibe and its share of the accumulated weight
package core

import (
	"context"

	"github.com/harper/vibe-memory/internal/models"
)

// Aggregation defaults
const (
	DefaultWindowSize    = 10
	DefaultRecencyWeight = 1.5
)

// VibeAggregator combines per-message classifications into a conversation vibe
type VibeAggregator struct {
	classifier VibeClassifier
	windowSize int
}

// NewVibeAggregator creates an aggregator. A non-positive windowSize uses
// DefaultWindowSize.
func NewVibeAggregator(classifier VibeClassifier, windowSize int) *VibeAggregator {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &VibeAggregator{classifier: classifier, windowSize: windowSize}
}

// WindowSize returns the number of trailing messages considered
func (a *VibeAggregator) WindowSize() int {
	return a.windowSize
}

// Aggregate classifies the last WindowSize messages. Message i of the
// window (0 = oldest) adds 1 + recencyWeight*i/len(window) to its vibe.
func (a *VibeAggregator) Aggregate(ctx context.Context, messages []string, recencyWeight float64) models.ConversationVibe {
	if len(messages) == 0 {
		return models.NeutralConversation()
	}

	window := messages
	if len(window) > a.windowSize {
		window = window[len(window)-a.windowSize:]
	}

	scores := make(map[models.Vibe]float64, len(models.VibeCategories))
	for _, v := range models.AllVibes() {
		scores[v] = 0
	}

	n := float64(len(window))
	for i, text := range window {
		c := a.classifier.Classify(ctx, text)
		scores[c.Vibe] += 1 + recencyWeight*(float64(i)/n)
	}

	dominant, best, total := models.VibeNeutral, 0.0, 0.0
	for _, v := range models.AllVibes() {
		total += scores[v]
		if scores[v] > best {
			best = scores[v]
			dominant = v
		}
	}

	strength := 0.0
	if total > 0 {
		strength = best / total
	}

	return models.ConversationVibe{
		Vibe:     dominant,
		Strength: strength,
		Scores:   scores,
		Window:   append([]string(nil), window...),
	}
}
