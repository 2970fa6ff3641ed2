// ABOUTME: VibeEngine bundles classification, aggregation, and transition detection
// ABOUTME: Stateless between calls; conversation state is returned to the caller
package core

import (
	"context"

	"github.com/harper/vibe-memory/internal/embedding"
	"github.com/harper/vibe-memory/internal/models"
)

// VibeOptions configures a VibeEngine
type VibeOptions struct {
	// Lexicon replaces the built-in markers when non-nil
	Lexicon Lexicon
	// Generator enables embedding mode when non-nil
	Generator       embedding.Generator
	SimilarityFloor float64
	RecencyWeight   float64
	WindowSize      int
}

// VibeEngine is the entry point for vibe operations
type VibeEngine struct {
	classifier    VibeClassifier
	aggregator    *VibeAggregator
	recencyWeight float64
}

// NewVibeEngine builds a keyword-mode engine, or an embedding-mode engine
// when opts.Generator is set
func NewVibeEngine(opts VibeOptions) *VibeEngine {
	keyword := NewKeywordClassifier(opts.Lexicon)

	var classifier VibeClassifier = keyword
	if opts.Generator != nil {
		classifier = NewEmbeddingClassifier(opts.Generator, keyword, opts.SimilarityFloor)
	}

	weight := opts.RecencyWeight
	if weight < 0 {
		weight = DefaultRecencyWeight
	}

	return &VibeEngine{
		classifier:    classifier,
		aggregator:    NewVibeAggregator(classifier, opts.WindowSize),
		recencyWeight: weight,
	}
}

// Classifier returns the per-message classifier in use
func (e *VibeEngine) Classifier() VibeClassifier {
	return e.classifier
}

// WindowSize is the number of trailing messages Conversation reads
func (e *VibeEngine) WindowSize() int {
	return e.aggregator.WindowSize()
}

// Classify returns the vibe of one message
func (e *VibeEngine) Classify(ctx context.Context, text string) models.VibeClassification {
	return e.classifier.Classify(ctx, text)
}

// Conversation aggregates the trailing window of messages
func (e *VibeEngine) Conversation(ctx context.Context, messages []string) models.ConversationVibe {
	return e.aggregator.Aggregate(ctx, messages, e.recencyWeight)
}

// Transition reports whether text moves the conversation away from current
func (e *VibeEngine) Transition(ctx context.Context, current models.Vibe, text string) *models.VibeTransition {
	return DetectTransition(ctx, e.classifier, current, text)
}
