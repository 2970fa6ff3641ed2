// ABOUTME: Per-message vibe classification by keyword markers or embedding similarity
// ABOUTME: Embedding mode degrades to keyword mode whenever vectors are not comparable
package core

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/harper/vibe-memory/internal/embedding"
	"github.com/harper/vibe-memory/internal/models"
	"github.com/harper/vibe-memory/internal/util"
)

// VibeClassifier maps a single message to a vibe
type VibeClassifier interface {
	Classify(ctx context.Context, text string) models.VibeClassification
}

// KeywordClassifier counts lexicon markers per vibe
type KeywordClassifier struct {
	lexicon Lexicon
}

// NewKeywordClassifier uses lex, or DefaultLexicon when lex is nil
func NewKeywordClassifier(lex Lexicon) *KeywordClassifier {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &KeywordClassifier{lexicon: lex}
}

// Scores returns the marker hit count for every vibe in evaluation order
func (k *KeywordClassifier) Scores(text string) map[models.Vibe]int {
	scores := make(map[models.Vibe]int, len(models.VibeCategories))
	lower := strings.ToLower(text)
	for _, v := range models.AllVibes() {
		scores[v] = 0
		for _, marker := range k.lexicon[v] {
			if strings.Contains(lower, strings.ToLower(marker)) {
				scores[v]++
			}
		}
	}
	return scores
}

// Classify implements VibeClassifier. The first vibe with a strictly
// higher count wins, so ties go to the earlier category and no hits at
// all leave Neutral.
func (k *KeywordClassifier) Classify(_ context.Context, text string) models.VibeClassification {
	result := models.VibeClassification{Vibe: models.VibeNeutral, Method: models.MethodKeyword}
	if strings.TrimSpace(text) == "" {
		return result
	}

	scores := k.Scores(text)
	best, total := 0, 0
	for _, v := range models.AllVibes() {
		total += scores[v]
		if scores[v] > best {
			best = scores[v]
			result.Vibe = v
		}
	}

	if best == 0 {
		return result
	}
	result.Score = float64(best)
	result.Confidence = float64(best) / float64(total)
	return result
}

// DefaultSimilarityFloor is the minimum similarity for a non-neutral
// embedding classification
const DefaultSimilarityFloor = 0.3

// minEmbeddingTextLength is measured in runes
const minEmbeddingTextLength = 5

// Hash vectors carry no meaning, so comparisons need at least this tier
const minClassifierTier = models.TierCompletion

// ReferenceSentences describe each non-neutral vibe for embedding mode
var ReferenceSentences = map[models.Vibe]string{
	models.VibeFriendly: "This conversation is fun, friendly, and has a warm atmosphere with people joking and being kind to each other",
	models.VibeHelpful:  "This conversation is about helping someone, explaining things, and providing useful information and advice",
	models.VibeChaotic:  "This conversation is wild, random, unpredictable with strange ideas and unexpected twists",
	models.VibeSerious:  "This conversation is serious, focused on important matters, analytical and thoughtful",
}

// EmbeddingClassifier picks the vibe whose reference sentence is most
// similar to the message
type EmbeddingClassifier struct {
	gen      embedding.Generator
	fallback *KeywordClassifier
	floor    float64
	logger   *log.Logger
}

// NewEmbeddingClassifier builds an embedding-mode classifier. Wrap gen in
// an embedding.Cache so reference sentences are embedded once.
func NewEmbeddingClassifier(gen embedding.Generator, fallback *KeywordClassifier, floor float64) *EmbeddingClassifier {
	if fallback == nil {
		fallback = NewKeywordClassifier(nil)
	}
	if floor <= 0 {
		floor = DefaultSimilarityFloor
	}
	return &EmbeddingClassifier{
		gen:      gen,
		fallback: fallback,
		floor:    floor,
		logger:   util.NewLogger("vibe"),
	}
}

// Classify implements VibeClassifier
func (e *EmbeddingClassifier) Classify(ctx context.Context, text string) models.VibeClassification {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minEmbeddingTextLength {
		return models.VibeClassification{Vibe: models.VibeNeutral, Method: models.MethodEmbedding}
	}
	if ctx.Err() != nil {
		return e.keyword(ctx, text, "context done")
	}

	msg := e.gen.Generate(ctx, text)
	if msg.Tier.Rank() < minClassifierTier.Rank() {
		return e.keyword(ctx, text, "message embedding is offline")
	}

	result := models.VibeClassification{Vibe: models.VibeNeutral, Method: models.MethodEmbedding}
	best := 0.0
	for _, v := range models.AllVibes() {
		sentence, ok := ReferenceSentences[v]
		if !ok {
			continue
		}
		ref := e.gen.Generate(ctx, sentence)
		if ref.Tier.Rank() < minClassifierTier.Rank() || ref.Dimension() != msg.Dimension() {
			return e.keyword(ctx, text, "reference embedding not comparable")
		}

		sim := embedding.CosineSimilarity(msg.Vector, ref.Vector)
		if sim > best {
			best = sim
			result.Vibe = v
		}
	}

	if best < e.floor {
		return models.VibeClassification{Vibe: models.VibeNeutral, Score: best, Method: models.MethodEmbedding}
	}
	result.Score = best
	result.Confidence = best
	return result
}

func (e *EmbeddingClassifier) keyword(ctx context.Context, text, reason string) models.VibeClassification {
	e.logger.Debug("falling back to keyword classification", "reason", reason)
	return e.fallback.Classify(ctx, text)
}
