// ABOUTME: Language-model-simulated embeddings from a text completion endpoint
// ABOUTME: Parses the first bracketed float array in the reply and fits it to size
package embedding

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/harper/vibe-memory/internal/models"
)

// Completer is a text-completion capability
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// CompleterFunc adapts a function to Completer
type CompleterFunc func(ctx context.Context, system, user string) (string, error)

// Complete implements Completer
func (f CompleterFunc) Complete(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}

const completionSystemPrompt = "You are an embedding generator. When given text, output ONLY a JSON array with %d floating point numbers between -1 and 1 that semantically represent the input. This is a simplified embedding vector. Output NOTHING except the JSON array."

var vectorReplyPattern = regexp.MustCompile(`\[\s*-?\d+\.\d+(?:\s*,\s*-?\d+\.\d+)*\s*\]`)

// CompletionEmbedder asks a completion model for a small vector
type CompletionEmbedder struct {
	completer Completer
	dimension int
}

// NewCompletionEmbedder wraps a completer as an embedding tier
func NewCompletionEmbedder(completer Completer, dimension int) *CompletionEmbedder {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &CompletionEmbedder{completer: completer, dimension: dimension}
}

// Tier implements Embedder
func (c *CompletionEmbedder) Tier() models.EmbeddingTier {
	return models.TierCompletion
}

// Embed implements Embedder
func (c *CompletionEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	reply, err := c.completer.Complete(ctx,
		fmt.Sprintf(completionSystemPrompt, c.dimension),
		"Generate an embedding vector for this text: "+text)
	if err != nil {
		return nil, fmt.Errorf("completion request: %w", err)
	}

	vec, ok := ParseVectorReply(reply, c.dimension)
	if !ok {
		return nil, fmt.Errorf("no numeric array in completion reply")
	}
	return vec, nil
}

// ParseVectorReply finds the first bracketed sequence of decimal numbers
// in reply and truncates or zero-pads it to dimension. ok is false when
// no such sequence exists.
func ParseVectorReply(reply string, dimension int) (vec []float64, ok bool) {
	match := vectorReplyPattern.FindString(reply)
	if match == "" {
		return nil, false
	}

	var values []float64
	if err := json.Unmarshal([]byte(match), &values); err != nil || len(values) == 0 {
		return nil, false
	}

	vec = make([]float64, dimension)
	copy(vec, values)
	return vec, true
}
