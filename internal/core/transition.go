// ABOUTME: Vibe transition detection between the tracked vibe and a new message
// ABOUTME: Returns nil when nothing changed; the caller keeps the current vibe
package core

import (
	"context"
	"strings"

	"github.com/harper/vibe-memory/internal/models"
)

// defaultTransitionStrength is used when the new classification has no confidence
const defaultTransitionStrength = 0.5

// DetectTransition classifies text and reports a change away from current.
// Empty text or an unknown current vibe yields no transition.
func DetectTransition(ctx context.Context, classifier VibeClassifier, current models.Vibe, text string) *models.VibeTransition {
	if strings.TrimSpace(text) == "" || !current.Valid() {
		return nil
	}

	c := classifier.Classify(ctx, text)
	if c.Vibe == current {
		return nil
	}

	strength := c.Confidence
	if strength == 0 {
		strength = defaultTransitionStrength
	}
	return &models.VibeTransition{From: current, To: c.Vibe, Strength: strength}
}
