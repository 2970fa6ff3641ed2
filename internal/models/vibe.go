// ABOUTME: Vibe categories, per-message classifications, and conversation state
// ABOUTME: The category set is closed and ordered; Neutral is the fallback
package models

import "strings"

// Vibe identifies a tonal category
type Vibe string

const (
	VibeFriendly Vibe = "friendly"
	VibeHelpful  Vibe = "helpful"
	VibeChaotic  Vibe = "chaotic"
	VibeSerious  Vibe = "serious"
	VibeNeutral  Vibe = "neutral"
)

// VibeCategory is the presentation record for a vibe. The intensity range
// is for display only.
type VibeCategory struct {
	ID           Vibe    `json:"id" yaml:"id"`
	Label        string  `json:"label" yaml:"label"`
	Emoji        string  `json:"emoji" yaml:"emoji"`
	Description  string  `json:"description" yaml:"description"`
	Color        string  `json:"color" yaml:"color"`
	MinIntensity float64 `json:"min_intensity" yaml:"min_intensity"`
	MaxIntensity float64 `json:"max_intensity" yaml:"max_intensity"`
}

// VibeCategories lists every category in evaluation order. Ties during
// scoring resolve to the earlier entry.
var VibeCategories = []VibeCategory{
	{ID: VibeFriendly, Label: "Friendly", Emoji: "😊", Description: "Warm and conversational", Color: "#FF7A5A", MinIntensity: 0.4, MaxIntensity: 0.8},
	{ID: VibeHelpful, Label: "Helpful", Emoji: "💡", Description: "Informative and constructive", Color: "#3ECFB2", MinIntensity: 0.3, MaxIntensity: 0.6},
	{ID: VibeChaotic, Label: "Chaotic", Emoji: "🔮", Description: "Creative and unpredictable", Color: "#9D7AFF", MinIntensity: 0.7, MaxIntensity: 1.0},
	{ID: VibeSerious, Label: "Serious", Emoji: "🧠", Description: "Focused and analytical", Color: "#FFD166", MinIntensity: 0.5, MaxIntensity: 0.8},
	{ID: VibeNeutral, Label: "Neutral", Emoji: "😐", Description: "Balanced and moderate", Color: "#A0A0A0", MinIntensity: 0.0, MaxIntensity: 0.3},
}

// AllVibes returns category ids in evaluation order
func AllVibes() []Vibe {
	vibes := make([]Vibe, len(VibeCategories))
	for i, c := range VibeCategories {
		vibes[i] = c.ID
	}
	return vibes
}

// LookupVibe returns the category record for an id
func LookupVibe(v Vibe) (VibeCategory, bool) {
	for _, c := range VibeCategories {
		if c.ID == v {
			return c, true
		}
	}
	return VibeCategory{}, false
}

// ParseVibe accepts an id or label in any case
func ParseVibe(s string) (Vibe, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range VibeCategories {
		if string(c.ID) == s || strings.ToLower(c.Label) == s {
			return c.ID, true
		}
	}
	return "", false
}

// Valid reports whether v is a known category
func (v Vibe) Valid() bool {
	_, ok := LookupVibe(v)
	return ok
}

// ClassificationMethod records how a message was classified
type ClassificationMethod string

const (
	MethodKeyword   ClassificationMethod = "keyword"
	MethodEmbedding ClassificationMethod = "embedding"
)

// VibeClassification is the result of classifying one message.
// Score is the marker count in keyword mode and the best cosine
// similarity in embedding mode.
type VibeClassification struct {
	Vibe       Vibe                 `json:"vibe"`
	Score      float64              `json:"score"`
	Confidence float64              `json:"confidence"`
	Method     ClassificationMethod `json:"method"`
}

// ConversationVibe is the aggregate reading of a message window. It is
// owned by the caller and recomputed on every new message.
type ConversationVibe struct {
	Vibe     Vibe             `json:"vibe"`
	Strength float64          `json:"strength"`
	Scores   map[Vibe]float64 `json:"scores"`
	Window   []string         `json:"window"`
}

// NeutralConversation is the reading for an empty window
func NeutralConversation() ConversationVibe {
	return ConversationVibe{
		Vibe:   VibeNeutral,
		Scores: map[Vibe]float64{},
		Window: []string{},
	}
}

// VibeTransition reports a change from one category to another
type VibeTransition struct {
	From     Vibe    `json:"from"`
	To       Vibe    `json:"to"`
	Strength float64 `json:"strength"`
}
