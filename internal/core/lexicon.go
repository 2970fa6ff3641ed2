// ABOUTME: Marker lexicon for keyword vibe classification
// ABOUTME: Built-in marker lists can be replaced by a YAML file
package core

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harper/vibe-memory/internal/models"
)

// Lexicon maps each non-neutral vibe to its marker phrases
type Lexicon map[models.Vibe][]string

// DefaultLexicon returns the built-in marker lists
func DefaultLexicon() Lexicon {
	return Lexicon{
		models.VibeFriendly: {
			"laughing", "love", "friend", "happy", "glad", "nice", "fun", "cool", "awesome",
			"thank you", "thanks", "appreciate", "enjoy", "haha", "lol", "😊", "😄", "❤️", "welcome",
		},
		models.VibeHelpful: {
			"help", "advice", "suggest", "recommendation", "solution", "explain", "clarify",
			"how to", "could you", "would you", "please", "need assistance", "question", "answer",
			"guide", "steps", "tutorial", "learn", "understand", "improve",
		},
		models.VibeChaotic: {
			"wild", "crazy", "random", "weird", "strange", "unexpected", "unpredictable",
			"surprising", "bizarre", "absurd", "chaotic", "ridiculous", "outrageous", "impossible",
			"unbelievable", "wtf", "omg", "what the", "no way", "🤪", "😜", "🤯", "🔮",
		},
		models.VibeSerious: {
			"important", "serious", "concern", "issue", "problem", "critical", "urgent",
			"deadline", "project", "work", "task", "responsibility", "focus", "priority",
			"analyze", "review", "consider", "evaluate", "determine", "assess",
		},
	}
}

// lexiconFile is the on-disk shape:
//
//	markers:
//	  friendly: [thanks, awesome]
//	  serious: [deadline]
type lexiconFile struct {
	Markers map[string][]string `yaml:"markers"`
}

// LoadLexicon reads a YAML lexicon. Vibes missing from the file have no
// markers; neutral markers are rejected since neutral is the fallback.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	return ParseLexicon(data)
}

// ParseLexicon decodes a YAML lexicon document
func ParseLexicon(data []byte) (Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if len(f.Markers) == 0 {
		return nil, fmt.Errorf("lexicon has no markers")
	}

	lex := Lexicon{}
	for name, markers := range f.Markers {
		v, ok := models.ParseVibe(name)
		if !ok {
			return nil, fmt.Errorf("lexicon: unknown vibe %q", name)
		}
		if v == models.VibeNeutral {
			return nil, fmt.Errorf("lexicon: neutral cannot have markers")
		}
		for _, m := range markers {
			m = strings.ToLower(strings.TrimSpace(m))
			if m != "" {
				lex[v] = append(lex[v], m)
			}
		}
	}
	return lex, nil
}
