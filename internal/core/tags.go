// ABOUTME: Topical tag extraction for saved memories
// ABOUTME: Matches a fixed keyword dictionary; explicit tags always win
package core

import "strings"

// MaxExtractedTags caps how many dictionary tags a memory receives
const MaxExtractedTags = 3

// TagDictionary is checked in order; earlier entries win when more than
// MaxExtractedTags match.
var TagDictionary = []string{
	"work", "family", "friends", "health", "tech",
	"music", "movies", "sports", "travel", "food",
	"code", "programming", "art", "books", "projects",
	"ideas", "plans", "questions", "advice", "important",
}

// ExtractTags returns up to MaxExtractedTags dictionary words found in text
func ExtractTags(text string) []string {
	lower := strings.ToLower(text)
	tags := []string{}
	for _, tag := range TagDictionary {
		if strings.Contains(lower, tag) {
			tags = append(tags, tag)
			if len(tags) == MaxExtractedTags {
				break
			}
		}
	}
	return tags
}

// ResolveTags uses explicit tags when any survive trimming and
// deduplication, otherwise extracts from text.
func ResolveTags(explicit []string, text string) []string {
	seen := make(map[string]bool, len(explicit))
	tags := []string{}
	for _, t := range explicit {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	if len(tags) > 0 {
		return tags
	}
	return ExtractTags(text)
}
