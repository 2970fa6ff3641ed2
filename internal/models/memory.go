// ABOUTME: Memory record and message structures for saved chat messages
// ABOUTME: Used by the memory engine, storage adapters, and MCP tools
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Memory is a single chat message a user chose to save, enriched with
// an embedding and topical tags.
type Memory struct {
	ID            string        `json:"id" yaml:"id"`
	UserID        string        `json:"user_id" yaml:"user_id"`
	MessageID     string        `json:"message_id,omitempty" yaml:"message_id,omitempty"`
	Text          string        `json:"text" yaml:"text"`
	IsUser        bool          `json:"is_user" yaml:"is_user"`
	Timestamp     time.Time     `json:"timestamp" yaml:"timestamp"`
	CreatedAt     time.Time     `json:"created_at" yaml:"created_at"`
	Embedding     []float64     `json:"embedding,omitempty" yaml:"-"`
	EmbeddingTier EmbeddingTier `json:"embedding_tier,omitempty" yaml:"embedding_tier,omitempty"`
	Tags          []string      `json:"tags" yaml:"tags"`
	Deleted       bool          `json:"deleted,omitempty" yaml:"deleted,omitempty"`
	DeletedAt     *time.Time    `json:"deleted_at,omitempty" yaml:"deleted_at,omitempty"`
}

// Validate checks the fields a store needs before persisting a memory
func (m *Memory) Validate() error {
	if strings.TrimSpace(m.UserID) == "" {
		return fmt.Errorf("memory user_id cannot be empty")
	}
	if strings.TrimSpace(m.Text) == "" {
		return fmt.Errorf("memory text cannot be empty")
	}
	return nil
}

// HasEmbedding reports whether a vector was stored with the memory
func (m *Memory) HasEmbedding() bool {
	return len(m.Embedding) > 0
}

// WithoutEmbedding returns a copy of the memory with the raw vector removed
func (m Memory) WithoutEmbedding() Memory {
	m.Embedding = nil
	return m
}

// Message is a chat message offered for saving or pre-embedding
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"is_user"`
	Timestamp time.Time `json:"timestamp"`
}

// SearchResult is a memory ranked by similarity to a query
type SearchResult struct {
	Memory     Memory  `json:"memory"`
	Similarity float64 `json:"similarity"`
}

// ErrMemoryNotFound is returned by stores when no memory matches an id
var ErrMemoryNotFound = errors.New("memory not found")
