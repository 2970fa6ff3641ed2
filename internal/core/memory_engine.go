// ABOUTME: MemoryEngine saves, lists, searches, and forgets a user's memories
// ABOUTME: The store and user id are passed on every call; the engine holds no session
package core

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harper/vibe-memory/internal/embedding"
	"github.com/harper/vibe-memory/internal/models"
	"github.com/harper/vibe-memory/internal/util"
)

// Search and list defaults
const (
	DefaultSearchThreshold = 0.7
	DefaultMaxResults      = 5
	DefaultListLimit       = 100
)

// MemoryStore is the persistence the engine needs. ListAll must not
// return soft-deleted memories; MarkDeleted wraps models.ErrMemoryNotFound
// for unknown ids.
type MemoryStore interface {
	Create(ctx context.Context, userID string, m *models.Memory) (string, error)
	ListAll(ctx context.Context, userID string) ([]models.Memory, error)
	MarkDeleted(ctx context.Context, userID, id string) error
}

// MemoryReader looks up one memory by id. Get returns nil, nil when the
// user has no memory with that id.
type MemoryReader interface {
	Get(ctx context.Context, userID, id string) (*models.Memory, error)
}

// MemoryEngine computes embeddings and tags and ranks memories
type MemoryEngine struct {
	gen       embedding.Generator
	batchSize int
	logger    *log.Logger
}

// NewMemoryEngine creates an engine. A non-positive batchSize uses
// embedding.DefaultBatchSize.
func NewMemoryEngine(gen embedding.Generator, batchSize int) *MemoryEngine {
	if batchSize <= 0 {
		batchSize = embedding.DefaultBatchSize
	}
	return &MemoryEngine{
		gen:       gen,
		batchSize: batchSize,
		logger:    util.NewLogger("memory"),
	}
}

// Save embeds and tags msg and persists it. Explicit tags replace the
// extracted ones. The returned memory has no vector.
func (e *MemoryEngine) Save(ctx context.Context, store MemoryStore, userID string, msg models.Message, tags []string) (*models.Memory, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, invalidInput("save", "user id cannot be empty")
	}
	if strings.TrimSpace(msg.Text) == "" {
		return nil, invalidInput("save", "memory text cannot be empty")
	}

	emb := e.gen.Generate(ctx, msg.Text)

	now := time.Now()
	m := &models.Memory{
		UserID:        userID,
		MessageID:     msg.ID,
		Text:          msg.Text,
		IsUser:        msg.IsUser,
		Timestamp:     msg.Timestamp,
		CreatedAt:     now,
		Embedding:     emb.Vector,
		EmbeddingTier: emb.Tier,
		Tags:          ResolveTags(tags, msg.Text),
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = now
	}

	id, err := store.Create(ctx, userID, m)
	if err != nil {
		return nil, storeError(err, "create", userID)
	}
	m.ID = id

	e.logger.Debug("saved memory", "id", id, "tier", emb.Tier, "tags", m.Tags)
	saved := m.WithoutEmbedding()
	return &saved, nil
}

// List returns up to limit memories, newest first, without vectors.
// A non-positive limit uses DefaultListLimit.
func (e *MemoryEngine) List(ctx context.Context, store MemoryStore, userID string, limit int) ([]models.Memory, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, invalidInput("list", "user id cannot be empty")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	all, err := store.ListAll(ctx, userID)
	if err != nil {
		return nil, storeError(err, "list", userID)
	}

	live := make([]models.Memory, 0, min(len(all), limit))
	for _, m := range all {
		if m.Deleted {
			continue
		}
		live = append(live, m.WithoutEmbedding())
	}
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].Timestamp.After(live[j].Timestamp)
	})
	if len(live) > limit {
		live = live[:limit]
	}
	return live, nil
}

// Search ranks the user's memories by similarity to query. Only scores
// strictly above threshold are kept; memories whose vector dimension
// differs from the query's are skipped.
func (e *MemoryEngine) Search(ctx context.Context, store MemoryStore, userID, query string, threshold float64, maxResults int) ([]models.SearchResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, invalidInput("search", "user id cannot be empty")
	}
	results := []models.SearchResult{}
	if maxResults <= 0 || strings.TrimSpace(query) == "" {
		return results, nil
	}

	q := e.gen.Generate(ctx, query)

	all, err := store.ListAll(ctx, userID)
	if err != nil {
		return nil, storeError(err, "search", userID)
	}

	skipped := 0
	for _, m := range all {
		if m.Deleted || !m.HasEmbedding() {
			continue
		}
		stored := models.Embedding{Vector: m.Embedding, Tier: m.EmbeddingTier}
		if err := stored.ValidateDimension(q.Dimension()); err != nil {
			skipped++
			continue
		}

		sim := embedding.CosineSimilarity(q.Vector, m.Embedding)
		if sim > threshold {
			results = append(results, models.SearchResult{Memory: m.WithoutEmbedding(), Similarity: sim})
		}
	}
	if skipped > 0 {
		e.logger.Debug("skipped memories with a different dimension", "count", skipped, "query_tier", q.Tier)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// Get returns one live memory without its vector. Forgotten memories
// are reported as not found.
func (e *MemoryEngine) Get(ctx context.Context, store MemoryReader, userID, memoryID string) (*models.Memory, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, invalidInput("get", "user id cannot be empty")
	}
	if strings.TrimSpace(memoryID) == "" {
		return nil, invalidInput("get", "memory id cannot be empty")
	}

	m, err := store.Get(ctx, userID, memoryID)
	if err != nil {
		return nil, storeError(err, "get", userID)
	}
	if m == nil || m.Deleted {
		return nil, notFoundError(models.ErrMemoryNotFound, userID, memoryID)
	}

	found := m.WithoutEmbedding()
	return &found, nil
}

// Forget soft-deletes a memory
func (e *MemoryEngine) Forget(ctx context.Context, store MemoryStore, userID, memoryID string) error {
	if strings.TrimSpace(userID) == "" {
		return invalidInput("delete", "user id cannot be empty")
	}
	if strings.TrimSpace(memoryID) == "" {
		return invalidInput("delete", "memory id cannot be empty")
	}

	if err := store.MarkDeleted(ctx, userID, memoryID); err != nil {
		if errors.Is(err, models.ErrMemoryNotFound) {
			return notFoundError(err, userID, memoryID)
		}
		return storeError(err, "delete", userID)
	}
	return nil
}

// EmbedConversation pre-computes embeddings for a message history in
// groups, keyed by message id. Messages without an id or text are skipped.
func (e *MemoryEngine) EmbedConversation(ctx context.Context, messages []models.Message) map[string]models.Embedding {
	ids := make([]string, 0, len(messages))
	texts := make([]string, 0, len(messages))
	for _, m := range messages {
		if m.ID == "" || strings.TrimSpace(m.Text) == "" {
			continue
		}
		ids = append(ids, m.ID)
		texts = append(texts, m.Text)
	}

	embeddings := embedding.BatchGenerate(ctx, e.gen, texts, e.batchSize)

	out := make(map[string]models.Embedding, len(ids))
	for i, id := range ids {
		out[id] = embeddings[i]
	}
	return out
}
