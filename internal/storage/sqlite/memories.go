// ABOUTME: Memory record persistence for SQLite
// ABOUTME: Creates, lists, and soft-deletes memories scoped by user
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harper/vibe-memory/internal/models"
)

// MemoryStore handles memory persistence
type MemoryStore struct {
	db *DB
}

// NewMemoryStore creates a new MemoryStore
func NewMemoryStore(db *DB) *MemoryStore {
	return &MemoryStore{db: db}
}

const memoryColumns = `id, user_id, message_id, text, is_user, timestamp, created_at,
	embedding, embedding_tier, tags, deleted, deleted_at`

// Create inserts a memory and returns its id. A missing id is generated.
func (s *MemoryStore) Create(ctx context.Context, userID string, m *models.Memory) (string, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.UserID = userID
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = m.CreatedAt
	}
	if err := m.Validate(); err != nil {
		return "", err
	}

	tagsJSON, err := tagsToJSON(m.Tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO memories (id, user_id, message_id, text, is_user, timestamp, created_at,
			embedding, embedding_tier, tags, deleted, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, NULL)
	`, m.ID, userID, nullString(m.MessageID), m.Text, m.IsUser, m.Timestamp, m.CreatedAt,
		vectorToBlob(m.Embedding), nullString(string(m.EmbeddingTier)), tagsJSON)
	if err != nil {
		return "", fmt.Errorf("failed to insert memory: %w", err)
	}

	return m.ID, nil
}

// Get retrieves a memory by id, including soft-deleted ones. Returns nil
// when the memory does not exist.
func (s *MemoryStore) Get(ctx context.Context, userID, id string) (*models.Memory, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+memoryColumns+`
		FROM memories
		WHERE user_id = ? AND id = ?
	`, userID, id)

	m, err := scanMemory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListAll returns every non-deleted memory for a user, newest first
func (s *MemoryStore) ListAll(ctx context.Context, userID string) ([]models.Memory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+memoryColumns+`
		FROM memories
		WHERE user_id = ? AND deleted = 0
		ORDER BY timestamp DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query memories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	memories := []models.Memory{}
	for rows.Next() {
		m, err := scanMemory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan memory: %w", err)
		}
		memories = append(memories, *m)
	}
	return memories, rows.Err()
}

// MarkDeleted soft-deletes a memory. The first deletion time is kept.
func (s *MemoryStore) MarkDeleted(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE memories
		SET deleted = 1, deleted_at = COALESCE(deleted_at, ?)
		WHERE user_id = ? AND id = ?
	`, time.Now(), userID, id)
	if err != nil {
		return fmt.Errorf("failed to mark memory deleted: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", models.ErrMemoryNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMemory(row rowScanner) (*models.Memory, error) {
	var (
		m         models.Memory
		messageID sql.NullString
		tier      sql.NullString
		tagsJSON  string
		blob      []byte
		deletedAt sql.NullTime
	)

	if err := row.Scan(&m.ID, &m.UserID, &messageID, &m.Text, &m.IsUser, &m.Timestamp, &m.CreatedAt,
		&blob, &tier, &tagsJSON, &m.Deleted, &deletedAt); err != nil {
		return nil, err
	}

	if messageID.Valid {
		m.MessageID = messageID.String
	}
	if tier.Valid {
		m.EmbeddingTier = models.EmbeddingTier(tier.String)
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		m.DeletedAt = &t
	}
	m.Embedding = blobToVector(blob)
	m.Tags = jsonToTags(tagsJSON)

	return &m, nil
}
