// ABOUTME: SQLite database schema for saved memories
// ABOUTME: One row per memory with tags as JSON and the embedding as a BLOB
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Saved chat messages, soft-deleted via the deleted flag
CREATE TABLE IF NOT EXISTS memories (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    message_id TEXT,
    text TEXT NOT NULL,
    is_user INTEGER NOT NULL DEFAULT 1,
    timestamp DATETIME NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    embedding BLOB,
    embedding_tier TEXT,
    tags TEXT NOT NULL DEFAULT '[]',
    deleted INTEGER NOT NULL DEFAULT 0,
    deleted_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_memories_user ON memories(user_id, deleted);
CREATE INDEX IF NOT EXISTS idx_memories_timestamp ON memories(user_id, timestamp DESC);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
