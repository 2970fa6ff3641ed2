// ABOUTME: Export functionality for saved memories
// ABOUTME: Supports YAML and JSON export formats; embeddings are never exported
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harper/vibe-memory/internal/models"
)

// ExportData represents the complete exportable data structure
type ExportData struct {
	Version    string         `yaml:"version" json:"version"`
	ExportedAt string         `yaml:"exported_at" json:"exported_at"`
	Tool       string         `yaml:"tool" json:"tool"`
	UserID     string         `yaml:"user_id" json:"user_id"`
	Memories   []ExportMemory `yaml:"memories" json:"memories"`
}

// ExportMemory represents a memory for export
type ExportMemory struct {
	ID        string   `yaml:"id" json:"id"`
	Text      string   `yaml:"text" json:"text"`
	Author    string   `yaml:"author" json:"author"`
	Tags      []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Tier      string   `yaml:"embedding_tier,omitempty" json:"embedding_tier,omitempty"`
	Timestamp string   `yaml:"timestamp" json:"timestamp"`
	CreatedAt string   `yaml:"created_at" json:"created_at"`
}

// BuildExport converts memories into the export structure
func BuildExport(userID string, memories []models.Memory) *ExportData {
	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().Format(time.RFC3339),
		Tool:       "vibemem",
		UserID:     userID,
		Memories:   make([]ExportMemory, 0, len(memories)),
	}

	for _, m := range memories {
		author := "assistant"
		if m.IsUser {
			author = "user"
		}
		data.Memories = append(data.Memories, ExportMemory{
			ID:        m.ID,
			Text:      m.Text,
			Author:    author,
			Tags:      m.Tags,
			Tier:      string(m.EmbeddingTier),
			Timestamp: m.Timestamp.Format(time.RFC3339),
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		})
	}
	return data
}

// WriteExport encodes data as "yaml" or "json"
func WriteExport(w io.Writer, data *ExportData, format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q (want yaml or json)", format)
	}
}

// ExportToFile writes data to outputPath, creating parent directories
func ExportToFile(outputPath string, data *ExportData, format string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(outputPath) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return WriteExport(file, data, format)
}
