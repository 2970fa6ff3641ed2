// ABOUTME: MCP tool handler implementations for the vibe memory server
// ABOUTME: Tool failures are returned as tool errors, never as protocol errors
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/vibe-memory/internal/core"
	"github.com/harper/vibe-memory/internal/models"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	memories   *core.MemoryEngine
	vibes      *core.VibeEngine
	store      core.MemoryStore
	userID     string
	threshold  float64
	maxResults int
	logger     *log.Logger
}

// vibeView is a vibe with its presentation data
type vibeView struct {
	ID          models.Vibe `json:"id"`
	Label       string      `json:"label"`
	Emoji       string      `json:"emoji"`
	Description string      `json:"description"`
	Color       string      `json:"color"`
}

func viewOf(v models.Vibe) vibeView {
	c, ok := models.LookupVibe(v)
	if !ok {
		return vibeView{ID: v}
	}
	return vibeView{ID: c.ID, Label: c.Label, Emoji: c.Emoji, Description: c.Description, Color: c.Color}
}

// SaveMemory handles the save_memory tool
func (h *Handlers) SaveMemory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	msg := models.Message{
		ID:        request.GetString("message_id", ""),
		Text:      text,
		IsUser:    request.GetBool("is_user", true),
		Timestamp: time.Now(),
	}

	m, err := h.memories.Save(ctx, h.store, h.user(request), msg, stringArgs(request, "tags"))
	if err != nil {
		return h.toolError("save failed", err), nil
	}

	return jsonResult(map[string]interface{}{
		"memory_id":      m.ID,
		"tags":           m.Tags,
		"embedding_tier": m.EmbeddingTier,
	})
}

// SearchMemories handles the search_memories tool
func (h *Handlers) SearchMemories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	threshold := request.GetFloat("threshold", h.threshold)
	maxResults := request.GetInt("max_results", h.maxResults)

	results, err := h.memories.Search(ctx, h.store, h.user(request), query, threshold, maxResults)
	if err != nil {
		return h.toolError("memory search failed", err), nil
	}

	return jsonResult(map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

// ListMemories handles the list_memories tool
func (h *Handlers) ListMemories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", core.DefaultListLimit)

	memories, err := h.memories.List(ctx, h.store, h.user(request), limit)
	if err != nil {
		return h.toolError("failed to list memories", err), nil
	}

	return jsonResult(map[string]interface{}{
		"memories": memories,
		"count":    len(memories),
	})
}

// DeleteMemory handles the delete_memory tool
func (h *Handlers) DeleteMemory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("memory_id")
	if err != nil {
		return mcp.NewToolResultError("memory_id argument is required and must be a string"), nil
	}

	if err := h.memories.Forget(ctx, h.store, h.user(request), id); err != nil {
		if core.IsNotFound(err) {
			return mcp.NewToolResultError(fmt.Sprintf("memory %s not found", id)), nil
		}
		return h.toolError("delete failed", err), nil
	}

	return jsonResult(map[string]interface{}{
		"success":   true,
		"memory_id": id,
	})
}

// DetectVibe handles the detect_vibe tool
func (h *Handlers) DetectVibe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	c := h.vibes.Classify(ctx, text)
	return jsonResult(map[string]interface{}{
		"vibe":       viewOf(c.Vibe),
		"score":      c.Score,
		"confidence": c.Confidence,
		"method":     c.Method,
	})
}

// ConversationVibe handles the conversation_vibe tool
func (h *Handlers) ConversationVibe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	messages := stringArgs(request, "messages")
	if messages == nil {
		return mcp.NewToolResultError("messages argument is required and must be an array of strings"), nil
	}

	conv := h.vibes.Conversation(ctx, messages)
	return jsonResult(map[string]interface{}{
		"vibe":          viewOf(conv.Vibe),
		"strength":      conv.Strength,
		"scores":        conv.Scores,
		"window_size":   len(conv.Window),
		"window_limit":  h.vibes.WindowSize(),
		"messages_seen": len(messages),
	})
}

// VibeTransition handles the vibe_transition tool
func (h *Handlers) VibeTransition(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	currentArg, err := request.RequireString("current_vibe")
	if err != nil {
		return mcp.NewToolResultError("current_vibe argument is required and must be a string"), nil
	}
	current, ok := models.ParseVibe(currentArg)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown vibe %q", currentArg)), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	tr := h.vibes.Transition(ctx, current, text)
	if tr == nil {
		return jsonResult(map[string]interface{}{
			"transition": false,
			"vibe":       viewOf(current),
		})
	}

	return jsonResult(map[string]interface{}{
		"transition": true,
		"from":       viewOf(tr.From),
		"to":         viewOf(tr.To),
		"strength":   tr.Strength,
	})
}

func (h *Handlers) user(request mcp.CallToolRequest) string {
	if id := strings.TrimSpace(request.GetString("user_id", "")); id != "" {
		return id
	}
	return h.userID
}

func (h *Handlers) toolError(msg string, err error) *mcp.CallToolResult {
	switch {
	case core.IsInvalidInput(err):
		return mcp.NewToolResultError(fmt.Sprintf("invalid input: %v", err))
	case core.IsStoreFailure(err):
		h.logger.Error(msg, "err", err)
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", msg, err))
}

// stringArgs reads an array argument of strings, skipping other values.
// Returns nil when the argument is missing or not an array.
func stringArgs(request mcp.CallToolRequest, key string) []string {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := args[key].([]interface{})
	if !ok {
		if typed, ok := args[key].([]string); ok {
			return typed
		}
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func jsonResult(response map[string]interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
