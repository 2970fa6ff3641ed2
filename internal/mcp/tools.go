// ABOUTME: MCP tool definitions and registration for the vibe memory server
// ABOUTME: Seven tools cover saved memories and conversation vibes
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/vibe-memory/internal/core"
	"github.com/harper/vibe-memory/internal/util"
)

// Options configures the tool handlers
type Options struct {
	Memories *core.MemoryEngine
	Vibes    *core.VibeEngine
	Store    core.MemoryStore
	// UserID is used when a call does not pass user_id
	UserID          string
	SearchThreshold float64
	MaxResults      int
}

var userIDProperty = map[string]interface{}{
	"type":        "string",
	"description": "User whose memories to use (defaults to the server's configured user)",
}

// NewHandlers builds handlers without registering them
func NewHandlers(opts Options) *Handlers {
	if opts.MaxResults <= 0 {
		opts.MaxResults = core.DefaultMaxResults
	}
	return &Handlers{
		memories:   opts.Memories,
		vibes:      opts.Vibes,
		store:      opts.Store,
		userID:     opts.UserID,
		threshold:  opts.SearchThreshold,
		maxResults: opts.MaxResults,
		logger:     util.NewLogger("mcp"),
	}
}

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, opts Options) *Handlers {
	handlers := NewHandlers(opts)

	// 1. save_memory
	server.AddTool(mcp.Tool{
		Name:        "save_memory",
		Description: "Save a chat message as a memory. Tags are extracted from the text unless given explicitly.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Message text to remember",
				},
				"is_user": map[string]interface{}{
					"type":        "boolean",
					"description": "Whether the human user wrote the message (default: true)",
					"default":     true,
				},
				"message_id": map[string]interface{}{
					"type":        "string",
					"description": "Optional id of the source chat message",
				},
				"tags": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Explicit tags; replaces automatic tag extraction",
				},
				"user_id": userIDProperty,
			},
			Required: []string{"text"},
		},
	}, handlers.SaveMemory)

	// 2. search_memories
	server.AddTool(mcp.Tool{
		Name:        "search_memories",
		Description: "Find saved memories semantically similar to a query, best match first.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "What to look for",
				},
				"threshold": map[string]interface{}{
					"type":        "number",
					"description": "Minimum similarity, exclusive (default from configuration)",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 5)",
					"default":     5,
				},
				"user_id": userIDProperty,
			},
			Required: []string{"query"},
		},
	}, handlers.SearchMemories)

	// 3. list_memories
	server.AddTool(mcp.Tool{
		Name:        "list_memories",
		Description: "List saved memories, newest first.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of memories (default: 100)",
					"default":     core.DefaultListLimit,
				},
				"user_id": userIDProperty,
			},
		},
	}, handlers.ListMemories)

	// 4. delete_memory
	server.AddTool(mcp.Tool{
		Name:        "delete_memory",
		Description: "Forget a saved memory. It no longer appears in lists or searches.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"memory_id": map[string]interface{}{
					"type":        "string",
					"description": "Id of the memory to forget",
				},
				"user_id": userIDProperty,
			},
			Required: []string{"memory_id"},
		},
	}, handlers.DeleteMemory)

	// 5. detect_vibe
	server.AddTool(mcp.Tool{
		Name:        "detect_vibe",
		Description: "Classify the vibe of a single message: friendly, helpful, chaotic, serious, or neutral.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Message to classify",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.DetectVibe)

	// 6. conversation_vibe
	server.AddTool(mcp.Tool{
		Name:        "conversation_vibe",
		Description: "Compute the dominant vibe of a conversation from its recent messages, weighting later messages more.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"messages": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Message texts, oldest first",
				},
			},
			Required: []string{"messages"},
		},
	}, handlers.ConversationVibe)

	// 7. vibe_transition
	server.AddTool(mcp.Tool{
		Name:        "vibe_transition",
		Description: "Check whether a new message changes the conversation's current vibe.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"current_vibe": map[string]interface{}{
					"type":        "string",
					"description": "Vibe the conversation is in now",
					"enum":        []string{"friendly", "helpful", "chaotic", "serious", "neutral"},
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "The new message",
				},
			},
			Required: []string{"current_vibe", "text"},
		},
	}, handlers.VibeTransition)

	return handlers
}
