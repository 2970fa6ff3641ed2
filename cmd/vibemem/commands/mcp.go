// ABOUTME: MCP command starts the Model Context Protocol server on stdio
// ABOUTME: Exposes memory and vibe tools to LLM agents
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/harper/vibe-memory/internal/mcp"
	"github.com/harper/vibe-memory/internal/util"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the memory and vibe tools as an MCP (Model Context Protocol)
server over stdio. Logs go to stderr so stdout stays clean for the
protocol.`,
		RunE: runMCP,
		Example: `  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "vibemem": {
  #       "command": "vibemem",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	logger := util.NewLogger("mcp")

	a, err := loadApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	logger.Info("embedding tiers", "tiers", a.chain.Tiers(), "vibe_embeddings", a.cfg.VibeEmbeddingsEnabled())

	server := mcpserver.NewMCPServer("Vibe Memory", versionInfo.Version)
	mcp.RegisterTools(server, mcp.Options{
		Memories:        a.memories,
		Vibes:           a.vibes,
		Store:           a.store,
		UserID:          a.userID,
		SearchThreshold: a.cfg.SearchThreshold,
		MaxResults:      a.cfg.SearchMaxResults,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("server starting on stdio", "user", a.userID)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}
	return nil
}
