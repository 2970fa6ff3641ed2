// ABOUTME: CLI command to add new memories
// ABOUTME: Reads text from an argument, file, or stdin and saves it with tags
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/vibe-memory/internal/models"
)

var (
	addFile      string
	addTags      []string
	addAssistant bool
	addMessageID string
)

// NewAddCmd creates add command
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a new memory",
		Long: `Add a new memory from text, a file, or stdin.

Tags are picked from a fixed topic dictionary unless --tags is given.

Examples:
  vibemem add "Dinner with family on Sunday"
  vibemem add --file notes.txt
  vibemem add --tags=work,plan "Ship the beta next week"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringVar(&addFile, "file", "", "Read memory from file")
	cmd.Flags().StringSliceVar(&addTags, "tags", []string{}, "Tags for memory (comma-separated)")
	cmd.Flags().BoolVar(&addAssistant, "assistant", false, "Mark the message as written by the assistant")
	cmd.Flags().StringVar(&addMessageID, "message-id", "", "Id of the source chat message")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	a, err := loadApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	m, err := a.memories.Save(cmd.Context(), a.store, a.userID, models.Message{
		ID:        addMessageID,
		Text:      text,
		IsUser:    !addAssistant,
		Timestamp: time.Now(),
	}, addTags)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), m)
	}
	if !quiet {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Added memory %s [%s] (%s embedding)\n",
			m.ID, strings.Join(m.Tags, ", "), m.EmbeddingTier)
	}
	return nil
}

// readInput takes text from --file, the first argument, or stdin
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var text string
	switch {
	case addFile != "":
		data, err := os.ReadFile(addFile)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	case len(args) > 0:
		text = args[0]
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text provided")
	}
	return text, nil
}
