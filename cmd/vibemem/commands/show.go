// ABOUTME: CLI command to show one memory in full
// ABOUTME: Prints text, author, tags, and embedding tier for a memory id
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/vibe-memory/internal/core"
)

// NewShowCmd creates show command
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <memory-id>",
		Short: "Show a saved memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			m, err := a.memories.Get(cmd.Context(), a.store, a.userID, args[0])
			if err != nil {
				if core.IsNotFound(err) {
					return fmt.Errorf("no memory with id %s", args[0])
				}
				return err
			}

			if outputFormat == "json" {
				return writeJSON(cmd.OutOrStdout(), m)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\n\n", m.Text)
			_, _ = fmt.Fprintf(out, "ID:     %s\n", m.ID)
			_, _ = fmt.Fprintf(out, "By:     %s\n", author(m.IsUser))
			_, _ = fmt.Fprintf(out, "Saved:  %s (%s)\n", m.Timestamp.Format("2006-01-02 15:04"), formatTime(m.Timestamp))
			_, _ = fmt.Fprintf(out, "Tags:   %s\n", strings.Join(m.Tags, ", "))
			_, _ = fmt.Fprintf(out, "Tier:   %s\n", m.EmbeddingTier)
			return nil
		},
	}
}
