// ABOUTME: CLI command to forget a memory
// ABOUTME: Soft-deletes so the memory disappears from lists and searches
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/vibe-memory/internal/core"
)

// NewForgetCmd creates forget command
func NewForgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "forget <memory-id>",
		Aliases: []string{"delete", "rm"},
		Short:   "Forget a memory",
		Long: `Forget a saved memory.

The memory is flagged as deleted and no longer appears in list or
search results.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.memories.Forget(cmd.Context(), a.store, a.userID, args[0]); err != nil {
				if core.IsNotFound(err) {
					return fmt.Errorf("no memory with id %s", args[0])
				}
				return err
			}

			if !quiet {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Forgot memory %s\n", args[0])
			}
			return nil
		},
	}
}
