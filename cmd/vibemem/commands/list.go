// ABOUTME: CLI command to list memories
// ABOUTME: Shows saved memories newest first with tags and author
package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/vibe-memory/internal/core"
)

var listLimit int

// NewListCmd creates list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved memories",
		Long: `List saved memories, newest first.

Forgotten memories are never shown.

Examples:
  vibemem list
  vibemem list --limit 20
  vibemem list --format json`,
		RunE: runList,
	}

	cmd.Flags().IntVar(&listLimit, "limit", core.DefaultListLimit, "Maximum memories to show")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(listLimit, "limit"); err != nil {
		return err
	}

	a, err := loadApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	memories, err := a.memories.List(cmd.Context(), a.store, a.userID, listLimit)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), memories)
	}

	if len(memories) == 0 {
		if !quiet {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No memories found\n")
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "MEMORY\tTAGS\tBY\tSAVED\tID\n")
	_, _ = fmt.Fprintf(w, "------\t----\t--\t-----\t--\n")
	for _, m := range memories {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			truncate(m.Text, 40),
			truncate(strings.Join(m.Tags, ","), 24),
			author(m.IsUser),
			formatTime(m.Timestamp),
			m.ID)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !quiet {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d memory(s)\n", len(memories))
	}
	return nil
}
