// ABOUTME: CLI command for semantic memory search
// ABOUTME: Ranks saved memories by similarity to a query
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	searchLimit     int
	searchThreshold float64
)

// NewSearchCmd creates search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search memories by meaning",
		Long: `Search saved memories by semantic similarity.

Only memories scoring above the threshold are shown, best match first.

Examples:
  vibemem search "coffee plans"
  vibemem search --limit 10 --threshold 0.5 "weekend"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results (default from SEARCH_MAX_RESULTS)")
	cmd.Flags().Float64Var(&searchThreshold, "threshold", -2, "Minimum similarity (default from SEARCH_THRESHOLD)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := loadApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	limit := a.cfg.SearchMaxResults
	if cmd.Flags().Changed("limit") {
		if err := validatePositiveInt(searchLimit, "limit"); err != nil {
			return err
		}
		limit = searchLimit
	}
	threshold := a.cfg.SearchThreshold
	if cmd.Flags().Changed("threshold") {
		threshold = searchThreshold
	}

	results, err := a.memories.Search(cmd.Context(), a.store, a.userID, args[0], threshold, limit)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), results)
	}

	if len(results) == 0 {
		if !quiet {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No matching memories")
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "SCORE\tMEMORY\tSAVED\tID\n")
	_, _ = fmt.Fprintf(w, "-----\t------\t-----\t--\n")
	for _, r := range results {
		_, _ = fmt.Fprintf(w, "%.3f\t%s\t%s\t%s\n",
			r.Similarity, truncate(r.Memory.Text, 50), formatTime(r.Memory.Timestamp), r.Memory.ID)
	}
	return w.Flush()
}
