// ABOUTME: CLI command to export memories
// ABOUTME: Writes YAML or JSON to stdout or a file; vectors are left out
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/vibe-memory/internal/storage"
)

var (
	exportOutput string
	exportType   string
)

// NewExportCmd creates export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export memories to YAML or JSON",
		Long: `Export every saved memory for the current user.

Examples:
  vibemem export > memories.yaml
  vibemem export --type json --output memories.json`,
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringVar(&exportType, "type", "yaml", "Export format: yaml, json")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := loadApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	memories, err := a.store.ListAll(cmd.Context(), a.userID)
	if err != nil {
		return fmt.Errorf("loading memories: %w", err)
	}
	data := storage.BuildExport(a.userID, memories)

	if exportOutput == "" {
		return storage.WriteExport(cmd.OutOrStdout(), data, exportType)
	}

	if err := storage.ExportToFile(exportOutput, data, exportType); err != nil {
		return err
	}
	if !quiet {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d memories to %s\n", len(data.Memories), exportOutput)
	}
	return nil
}
