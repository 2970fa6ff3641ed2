// ABOUTME: CLI command to embed text and inspect the tier that answered
// ABOUTME: Reads one text per line from stdin when no argument is given
package commands

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/vibe-memory/internal/embedding"
)

var embedCompare string

// NewEmbedCmd creates embed command
func NewEmbedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed [text]",
		Short: "Embed text and show the vector",
		Long: `Embed text with the configured tiers.

With no argument, each stdin line is embedded in batches. With
--compare, prints the cosine similarity between the two texts.

Examples:
  vibemem embed "hello world"
  vibemem embed --compare "hi there" "hello world"
  cat lines.txt | vibemem embed --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEmbed,
	}

	cmd.Flags().StringVar(&embedCompare, "compare", "", "Second text to compare against")

	return cmd
}

type embedOutput struct {
	Text      string    `json:"text"`
	Tier      string    `json:"tier"`
	Dimension int       `json:"dimension"`
	Vector    []float64 `json:"vector"`
}

func runEmbed(cmd *cobra.Command, args []string) error {
	a, err := loadApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	var texts []string
	if len(args) > 0 {
		texts = []string{args[0]}
	} else {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				texts = append(texts, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	if len(texts) == 0 {
		return fmt.Errorf("no text provided")
	}

	if embedCompare != "" {
		first := a.gen.Generate(ctx, texts[0])
		second := a.gen.Generate(ctx, embedCompare)
		sim := embedding.CosineSimilarity(first.Vector, second.Vector)
		if outputFormat == "json" {
			return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
				"similarity": sim,
				"tiers":      []string{string(first.Tier), string(second.Tier)},
			})
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", sim)
		return nil
	}

	embeddings := embedding.BatchGenerate(ctx, a.gen, texts, a.cfg.BatchSize)
	out := make([]embedOutput, len(texts))
	for i, emb := range embeddings {
		out[i] = embedOutput{Text: texts[i], Tier: string(emb.Tier), Dimension: emb.Dimension(), Vector: emb.Vector}
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), out)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "TEXT\tTIER\tDIM\tHEAD\n")
	for _, o := range out {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", truncate(o.Text, 30), o.Tier, o.Dimension, vectorHead(o.Vector, 4))
	}
	return w.Flush()
}

func vectorHead(vec []float64, n int) string {
	parts := make([]string, 0, n+1)
	for i, v := range vec {
		if i == n {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, fmt.Sprintf("%.4f", v))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
