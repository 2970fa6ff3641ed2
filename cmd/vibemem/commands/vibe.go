// ABOUTME: CLI commands for vibe classification and transitions
// ABOUTME: classify, conversation, and transition map to the vibe engine operations
package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/vibe-memory/internal/models"
)

// NewVibeCmd creates the vibe command group
func NewVibeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vibe",
		Short: "Read the vibe of messages and conversations",
		Long: `Classify messages into friendly, helpful, chaotic, serious, or neutral.

Keyword markers are used unless VIBE_EMBEDDING_MODE and network
embeddings are both enabled.`,
	}

	cmd.AddCommand(newVibeClassifyCmd())
	cmd.AddCommand(newVibeConversationCmd())
	cmd.AddCommand(newVibeTransitionCmd())

	return cmd
}

func newVibeClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Classify a single message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			c := a.vibes.Classify(cmd.Context(), args[0])
			if outputFormat == "json" {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (score %.2f, confidence %.2f, %s)\n",
				vibeLabel(c.Vibe), c.Score, c.Confidence, c.Method)
			return nil
		},
	}
}

func newVibeConversationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conversation [message...]",
		Short: "Aggregate the vibe of a conversation",
		Long: `Aggregate the vibe of a conversation, oldest message first.

Messages come from the arguments, or one per stdin line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			messages := args
			if len(messages) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						messages = append(messages, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
			}

			a, err := loadApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			conv := a.vibes.Conversation(cmd.Context(), messages)
			if outputFormat == "json" {
				return writeJSON(cmd.OutOrStdout(), conv)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (strength %.2f over %d of the last %d messages)\n",
				vibeLabel(conv.Vibe), conv.Strength, len(conv.Window), a.vibes.WindowSize())
			if verbose {
				for _, v := range models.AllVibes() {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %-9s %.3f\n", v, conv.Scores[v])
				}
			}
			return nil
		},
	}
}

func newVibeTransitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transition <current-vibe> <text>",
		Short: "Check whether a message changes the current vibe",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, ok := models.ParseVibe(args[0])
			if !ok {
				return fmt.Errorf("unknown vibe %q (want one of %v)", args[0], models.AllVibes())
			}

			a, err := loadApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			tr := a.vibes.Transition(cmd.Context(), current, args[1])
			if outputFormat == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
					"transition": tr != nil,
					"detail":     tr,
				})
			}
			if tr == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No transition, still %s\n", vibeLabel(current))
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s → %s (strength %.2f)\n",
				vibeLabel(tr.From), vibeLabel(tr.To), tr.Strength)
			return nil
		},
	}
}
