// ABOUTME: Root command, global flags, and command registration
// ABOUTME: Global flags control verbosity, output format, config file, and user
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harper/vibe-memory/internal/util"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
	configFile   string
	userFlag     string
)

const banner = `
██╗   ██╗██╗██████╗ ███████╗███╗   ███╗███████╗███╗   ███╗
██║   ██║██║██╔══██╗██╔════╝████╗ ████║██╔════╝████╗ ████║
██║   ██║██║██████╔╝█████╗  ██╔████╔██║█████╗  ██╔████╔██║
╚██╗ ██╔╝██║██╔══██╗██╔══╝  ██║╚██╔╝██║██╔══╝  ██║╚██╔╝██║
 ╚████╔╝ ██║██████╔╝███████╗██║ ╚═╝ ██║███████╗██║ ╚═╝ ██║
  ╚═══╝  ╚═╝╚═════╝ ╚══════╝╚═╝     ╚═╝╚══════╝╚═╝     ╚═╝`

// NewRootCmd creates the root command with all subcommands registered
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vibemem",
		Short: "Semantic memory and conversation vibes",
		Long: banner + `

Save chat messages as searchable memories and read the vibe of a
conversation. Works fully offline; set USE_NETWORK_EMBEDDINGS=true
with an API key for higher quality embeddings.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet cannot be used together")
			}
			switch {
			case verbose:
				util.SetLogLevel("debug")
			case quiet:
				util.SetLogOutput(io.Discard)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, json")
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML, TOML, or JSON config file")
	cmd.PersistentFlags().StringVar(&userFlag, "user", "", "User id (overrides MEMORY_USER_ID)")

	cmd.AddCommand(
		NewAddCmd(),
		NewSearchCmd(),
		NewListCmd(),
		NewShowCmd(),
		NewForgetCmd(),
		NewExportCmd(),
		NewEmbedCmd(),
		NewVibeCmd(),
		NewMCPCmd(),
		NewSyncCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
