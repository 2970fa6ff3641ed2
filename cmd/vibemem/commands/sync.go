// ABOUTME: Sync commands for Charm cloud synchronization
// ABOUTME: Status, manual sync, key listing, and local wipe for the charm backend
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/vibe-memory/internal/charm"
	"github.com/harper/vibe-memory/internal/config"
)

// NewSyncCmd creates the sync command group
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Manage Charm cloud synchronization",
		Long: `Manage synchronization with Charm cloud.

Used with MEMORY_BACKEND=charm. Memories sync across devices linked
to the same Charm account through SSH keys.`,
	}

	cmd.AddCommand(newSyncStatusCmd())
	cmd.AddCommand(newSyncNowCmd())
	cmd.AddCommand(newSyncWipeCmd())
	cmd.AddCommand(newSyncKeysCmd())
	cmd.AddCommand(newSyncUnlinkCmd())

	return cmd
}

// openCharm connects using the configured host and database name
func openCharm() (*charm.Client, *config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	client, err := charm.NewClient(&charm.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.CharmAutoSync,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Charm: %w", err)
	}
	return client, cfg, nil
}

func newSyncStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status and connection info",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := openCharm()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			out := cmd.OutOrStdout()
			id, err := client.ID()
			if err != nil {
				_, _ = fmt.Fprintln(out, "Status: Not connected")
				_, _ = fmt.Fprintln(out, "Run 'vibemem sync keys' to check your SSH keys")
				return nil
			}

			user := cfg.UserID
			if userFlag != "" {
				user = userFlag
			}
			keys, err := client.ListKeys(charm.UserPrefix(user))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(out, "Status: Connected")
			_, _ = fmt.Fprintf(out, "Charm ID: %s\n", id)
			_, _ = fmt.Fprintf(out, "Host: %s\n", cfg.CharmHost)
			_, _ = fmt.Fprintf(out, "Database: %s\n", cfg.CharmDBName)
			_, _ = fmt.Fprintf(out, "Records for %s: %d\n", user, len(keys))
			return nil
		},
	}
}

func newSyncNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Force immediate sync with Charm cloud",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := openCharm()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if !quiet {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Syncing...")
			}
			if err := client.Sync(); err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Sync complete")
			return nil
		},
	}
}

func newSyncWipeCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Wipe all local data (nuclear option)",
		Long: `Completely wipe all local Charm data.

WARNING: This deletes all locally cached data. Your cloud data
remains intact and will be re-synced on next access.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !confirm {
				_, _ = fmt.Fprintln(out, "This will wipe ALL local data!")
				_, _ = fmt.Fprintln(out, "Run with --confirm to proceed")
				return nil
			}

			client, _, err := openCharm()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if err := client.Reset(); err != nil {
				return fmt.Errorf("failed to wipe data: %w", err)
			}
			_, _ = fmt.Fprintln(out, "Local data wiped successfully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the wipe operation")

	return cmd
}

func newSyncKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List authorized SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := openCharm()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			keys, err := client.GetAuthorizedKeys()
			if err != nil {
				return fmt.Errorf("failed to get authorized keys: %w", err)
			}

			out := cmd.OutOrStdout()
			if keys == "" {
				_, _ = fmt.Fprintln(out, "No authorized keys found")
				return nil
			}
			_, _ = fmt.Fprintln(out, "Authorized SSH keys:")
			_, _ = fmt.Fprintln(out, keys)
			return nil
		},
	}
}

func newSyncUnlinkCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "unlink <ssh-key>",
		Short: "Remove an authorized SSH key from your Charm account",
		Long: `Remove an authorized SSH key from your Charm account.

The device holding that key stops syncing. Copy the key exactly as
printed by 'vibemem sync keys'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !confirm {
				_, _ = fmt.Fprintln(out, "This will unlink the key from your Charm account!")
				_, _ = fmt.Fprintln(out, "Run with --confirm to proceed")
				return nil
			}

			client, _, err := openCharm()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if err := client.UnlinkKey(args[0]); err != nil {
				return fmt.Errorf("failed to unlink key: %w", err)
			}
			_, _ = fmt.Fprintln(out, "Key unlinked")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm unlinking the key")

	return cmd
}
