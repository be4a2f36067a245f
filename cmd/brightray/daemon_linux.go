//go:build linux

// ABOUTME: The daemon subcommand: runs the notification server in the foreground.
// ABOUTME: Normally spawned on-demand by send; can also be run manually for debugging.
package main

import (
	"fmt"

	"github.com/adityavs/brightray/internal/daemon"
	"github.com/spf13/cobra"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the notification daemon in the foreground.",
	Long: `Run the notification daemon. It listens on a Unix socket, holds a
persistent D-Bus connection to the notification service, and shuts itself
down after a configurable idle period.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		server, err := daemon.NewServer(cfg)
		if err != nil {
			return fmt.Errorf("create daemon server: %w", err)
		}
		return server.Run()
	},
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}
