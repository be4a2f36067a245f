//go:build !linux

// ABOUTME: Stubs for daemon-related subcommands on non-Linux platforms.
package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errLinuxOnly = errors.New("the notification daemon is only available on Linux")

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the notification daemon (Linux only).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return errLinuxOnly
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status (Linux only).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return errLinuxOnly
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the notification daemon (Linux only).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return errLinuxOnly
	},
}

func init() {
	rootCmd.AddCommand(daemonCmd, statusCmd, stopCmd)
}
