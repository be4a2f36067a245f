//go:build linux

// ABOUTME: The status and stop subcommands for the Linux notification daemon.
package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/adityavs/brightray/internal/daemon"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the notification daemon's status.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !daemon.IsDaemonRunning() {
			fmt.Println("Daemon is not running.")
			return nil
		}

		client, err := daemon.NewClient()
		if err != nil {
			return fmt.Errorf("connect to daemon: %w", err)
		}
		ping, err := client.Ping()
		if err != nil {
			return fmt.Errorf("ping daemon: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "PID\t%d\n", daemon.GetDaemonPID())
		fmt.Fprintf(w, "Version\t%s\n", ping.Version)
		fmt.Fprintf(w, "Uptime\t%s\n", (time.Duration(ping.Uptime) * time.Second).String())
		fmt.Fprintf(w, "Live notifications\t%d\n", ping.Live)
		return w.Flush()
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the notification daemon.",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := daemon.StopDaemon()
		if errors.Is(err, daemon.ErrDaemonNotRunning) {
			fmt.Println("Daemon is not running.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println("Daemon stopped.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd, stopCmd)
}
