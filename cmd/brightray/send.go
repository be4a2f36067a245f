// ABOUTME: The send subcommand: delivers a single desktop notification.
// ABOUTME: Platform-specific delivery lives in send_linux.go / send_other.go.
package main

import (
	"github.com/adityavs/brightray/internal/logging"
	"github.com/spf13/cobra"
)

var (
	sendBody    string
	sendIcon    string
	sendTimeout int
	sendSound   bool
)

var sendCmd = &cobra.Command{
	Use:   "send <title> [body]",
	Short: "Send a desktop notification.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		body := sendBody
		if len(args) == 2 {
			body = args[1]
		}

		cfg := loadConfig()
		if !cfg.IsDesktopEnabled() {
			logging.Debug("desktop notifications disabled in config, skipping")
			return nil
		}

		icon := sendIcon
		if icon == "" {
			icon = cfg.App.Icon
		}
		timeout := sendTimeout
		if timeout == 0 {
			timeout = cfg.Desktop.TimeoutSeconds
		}
		sound := sendSound || cfg.Desktop.Sound

		return deliver(title, body, icon, timeout, sound, cfg)
	},
}

func init() {
	sendCmd.Flags().StringVarP(&sendBody, "body", "b", "", "notification body text")
	sendCmd.Flags().StringVarP(&sendIcon, "icon", "i", "", "path to icon image")
	sendCmd.Flags().IntVarP(&sendTimeout, "timeout", "t", 0, "timeout in seconds (0 = server default)")
	sendCmd.Flags().BoolVarP(&sendSound, "sound", "s", false, "play the configured notification sound")
	rootCmd.AddCommand(sendCmd)
}
