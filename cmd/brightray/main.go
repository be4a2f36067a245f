// ABOUTME: CLI entry point wiring up the brightray subcommands.
// ABOUTME: Handles global config/logging flags shared by all commands.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/adityavs/brightray/internal/appinfo"
	"github.com/adityavs/brightray/internal/config"
	"github.com/adityavs/brightray/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "brightray",
	Short: "Desktop notifications with native click and close events.",
	Long: `brightray sends desktop notifications through the platform's native
notification service. On Linux it keeps a persistent D-Bus connection in a
background daemon so click and close events reach the sender; elsewhere it
falls back to fire-and-forget delivery.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelFromEnv()
		if verbose {
			level = slog.LevelDebug
		}
		logging.Setup(level)
	},
	SilenceUsage: true,
}

func init() {
	if v := appinfo.GetApplicationVersion(); v != "" {
		rootCmd.Version = v
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig resolves the effective configuration for the current invocation.
// An explicit --config path that fails to load falls back to defaults with a
// warning rather than aborting the command.
func loadConfig() *config.Config {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			logging.Warn("failed to load config %s: %v", configPath, err)
			return config.DefaultConfig()
		}
		return cfg
	}
	return config.LoadDefault()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
