// ABOUTME: The sounds subcommand: lists available notification sounds and previews them.
// ABOUTME: Discovers bundled and system sounds, supports JSON output and playback.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adityavs/brightray/internal/audio"
	"github.com/adityavs/brightray/internal/sounds"
	"github.com/spf13/cobra"
)

var (
	soundsPlay   string
	soundsVolume float64
	soundsJSON   bool
)

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "List available notification sounds.",
	Long: `List notification sounds bundled with the application and those
provided by the operating system. Use --play to preview one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if soundsVolume < 0.0 || soundsVolume > 1.0 {
			return fmt.Errorf("volume must be between 0.0 and 1.0 (got %.2f)", soundsVolume)
		}

		cfg := loadConfig()
		available := sounds.Discover(sounds.DiscoverOptions{
			Root:           appRoot(),
			IncludeBuiltIn: true,
			IncludeSystem:  true,
		})

		if soundsPlay != "" {
			s, found := sounds.FindByName(soundsPlay, available)
			if !found {
				fmt.Fprintf(os.Stderr, "Sound %q not found. Available sounds:\n", soundsPlay)
				for _, s := range available {
					fmt.Fprintf(os.Stderr, "  %s\n", s.Name)
				}
				return fmt.Errorf("sound %q not found", soundsPlay)
			}

			fmt.Printf("Playing: %s (volume: %d%%)\n", s.Name, int(soundsVolume*100))
			player, err := audio.NewPlayer(cfg.Desktop.AudioDevice, soundsVolume)
			if err != nil {
				return fmt.Errorf("create audio player: %w", err)
			}
			defer player.Close()

			if err := player.Play(s.Path); err != nil {
				return fmt.Errorf("play sound: %w", err)
			}
			fmt.Println("Playback completed")
			return nil
		}

		if soundsJSON {
			if available == nil {
				available = []sounds.SoundInfo{}
			}
			data, err := json.MarshalIndent(available, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		printSoundList(available)
		return nil
	},
}

func printSoundList(available []sounds.SoundInfo) {
	if len(available) == 0 {
		fmt.Println("No sounds found.")
		return
	}

	var builtIn, system []sounds.SoundInfo
	for _, s := range available {
		switch s.Source {
		case "builtin":
			builtIn = append(builtIn, s)
		case "system":
			system = append(system, s)
		}
	}

	if len(builtIn) > 0 {
		fmt.Println("Bundled sounds:")
		fmt.Println()
		for _, s := range builtIn {
			desc := ""
			if s.Description != "" {
				desc = " - " + s.Description
			}
			fmt.Printf("  %s.%s%s\n", s.Name, s.Format, desc)
		}
	}

	if len(system) > 0 {
		fmt.Println()
		fmt.Println("System sounds:")
		fmt.Println()
		for _, s := range system {
			desc := ""
			if s.Description != "" {
				desc = " - " + s.Description
			}
			fmt.Printf("  %s.%s%s\n", s.Name, s.Format, desc)
		}
	}

	fmt.Println()
	fmt.Println("To preview a sound:")
	fmt.Println("  brightray sounds --play <name>")
}

// appRoot locates the application root for bundled sound discovery.
func appRoot() string {
	exe, err := os.Executable()
	if err == nil {
		exeDir := filepath.Dir(exe)
		if filepath.Base(exeDir) == "bin" {
			return filepath.Dir(exeDir)
		}
		return filepath.Dir(exeDir)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

func init() {
	soundsCmd.Flags().StringVar(&soundsPlay, "play", "", "play a sound by name")
	soundsCmd.Flags().Float64Var(&soundsVolume, "volume", 0.3, "volume level for playback (0.0 to 1.0)")
	soundsCmd.Flags().BoolVar(&soundsJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(soundsCmd)
}
