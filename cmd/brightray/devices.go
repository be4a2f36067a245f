// ABOUTME: The devices subcommand: lists audio playback devices.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/adityavs/brightray/internal/audio"
	"github.com/spf13/cobra"
)

var devicesJSON bool

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List audio playback devices.",
	RunE: func(cmd *cobra.Command, args []string) error {
		devices, err := audio.ListDevices()
		if err != nil {
			return fmt.Errorf("list playback devices: %w", err)
		}

		if devicesJSON {
			data, err := json.MarshalIndent(devices, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		if len(devices) == 0 {
			fmt.Println("No playback devices found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tDEFAULT")
		for _, d := range devices {
			def := ""
			if d.IsDefault {
				def = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\n", d.Name, def)
		}
		return w.Flush()
	},
}

func init() {
	devicesCmd.Flags().BoolVar(&devicesJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(devicesCmd)
}
