// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/themes"
)

var harmoniesCmd = &cobra.Command{
	Use:   "harmonies",
	Short: "List harmony rules",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tNAME\tDESCRIPTION")
		for _, info := range harmony.All() {
			name := info.Name
			if info.Decorative {
				name += " *"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.Type, name, info.Description)
		}
		w.Flush()
		fmt.Println("\n* decorative")
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in presets",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPRIMARY\tSECONDARY\tHARMONY")
		for _, p := range themes.ListPresets() {
			secondary := p.Secondary
			if secondary == "" {
				secondary = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Primary, secondary, p.Harmony)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(harmoniesCmd)
	rootCmd.AddCommand(presetsCmd)
}
