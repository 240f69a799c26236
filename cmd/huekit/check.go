// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/huekit/internal/contrast"
	"github.com/thatcatcamp/huekit/internal/oklch"
)

var checkModel string

var checkCmd = &cobra.Command{
	Use:   "check <foreground> <background>",
	Short: "Check the contrast of two colors",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		fg, err := oklch.ParseColor(args[0])
		if err != nil {
			fail(fmt.Errorf("foreground: %w", err))
		}
		bg, err := oklch.ParseColor(args[1])
		if err != nil {
			fail(fmt.Errorf("background: %w", err))
		}
		model, err := contrast.ParseModel(checkModel)
		if err != nil {
			fail(err)
		}

		res := contrast.Check(model, fg.Color, bg.Color)
		fmt.Printf("Foreground: %s (%s)\n", oklch.Format(fg.Color), fg.Hex)
		fmt.Printf("Background: %s (%s)\n", oklch.Format(bg.Color), bg.Hex)
		fmt.Printf("Ratio (%s): %.2f:1\n", model.Name(), res.Ratio)
		fmt.Printf("AA:   %s\n", passFail(res.AA))
		fmt.Printf("AAA:  %s\n", passFail(res.AAA))
		fmt.Printf("APCA: Lc %.1f\n", res.APCA)
	},
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func init() {
	checkCmd.Flags().StringVar(&checkModel, "model", "oklch", "contrast model: oklch or wcag")
	rootCmd.AddCommand(checkCmd)
}
