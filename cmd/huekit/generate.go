// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/thatcatcamp/huekit/internal/themes"
	"github.com/thatcatcamp/huekit/internal/termview"
)

var (
	generateFlags  themeFlags
	generateFormat string
	generatePreset string
	generateOutput string
	generateReport bool
	generateBase   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [primary]",
	Short: "Generate a theme",
	Long: `Generate light and dark tokens from a primary color (or a preset) and
write them as css, json, tokens (DTCG), yaml, svg or terminal swatches.`,
	Example: `  huekit generate '#3b82f6' --harmony triadic
  huekit generate --preset indigo --format tokens -o tokens.json
  huekit generate 'oklch(0.6 0.2 30)' --format swatches --report`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail(err)
		}
		if len(args) == 1 {
			generateFlags.primary = args[0]
		}

		r, err := generateFlags.resolve(cmd)
		if err != nil {
			fail(err)
		}

		req := themes.Request{
			Primary:   generateFlags.primary,
			Secondary: generateFlags.secondary,
			Harmony:   r.harmony,
			Options:   r.opts,
		}
		if generatePreset != "" {
			preset := themes.GetPreset(generatePreset)
			if preset == nil {
				fail(fmt.Errorf("unknown preset %q (see 'huekit presets')", generatePreset))
			}
			req = preset.Request(r.opts)
		}
		if req.Primary == "" {
			fail(fmt.Errorf("a primary color or --preset is required"))
		}

		theme, err := themes.Generate(req)
		if err != nil {
			fail(err)
		}

		if generateOutput != "" {
			err = writeThemeFile(generateOutput, theme, generateFormat, r.radius, generateBase)
		} else {
			err = writeTheme(os.Stdout, theme, generateFormat, r.radius, generateBase)
		}
		if err != nil {
			fail(err)
		}

		if generateReport {
			printReport(theme.ContrastWarnings)
		} else if failing := themes.Failing(theme.ContrastWarnings); len(failing) > 0 {
			fmt.Fprintf(os.Stderr, "Warning: %d pair(s) below AA, rerun with --report for details\n", len(failing))
		}
	},
}

// writeThemeFile renders theme into path. The file is closed before any
// error is returned.
func writeThemeFile(path string, theme *themes.GeneratedTheme, format string, radius float64, base bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeTheme(f, theme, format, radius, base); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// writeTheme renders theme in format to w
func writeTheme(w io.Writer, theme *themes.GeneratedTheme, format string, radius float64, base bool) error {
	switch format {
	case "css", "":
		css := themes.SerializeCSS(theme.Tokens, radius).String()
		if base {
			css += "\n" + themes.BaseStyles
		}
		_, err := io.WriteString(w, css)
		return err
	case "preview":
		_, err := io.WriteString(w, themes.PreviewCSS(theme.Tokens, ""))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(theme)
	case "tokens":
		data, err := themes.DesignTokens(theme.Tokens)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case "yaml":
		data, err := themes.YAML(theme.Tokens)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "svg":
		svg, err := themes.SwatchSVG(theme.Tokens)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, svg)
		return err
	case "swatches":
		_, err := io.WriteString(w, termview.Swatches(theme.Tokens, termview.IsTerminal(w)))
		return err
	default:
		return fmt.Errorf("unknown format %q (want css, preview, json, tokens, yaml, svg or swatches)", format)
	}
}

// printReport renders the contrast table to stdout, styled on a terminal
func printReport(ws []themes.ContrastWarning) {
	out, err := termview.RenderMarkdown(termview.ContrastMarkdown(ws), termview.IsTerminal(os.Stdout), 100)
	if err != nil {
		fail(err)
	}
	fmt.Print(out)
}

func init() {
	generateFlags.register(generateCmd.Flags())
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "css", "output format: css, preview, json, tokens, yaml, svg, swatches")
	generateCmd.Flags().StringVar(&generatePreset, "preset", "", "start from a built-in preset")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write to file instead of stdout")
	generateCmd.Flags().BoolVar(&generateReport, "report", false, "print the contrast report")
	generateCmd.Flags().BoolVar(&generateBase, "base", false, "append base element styles to css output")
	rootCmd.AddCommand(generateCmd)
}
