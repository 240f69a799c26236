// SPDX-License-Identifier: MIT

// Package termview renders themes and contrast reports for the terminal.
package termview

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/thatcatcamp/huekit/internal/oklch"
	"github.com/thatcatcamp/huekit/internal/themes"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1)
	nameStyle   = lipgloss.NewStyle().Width(28)
	chipStyle   = lipgloss.NewStyle().Width(8).Align(lipgloss.Center)
)

// Swatches lists every token of both modes. With color set each row gets a
// chip painted in the token's color, labelled in its paired foreground.
func Swatches(tt themes.ThemeTokens, color bool) string {
	var b strings.Builder
	for _, mode := range tokens.Modes {
		set := tt.Mode(mode)
		if color {
			b.WriteString(headerStyle.Render(string(mode)))
		} else {
			b.WriteString(string(mode) + ":")
		}
		b.WriteString("\n")

		set.Each(func(t tokens.Token, c oklch.Color) {
			if color {
				chip := chipStyle.
					Background(lipgloss.Color(oklch.ToHex(c))).
					Foreground(lipgloss.Color(oklch.ToHex(set.Get(labelFor(t))))).
					Render("Aa")
				fmt.Fprintf(&b, "%s %s %s\n", chip, nameStyle.Render(t.String()), oklch.Format(c))
				return
			}
			fmt.Fprintf(&b, "  %-28s %s %s\n", t.String(), oklch.ToHex(c), oklch.Format(c))
		})
	}
	return b.String()
}

// labelFor picks the token a chip's text is drawn in: the paired
// foreground for a checked background, plain foreground otherwise.
func labelFor(t tokens.Token) tokens.Token {
	for _, p := range tokens.Pairs() {
		if p.Background == t {
			return p.Foreground
		}
	}
	if t == tokens.Foreground {
		return tokens.Background
	}
	return tokens.Foreground
}

// ContrastMarkdown formats validation entries as a markdown table
func ContrastMarkdown(ws []themes.ContrastWarning) string {
	var b strings.Builder
	failing := len(themes.Failing(ws))
	fmt.Fprintf(&b, "# Contrast report\n\n%d of %d pairs pass AA.\n\n", len(ws)-failing, len(ws))
	b.WriteString("| Mode | Foreground | Background | Ratio | AA | AAA | APCA |\n")
	b.WriteString("|---|---|---|---:|:---:|:---:|---:|\n")
	for _, w := range ws {
		fmt.Fprintf(&b, "| %s | %s | %s | %.2f | %s | %s | %.1f |\n",
			w.Mode, w.Foreground, w.Background, w.Result.Ratio,
			mark(w.Result.AA), mark(w.Result.AAA), w.Result.APCA)
	}
	return b.String()
}

func mark(ok bool) string {
	if ok {
		return "yes"
	}
	return "**no**"
}

// RenderMarkdown renders md with glamour when styled, otherwise returns it
// unchanged. width 0 disables wrapping.
func RenderMarkdown(md string, styled bool, width int) (string, error) {
	if !styled {
		return md, nil
	}
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return renderer.Render(md)
}
