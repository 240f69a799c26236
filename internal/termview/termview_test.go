// SPDX-License-Identifier: MIT
package termview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/huekit/internal/themes"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

func generate(t *testing.T) *themes.GeneratedTheme {
	t.Helper()
	th, err := themes.Generate(themes.Request{Primary: "#3b82f6"})
	require.NoError(t, err)
	return th
}

func TestSwatchesPlain(t *testing.T) {
	th := generate(t)
	out := Swatches(th.Tokens, false)

	assert.NotContains(t, out, "\x1b[")
	assert.True(t, strings.HasPrefix(out, "light:\n"))
	assert.Contains(t, out, "dark:\n")
	assert.Equal(t, 2*tokens.Count, strings.Count(out, "oklch("))
	assert.Contains(t, out, "sidebar-ring")
}

func TestSwatchesColor(t *testing.T) {
	th := generate(t)
	out := Swatches(th.Tokens, true)

	assert.Equal(t, 2*tokens.Count, strings.Count(out, "Aa"))
	assert.Contains(t, out, "primary-foreground")
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, tokens.PrimaryForeground, labelFor(tokens.Primary))
	assert.Equal(t, tokens.Background, labelFor(tokens.Foreground))
	assert.Equal(t, tokens.Foreground, labelFor(tokens.Ring))
}

func TestContrastMarkdown(t *testing.T) {
	th := generate(t)
	md := ContrastMarkdown(th.ContrastWarnings)

	assert.Contains(t, md, "# Contrast report")
	assert.Contains(t, md, "22 of 22 pairs pass AA.")
	assert.Contains(t, md, "| light | primary-foreground | primary |")
	// header, separator and one row per entry
	assert.Equal(t, 2+len(th.ContrastWarnings), strings.Count(md, "\n|"))
}

func TestRenderMarkdown(t *testing.T) {
	md := "# Title\n\nbody text\n"

	plain, err := RenderMarkdown(md, false, 80)
	require.NoError(t, err)
	assert.Equal(t, md, plain)

	styled, err := RenderMarkdown(md, true, 80)
	require.NoError(t, err)
	assert.Contains(t, styled, "body text")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
