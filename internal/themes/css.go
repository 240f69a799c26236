// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/thatcatcamp/huekit/internal/oklch"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

// DefaultRadius is the corner radius in rem when none is given.
const DefaultRadius = 0.625

// PreviewSelector scopes PreviewCSS when no selector is given.
const PreviewSelector = "data-theme-preview"

// Stylesheet is a serialized theme split into its three blocks.
type Stylesheet struct {
	ThemeInline string `json:"themeInline"`
	Root        string `json:"root"`
	Dark        string `json:"dark"`
}

// String joins the blocks into one stylesheet.
func (s Stylesheet) String() string {
	return s.ThemeInline + "\n\n" + s.Root + "\n\n" + s.Dark + "\n"
}

// RadiusRem clamps v to [0,1]. NaN yields DefaultRadius.
func RadiusRem(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultRadius
	}
	return math.Max(0, math.Min(1, v))
}

// SerializeCSS renders the alias block, the light values under :root and
// the dark values under .dark, one declaration per token in canonical order.
func SerializeCSS(tt ThemeTokens, radius float64) Stylesheet {
	var inline strings.Builder
	inline.WriteString("@theme inline {\n")
	for _, t := range tokens.All() {
		fmt.Fprintf(&inline, "  --color-%s: var(--%s);\n", t, t)
	}
	inline.WriteString("  --radius-sm: calc(var(--radius) - 4px);\n")
	inline.WriteString("  --radius-md: calc(var(--radius) - 2px);\n")
	inline.WriteString("  --radius-lg: var(--radius);\n")
	inline.WriteString("  --radius-xl: calc(var(--radius) + 4px);\n")
	inline.WriteString("}")

	var root strings.Builder
	root.WriteString(":root {\n")
	fmt.Fprintf(&root, "  --radius: %srem;\n", strconv.FormatFloat(RadiusRem(radius), 'f', -1, 64))
	writeDeclarations(&root, tt.Light, false)
	root.WriteString("}")

	var dark strings.Builder
	dark.WriteString(".dark {\n")
	writeDeclarations(&dark, tt.Dark, false)
	dark.WriteString("}")

	return Stylesheet{
		ThemeInline: inline.String(),
		Root:        root.String(),
		Dark:        dark.String(),
	}
}

// PreviewCSS renders both modes under a scoped attribute selector so a
// preview can live next to the applied theme.
func PreviewCSS(tt ThemeTokens, selector string) string {
	if selector == "" {
		selector = PreviewSelector
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] {\n", selector)
	writeDeclarations(&b, tt.Light, true)
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "[%s].dark {\n", selector)
	writeDeclarations(&b, tt.Dark, true)
	b.WriteString("}\n")
	return b.String()
}

func writeDeclarations(b *strings.Builder, s tokens.Set, alias bool) {
	s.Each(func(t tokens.Token, c oklch.Color) {
		fmt.Fprintf(b, "  --%s: %s;\n", t, oklch.Format(c))
		if alias {
			fmt.Fprintf(b, "  --color-%s: var(--%s);\n", t, t)
		}
	})
}

// BaseStyles styles plain HTML elements with the token variables, for pages
// that link a generated theme without a CSS framework.
const BaseStyles = `/* Base element styles */
body {
  background-color: var(--background);
  color: var(--foreground);
  transition: background-color 0.2s, color 0.2s;
}

a {
  color: var(--primary);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

/* Button styles */
button, .btn {
  background-color: var(--primary);
  color: var(--primary-foreground);
  border: none;
  padding: 8px 16px;
  border-radius: var(--radius);
  cursor: pointer;
  transition: opacity 0.2s;
}

button:hover, .btn:hover {
  opacity: 0.9;
}

.btn-secondary {
  background-color: var(--secondary);
  color: var(--secondary-foreground);
}

.btn-destructive {
  background-color: var(--destructive);
  color: var(--destructive-foreground);
}

/* Card/surface styles */
.card, .surface {
  background-color: var(--card);
  color: var(--card-foreground);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  padding: 16px;
}

hr, .divider {
  border: none;
  border-top: 1px solid var(--border);
}

input, textarea, select {
  border: 1px solid var(--input);
  background-color: var(--background);
  color: var(--foreground);
  padding: 8px;
  border-radius: calc(var(--radius) - 2px);
}

input:focus, textarea:focus, select:focus {
  outline: 2px solid var(--ring);
  outline-offset: 1px;
}

.text-muted, .muted {
  background-color: var(--muted);
  color: var(--muted-foreground);
}
`
