// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"math"
	"strconv"

	"github.com/beevik/etree"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/thatcatcamp/huekit/internal/oklch"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

// dtcgColor is a design-token color value in the object form of the DTCG
// color module.
type dtcgColor struct {
	ColorSpace string    `json:"colorSpace"`
	Components []float64 `json:"components"`
	Alpha      float64   `json:"alpha"`
	Hex        string    `json:"hex"`
}

type dtcgToken struct {
	Type  string    `json:"$type"`
	Value dtcgColor `json:"$value"`
}

// DesignTokens renders both modes as a DTCG token document grouped by mode.
func DesignTokens(tt ThemeTokens) ([]byte, error) {
	doc := make(map[string]map[string]dtcgToken, len(tokens.Modes))
	for _, mode := range tokens.Modes {
		group := make(map[string]dtcgToken, tokens.Count)
		tt.Mode(mode).Each(func(t tokens.Token, c oklch.Color) {
			group[t.String()] = dtcgToken{Type: "color", Value: dtcgValue(c)}
		})
		doc[string(mode)] = group
	}
	return json.MarshalIndent(doc, "", "  ")
}

func dtcgValue(c oklch.Color) dtcgColor {
	alpha := 1.0
	if c.Alpha != nil {
		alpha = *c.Alpha
	}
	return dtcgColor{
		ColorSpace: "oklch",
		Components: []float64{round3(c.L), round3(c.C), round3(c.H)},
		Alpha:      alpha,
		Hex:        oklch.ToHex(c),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// YAML renders both modes as a two-level mapping of oklch() strings, keeping
// canonical token order.
func YAML(tt ThemeTokens) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, mode := range tokens.Modes {
		group := &yaml.Node{Kind: yaml.MappingNode}
		tt.Mode(mode).Each(func(t tokens.Token, c oklch.Color) {
			group.Content = append(group.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: t.String()},
				&yaml.Node{Kind: yaml.ScalarNode, Value: oklch.Format(c)},
			)
		})
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(mode)},
			group,
		)
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
	return yaml.Marshal(doc)
}

const (
	swatchSize    = 48
	swatchGap     = 8
	swatchColumns = 8
	labelHeight   = 24
)

// SwatchSVG renders a swatch sheet: one labelled grid per mode, one square
// per token with its value in a <title>.
func SwatchSVG(tt ThemeTokens) (string, error) {
	rows := (tokens.Count + swatchColumns - 1) / swatchColumns
	gridHeight := labelHeight + rows*(swatchSize+swatchGap)
	width := swatchColumns*(swatchSize+swatchGap) + swatchGap
	height := len(tokens.Modes)*gridHeight + swatchGap

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", strconv.Itoa(width))
	svg.CreateAttr("height", strconv.Itoa(height))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", width, height))

	for i, mode := range tokens.Modes {
		top := i * gridHeight
		g := svg.CreateElement("g")
		g.CreateAttr("id", string(mode))

		label := g.CreateElement("text")
		label.CreateAttr("x", strconv.Itoa(swatchGap))
		label.CreateAttr("y", strconv.Itoa(top+labelHeight-6))
		label.CreateAttr("font-family", "sans-serif")
		label.CreateAttr("font-size", "14")
		label.SetText(string(mode))

		tt.Mode(mode).Each(func(t tokens.Token, c oklch.Color) {
			col := int(t) % swatchColumns
			row := int(t) / swatchColumns
			rect := g.CreateElement("rect")
			rect.CreateAttr("x", strconv.Itoa(swatchGap+col*(swatchSize+swatchGap)))
			rect.CreateAttr("y", strconv.Itoa(top+labelHeight+row*(swatchSize+swatchGap)))
			rect.CreateAttr("width", strconv.Itoa(swatchSize))
			rect.CreateAttr("height", strconv.Itoa(swatchSize))
			rect.CreateAttr("rx", "6")
			rect.CreateAttr("fill", oklch.ToHex(c))
			rect.CreateAttr("data-token", t.String())
			rect.CreateElement("title").SetText(t.String() + ": " + oklch.Format(c))
		})
	}

	doc.Indent(2)
	return doc.WriteToString()
}
