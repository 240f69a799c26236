// SPDX-License-Identifier: MIT
package oklch

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnparseable is returned (wrapped) for any input Parse cannot read.
var ErrUnparseable = errors.New("unparseable color")

var (
	hexPattern  = regexp.MustCompile(`^#([0-9a-f]{3,4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	funcPattern = regexp.MustCompile(`^([a-z]+)\((.*)\)$`)
)

// Parsed is a user-supplied color after parsing. Hex is display-only.
type Parsed struct {
	Color Color  `json:"oklch"`
	Hex   string `json:"hex"`
}

// ParseColor parses input and attaches its hex projection.
func ParseColor(input string) (Parsed, error) {
	c, err := Parse(input)
	if err != nil {
		return Parsed{}, err
	}
	return Parsed{Color: c, Hex: ToHex(c)}, nil
}

// Parse reads hex (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb()/rgba(),
// hsl()/hsla() and oklch() syntaxes, comma or space separated, and returns
// the color in OKLCH clamped to the working range.
func Parse(input string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty input", ErrUnparseable)
	}

	if strings.HasPrefix(s, "#") {
		c, err := parseHex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q: %v", ErrUnparseable, input, err)
		}
		return c, nil
	}

	m := funcPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, fmt.Errorf("%w %q", ErrUnparseable, input)
	}

	args, alpha, err := splitArgs(m[2])
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrUnparseable, input, err)
	}

	var c Color
	switch m[1] {
	case "rgb", "rgba":
		c, err = parseRGB(args)
	case "hsl", "hsla":
		c, err = parseHSL(args)
	case "oklch":
		c, err = parseOKLCH(args)
	default:
		err = fmt.Errorf("unsupported function %s()", m[1])
	}
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrUnparseable, input, err)
	}

	if alpha != "" {
		a, pct, err := parseNumber(alpha)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q: alpha: %v", ErrUnparseable, input, err)
		}
		if pct {
			a /= 100
		}
		c = c.WithAlpha(clampFloat(a, 0, 1))
	}

	return c.Clamped(), nil
}

// FromSRGB converts a go-colorful sRGB color to OKLCH.
func FromSRGB(col colorful.Color) Color {
	l, c, h := col.OkLch()
	return Color{L: l, C: c, H: h}.Clamped()
}

// SRGB projects c onto the sRGB cube, clipping out-of-gamut channels.
func (c Color) SRGB() colorful.Color {
	c = c.Clamped()
	return colorful.OkLch(c.L, c.C, c.H).Clamped()
}

func parseHex(s string) (Color, error) {
	if !hexPattern.MatchString(s) {
		return Color{}, fmt.Errorf("malformed hex")
	}

	digits := s[1:]
	var alpha string
	switch len(digits) {
	case 4:
		alpha = strings.Repeat(digits[3:], 2)
		digits = digits[:3]
	case 8:
		alpha = digits[6:]
		digits = digits[:6]
	}

	col, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, err
	}
	c := FromSRGB(col)

	if alpha != "" {
		a, err := strconv.ParseUint(alpha, 16, 8)
		if err != nil {
			return Color{}, err
		}
		c = c.WithAlpha(float64(a) / 255)
	}
	return c, nil
}

// splitArgs separates the channel arguments from an optional "/ alpha"
// suffix. Legacy four-argument comma syntax is treated as alpha too.
func splitArgs(body string) ([]string, string, error) {
	var alpha string
	if i := strings.Index(body, "/"); i >= 0 {
		alpha = strings.TrimSpace(body[i+1:])
		body = body[:i]
		if alpha == "" {
			return nil, "", fmt.Errorf("missing alpha after /")
		}
	}

	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if alpha == "" && len(fields) == 4 {
		alpha = fields[3]
		fields = fields[:3]
	}
	if len(fields) != 3 {
		return nil, "", fmt.Errorf("want 3 channels, got %d", len(fields))
	}
	return fields, alpha, nil
}

func parseRGB(args []string) (Color, error) {
	var ch [3]float64
	for i, a := range args {
		v, pct, err := parseNumber(a)
		if err != nil {
			return Color{}, err
		}
		if pct {
			v /= 100
		} else {
			v /= 255
		}
		ch[i] = clampFloat(v, 0, 1)
	}
	return FromSRGB(colorful.Color{R: ch[0], G: ch[1], B: ch[2]}), nil
}

func parseHSL(args []string) (Color, error) {
	h, err := parseAngle(args[0])
	if err != nil {
		return Color{}, err
	}
	s, _, err := parseNumber(args[1])
	if err != nil {
		return Color{}, err
	}
	l, _, err := parseNumber(args[2])
	if err != nil {
		return Color{}, err
	}
	col := colorful.Hsl(NormalizeHue(h), clampFloat(s/100, 0, 1), clampFloat(l/100, 0, 1))
	return FromSRGB(col), nil
}

func parseOKLCH(args []string) (Color, error) {
	l, pct, err := parseNumber(args[0])
	if err != nil {
		return Color{}, err
	}
	if pct {
		l /= 100
	}
	c, pct, err := parseNumber(args[1])
	if err != nil {
		return Color{}, err
	}
	if pct {
		c = c / 100 * MaxChroma
	}
	h, err := parseAngle(args[2])
	if err != nil {
		return Color{}, err
	}
	return Color{L: l, C: c, H: h}, nil
}

// parseNumber reads a CSS number or percentage. "none" reads as zero.
func parseNumber(tok string) (float64, bool, error) {
	if tok == "none" {
		return 0, false, nil
	}
	pct := strings.HasSuffix(tok, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
	if err != nil {
		return 0, false, fmt.Errorf("bad number %q", tok)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("bad number %q", tok)
	}
	return v, pct, nil
}

func parseAngle(tok string) (float64, error) {
	if tok == "none" {
		return 0, nil
	}
	scale := 1.0
	switch {
	case strings.HasSuffix(tok, "deg"):
		tok = strings.TrimSuffix(tok, "deg")
	case strings.HasSuffix(tok, "grad"):
		tok, scale = strings.TrimSuffix(tok, "grad"), 0.9
	case strings.HasSuffix(tok, "rad"):
		tok, scale = strings.TrimSuffix(tok, "rad"), 180/math.Pi
	case strings.HasSuffix(tok, "turn"):
		tok, scale = strings.TrimSuffix(tok, "turn"), 360
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("bad angle %q", tok)
	}
	return v * scale, nil
}
