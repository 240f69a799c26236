// SPDX-License-Identifier: MIT
package oklch

import (
	"math"
	"strconv"
	"strings"
)

// Format renders c as "oklch(L C H)" or "oklch(L C H / A)". Every channel is
// rounded to three decimals so that Parse(Format(c)) is stable.
func Format(c Color) string {
	c = c.Clamped()

	h := round3(c.H)
	if h >= 360 {
		h = 0
	}

	var b strings.Builder
	b.WriteString("oklch(")
	b.WriteString(formatNumber(round3(c.L)))
	b.WriteByte(' ')
	b.WriteString(formatNumber(round3(c.C)))
	b.WriteByte(' ')
	b.WriteString(formatNumber(h))
	if c.Alpha != nil {
		b.WriteString(" / ")
		b.WriteString(formatNumber(round3(clampFloat(*c.Alpha, 0, 1))))
	}
	b.WriteByte(')')
	return b.String()
}

// String implements fmt.Stringer using Format.
func (c Color) String() string {
	return Format(c)
}

// ToHex projects c to an sRGB hex string for display. Colors that cannot be
// projected come back as #000000.
func ToHex(c Color) string {
	col := c.SRGB()
	if math.IsNaN(col.R) || math.IsNaN(col.G) || math.IsNaN(col.B) {
		return "#000000"
	}
	return col.Hex()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func formatNumber(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
