// SPDX-License-Identifier: MIT
package contrast

import (
	"math"

	"github.com/thatcatcamp/huekit/internal/oklch"
)

// APCA-W3 0.0.98G-4g constants.
const (
	apcaNormBG    = 0.56
	apcaNormTXT   = 0.57
	apcaRevTXT    = 0.62
	apcaRevBG     = 0.65
	apcaBlkThrs   = 0.022
	apcaBlkClmp   = 1.414
	apcaScale     = 1.14
	apcaLoOffset  = 0.027
	apcaDeltaYMin = 0.0005
	apcaLoClip    = 0.1
	apcaMainTRC   = 2.4
	apcaRedCoef   = 0.2126729
	apcaGreenCoef = 0.7151522
	apcaBlueCoef  = 0.0721750
)

// APCA returns the signed lightness contrast Lc of text fg on background bg.
// Positive values are dark text on light backgrounds.
func APCA(fg, bg oklch.Color) float64 {
	txtY := screenLuminance(fg)
	bgY := screenLuminance(bg)

	txtY = softClamp(txtY)
	bgY = softClamp(bgY)

	if math.Abs(bgY-txtY) < apcaDeltaYMin {
		return 0
	}

	var out float64
	if bgY > txtY {
		sapc := (math.Pow(bgY, apcaNormBG) - math.Pow(txtY, apcaNormTXT)) * apcaScale
		if sapc >= apcaLoClip {
			out = sapc - apcaLoOffset
		}
	} else {
		sapc := (math.Pow(bgY, apcaRevBG) - math.Pow(txtY, apcaRevTXT)) * apcaScale
		if sapc <= -apcaLoClip {
			out = sapc + apcaLoOffset
		}
	}
	return out * 100
}

// screenLuminance is APCA's estimated screen luminance from 8-bit sRGB.
func screenLuminance(c oklch.Color) float64 {
	r, g, b := c.SRGB().RGB255()
	lin := func(v uint8) float64 {
		return math.Pow(float64(v)/255, apcaMainTRC)
	}
	return apcaRedCoef*lin(r) + apcaGreenCoef*lin(g) + apcaBlueCoef*lin(b)
}

func softClamp(y float64) float64 {
	if y > apcaBlkThrs {
		return y
	}
	return y + math.Pow(apcaBlkThrs-y, apcaBlkClmp)
}
