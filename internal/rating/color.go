// Package rating turns ratings and percentiles into display values.
package rating

import (
	"fmt"
	"math"
	"strconv"
)

// RGB is an 8-bit color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// CSS renders the color as an rgb() triple.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders the color as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Ramp anchors.
var (
	LowColor  = RGB{R: 58, G: 141, B: 255} // #3A8DFF
	MidColor  = RGB{R: 255, G: 255, B: 255}
	HighColor = RGB{R: 255, G: 145, B: 0} // #FF9100
)

// UnknownLabel is shown instead of a percentage when no value is known.
const UnknownLabel = "-"

// Swatch is a percentile ready for display.
type Swatch struct {
	Percentile float64 `json:"percentile"`
	Color      RGB     `json:"color"`
	CSS        string  `json:"css"`
	Label      string  `json:"label"`
	Unknown    bool    `json:"unknown"`
}

// PercentileColor maps a percentile in [0,1] onto low -> white -> high.
// Values outside the range are clamped. A nil percentile is drawn as the
// midpoint and flagged Unknown.
func PercentileColor(p *float64) Swatch {
	value := 0.5
	unknown := p == nil || math.IsNaN(*p)
	if !unknown {
		value = math.Max(0, math.Min(1, *p))
	}

	var c RGB
	if value < 0.5 {
		c = lerp(LowColor, MidColor, value*2)
	} else {
		c = lerp(MidColor, HighColor, (value-0.5)*2)
	}

	label := UnknownLabel
	if !unknown {
		label = strconv.Itoa(int(math.Round(value * 100)))
	}
	return Swatch{
		Percentile: value,
		Color:      c,
		CSS:        c.CSS(),
		Label:      label,
		Unknown:    unknown,
	}
}

func lerp(from, to RGB, factor float64) RGB {
	return RGB{
		R: lerpChannel(from.R, to.R, factor),
		G: lerpChannel(from.G, to.G, factor),
		B: lerpChannel(from.B, to.B, factor),
	}
}

func lerpChannel(from, to uint8, factor float64) uint8 {
	return uint8(math.Round(float64(from) + (float64(to)-float64(from))*factor))
}
