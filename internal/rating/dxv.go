package rating

import (
	"strconv"
	"strings"
)

// DXVScale is the top of the DXV rating scale.
const DXVScale = 100.0

// DXVPercentile converts a 0-100 DXV rating string into a percentile in
// [0,1]. Blank or non-numeric ratings return nil.
func DXVPercentile(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	p := v / DXVScale
	return &p
}

// DXVSwatch is PercentileColor applied to a DXV rating string.
func DXVSwatch(raw string) Swatch {
	return PercentileColor(DXVPercentile(raw))
}
