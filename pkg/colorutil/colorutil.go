// Package colorutil provides shared color utilities for the schematic analyzer.
package colorutil

import (
	"math"
)

// RGB holds a color sample as three channels in [0,1]. Samples are passed by
// value; nothing owns them.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// NewRGB creates an RGB sample, clamping each channel to [0,1].
func NewRGB(r, g, b float64) RGB {
	return RGB{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

// FromBytes converts 0-255 channel values to an RGB sample.
func FromBytes(r, g, b uint8) RGB {
	return RGB{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RGBToHSV converts an RGB sample to HSV with hue in degrees (0-360) and
// saturation/value in [0,1].
func RGBToHSV(c RGB) (h, s, v float64) {
	maxC := math.Max(c.R, math.Max(c.G, c.B))
	minC := math.Min(c.R, math.Min(c.G, c.B))
	diff := maxC - minC

	v = maxC

	if maxC == 0 {
		s = 0
	} else {
		s = diff / maxC
	}

	if diff == 0 {
		h = 0
	} else if maxC == c.R {
		h = 60 * math.Mod((c.G-c.B)/diff, 6)
	} else if maxC == c.G {
		h = 60 * ((c.B-c.R)/diff + 2)
	} else {
		h = 60 * ((c.R-c.G)/diff + 4)
	}

	if h < 0 {
		h += 360
	}

	return h, s, v
}
