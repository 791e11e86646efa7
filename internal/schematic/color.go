package schematic

import (
	"math"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/colorutil"
)

// HSV thresholds for the achromatic buckets.
const (
	blackValueMax = 0.15
	whiteValueMin = 0.85
	graySatMax    = 0.15
	grayValueMin  = 0.3
	hueSatMin     = 0.25
	brownValueMax = 0.6
)

// ClassifyColor maps a color sample to its WireColor bucket. The function is
// total: every sample resolves to exactly one bucket, unmatched combinations
// end up as ColorOther.
//
// The rule order matters and must not be rearranged. In particular the
// saturated brown band overlaps the red and orange bands and is checked after
// them, so saturated low-hue samples resolve to red or orange; brown arises
// mostly from the RGB fallback. Voltage inference depends on this behavior.
func ClassifyColor(sample colorutil.RGB) WireColor {
	h, s, v := colorutil.RGBToHSV(sample)

	if v < blackValueMax {
		return ColorBlack
	}
	if v > whiteValueMin && s < graySatMax {
		return ColorWhite
	}
	if s < graySatMax && v > grayValueMin && v <= whiteValueMin {
		return ColorGray
	}

	if s >= hueSatMin {
		switch {
		case h < 20 || h > 340:
			return ColorRed
		case h >= 20 && h < 45:
			return ColorOrange
		case h >= 45 && h < 80:
			if sample.G > 0.5 && sample.R > 0.5 {
				return ColorYellowGreen
			}
			return ColorOther
		case h >= 80 && h < 160:
			return ColorGreen
		case h >= 200 && h < 260:
			return ColorBlue
		case h >= 15 && h < 40 && v < brownValueMax:
			return ColorBrown
		}
	}

	return classifyByRatio(sample)
}

// classifyByRatio is the fallback for samples the HSV rules did not settle:
// channel-dominance tests catch saturated primaries that slipped through the
// hue bands, mid-range red-biased samples read as brown.
func classifyByRatio(sample colorutil.RGB) WireColor {
	r, g, b := sample.R, sample.G, sample.B

	switch {
	case r > 0.5 && g < 0.4 && b < 0.4 && r > 1.5*math.Max(g, b):
		return ColorRed
	case b > 0.5 && r < 0.4 && g < 0.4 && b > 1.5*math.Max(r, g):
		return ColorBlue
	case g > 0.5 && r < 0.4 && b < 0.4 && g > 1.5*math.Max(r, b):
		return ColorGreen
	case r > 0.3 && r <= 0.6 && g < 0.75*r && b < 0.6*r:
		return ColorBrown
	case r < 0.2 && g < 0.2 && b < 0.2:
		return ColorBlack
	default:
		return ColorOther
	}
}
