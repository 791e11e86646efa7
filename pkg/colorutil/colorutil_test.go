package colorutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name    string
		rgb     RGB
		h, s, v float64
	}{
		{"red", RGB{R: 1, G: 0, B: 0}, 0, 1, 1},
		{"green", RGB{R: 0, G: 1, B: 0}, 120, 1, 1},
		{"blue", RGB{R: 0, G: 0, B: 1}, 240, 1, 1},
		{"white", RGB{R: 1, G: 1, B: 1}, 0, 0, 1},
		{"black", RGB{R: 0, G: 0, B: 0}, 0, 0, 0},
		{"gray", RGB{R: 0.5, G: 0.5, B: 0.5}, 0, 0, 0.5},
		{"yellow", RGB{R: 1, G: 1, B: 0}, 60, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := RGBToHSV(tt.rgb)
			assert.InDelta(t, tt.h, h, 1e-9)
			assert.InDelta(t, tt.s, s, 1e-9)
			assert.InDelta(t, tt.v, v, 1e-9)
		})
	}
}

func TestRGBToHSVHueWraps(t *testing.T) {
	// Magenta-ish: hue sits just below 360, never negative.
	h, _, _ := RGBToHSV(RGB{R: 1, G: 0, B: 0.1})
	assert.Greater(t, h, 340.0)
	assert.Less(t, h, 360.0)
}

func TestNewRGBClamps(t *testing.T) {
	c := NewRGB(-0.5, 0.5, 1.5)
	assert.Equal(t, RGB{R: 0, G: 0.5, B: 1}, c)
}

func TestFromBytes(t *testing.T) {
	c := FromBytes(255, 0, 128)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)
	assert.InDelta(t, 0.502, c.B, 1e-3)
}
