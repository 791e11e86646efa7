package schematic

import (
	"math"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/colorutil"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/geometry"
)

// orientRatio is the dominance ratio for calling a segment horizontal or
// vertical: one axis delta must exceed three times the other.
const orientRatio = 3.0

// LineSegment is a single straight stroke on a page. It is immutable once
// constructed; the derived properties are computed at construction time.
type LineSegment struct {
	Page   int              `json:"page"`
	Start  geometry.Point2D `json:"start"`
	End    geometry.Point2D `json:"end"`
	Sample colorutil.RGB    `json:"color"`
	Width  float64          `json:"width"`

	Color        WireColor `json:"wire_color"`
	Length       float64   `json:"length"`
	IsHorizontal bool      `json:"is_horizontal"`
	IsVertical   bool      `json:"is_vertical"`
}

// NewLineSegment builds a segment and derives its length, orientation and
// wire-color bucket.
func NewLineSegment(page int, start, end geometry.Point2D, sample colorutil.RGB, width float64) LineSegment {
	dx := math.Abs(end.X - start.X)
	dy := math.Abs(end.Y - start.Y)
	return LineSegment{
		Page:         page,
		Start:        start,
		End:          end,
		Sample:       sample,
		Width:        width,
		Color:        ClassifyColor(sample),
		Length:       start.Distance(end),
		IsHorizontal: dx > orientRatio*dy,
		IsVertical:   dy > orientRatio*dx,
	}
}

// Midpoint returns the segment's midpoint.
func (s LineSegment) Midpoint() geometry.Point2D {
	return geometry.Point2D{
		X: (s.Start.X + s.End.X) / 2,
		Y: (s.Start.Y + s.End.Y) / 2,
	}
}

// Bounds returns the segment's axis-aligned bounding box.
func (s LineSegment) Bounds() geometry.Rect {
	return geometry.BoundingBox([]geometry.Point2D{s.Start, s.End})
}
