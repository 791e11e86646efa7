package schematic

import (
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/geometry"
)

// WirePath is one continuous logical conductor route: a maximal set of
// same-colored, transitively connected wire segments. Paths are produced by
// the tracer and read-only afterwards.
type WirePath struct {
	ID       string        `json:"id"`
	Page     int           `json:"page"`
	Color    WireColor     `json:"color"`
	Segments []LineSegment `json:"segments"`
}

// Points returns the polyline formed by chaining each segment's start and end
// points in traversal order, with consecutive duplicates collapsed.
func (p WirePath) Points() []geometry.Point2D {
	var points []geometry.Point2D
	for _, seg := range p.Segments {
		for _, pt := range [2]geometry.Point2D{seg.Start, seg.End} {
			if len(points) > 0 && points[len(points)-1].CloseTo(pt, geometry.PointTolerance) {
				continue
			}
			points = append(points, pt)
		}
	}
	return points
}

// TotalLength returns the summed length of all segments in the path.
func (p WirePath) TotalLength() float64 {
	var total float64
	for _, seg := range p.Segments {
		total += seg.Length
	}
	return total
}

// VoltageType returns the voltage class inferred from the path's color.
func (p WirePath) VoltageType() VoltageType {
	return VoltageForColor(p.Color)
}

// Bounds returns the union of the segments' bounding boxes.
func (p WirePath) Bounds() geometry.Rect {
	if len(p.Segments) == 0 {
		return geometry.Rect{}
	}
	bounds := p.Segments[0].Bounds()
	for _, seg := range p.Segments[1:] {
		bounds = bounds.Union(seg.Bounds())
	}
	return bounds
}

// Junction is a point where three or more wire segments meet, indicating a
// branch or tap.
type Junction struct {
	Page     int              `json:"page"`
	Point    geometry.Point2D `json:"point"`
	Incident int              `json:"incident"`
}
