// Package route synthesizes plausible routed point sequences between two
// coordinates when no traced geometry exists, e.g. when rendering a logical
// connection that only appears in a connection table. All generators are pure
// functions; coincident endpoints still yield a valid sequence.
package route

import (
	"math"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/geometry"
)

// Strategy selects a routing policy.
type Strategy int

const (
	// StrategyManhattan splits on the dominant axis midpoint, producing
	// exactly two right-angle bends.
	StrategyManhattan Strategy = iota
	// StrategyLPath turns exactly once at a corner point.
	StrategyLPath
	// StrategyStraight connects the endpoints directly.
	StrategyStraight
	// StrategySmooth samples a quadratic Bezier bulge, for diagonal
	// connections where an orthogonal route would look unnatural.
	StrategySmooth
)

func (s Strategy) String() string {
	switch s {
	case StrategyManhattan:
		return "manhattan"
	case StrategyLPath:
		return "l-path"
	case StrategyStraight:
		return "straight"
	case StrategySmooth:
		return "smooth"
	default:
		return "unknown"
	}
}

// Manhattan returns a 4-point orthogonal route from start to end. The route
// moves halfway along the dominant axis, crosses over on the other axis, then
// finishes, giving two right-angle bends.
func Manhattan(start, end geometry.Point2D) []geometry.Point2D {
	dx := end.X - start.X
	dy := end.Y - start.Y

	if math.Abs(dx) > math.Abs(dy) {
		midX := start.X + dx/2
		return []geometry.Point2D{
			start,
			{X: midX, Y: start.Y},
			{X: midX, Y: end.Y},
			end,
		}
	}
	midY := start.Y + dy/2
	return []geometry.Point2D{
		start,
		{X: start.X, Y: midY},
		{X: end.X, Y: midY},
		end,
	}
}

// LPath returns a 3-point route with a single corner. With horizontalFirst
// the route runs along x to the target column, then down/up to the target;
// otherwise it runs along y first.
func LPath(start, end geometry.Point2D, horizontalFirst bool) []geometry.Point2D {
	var corner geometry.Point2D
	if horizontalFirst {
		corner = geometry.Point2D{X: end.X, Y: start.Y}
	} else {
		corner = geometry.Point2D{X: start.X, Y: end.Y}
	}
	return []geometry.Point2D{start, corner, end}
}

// Straight returns the 2-point direct route.
func Straight(start, end geometry.Point2D) []geometry.Point2D {
	return []geometry.Point2D{start, end}
}

// smoothBulge is the perpendicular control-point offset as a fraction of the
// start-end distance.
const smoothBulge = 0.1

// Smooth returns segments+1 points sampled along a quadratic Bezier whose
// control point is the midpoint pushed perpendicular to the start-end vector
// by 10% of its length. The first and last points are exactly start and end.
// segments values below 1 are treated as 1.
func Smooth(start, end geometry.Point2D, segments int) []geometry.Point2D {
	if segments < 1 {
		segments = 1
	}

	mid := start.Add(end).Scale(0.5)
	length := start.Distance(end)

	control := mid
	if length > 0 {
		// Unit perpendicular of the start-end vector.
		delta := end.Sub(start)
		perp := geometry.Point2D{X: -delta.Y / length, Y: delta.X / length}
		control = mid.Add(perp.Scale(length * smoothBulge))
	}

	points := make([]geometry.Point2D, segments+1)
	points[0] = start
	for i := 1; i < segments; i++ {
		t := float64(i) / float64(segments)
		u := 1 - t
		points[i] = start.Scale(u * u).
			Add(control.Scale(2 * u * t)).
			Add(end.Scale(t * t))
	}
	points[segments] = end
	return points
}

// Generate dispatches on strategy. Smooth uses the given segment count; the
// other strategies ignore it.
func Generate(strategy Strategy, start, end geometry.Point2D, segments int) []geometry.Point2D {
	switch strategy {
	case StrategyManhattan:
		return Manhattan(start, end)
	case StrategyLPath:
		return LPath(start, end, true)
	case StrategySmooth:
		return Smooth(start, end, segments)
	default:
		return Straight(start, end)
	}
}
