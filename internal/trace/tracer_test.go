package trace

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/schematic"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/colorutil"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/geometry"
)

var (
	red  = colorutil.RGB{R: 1, G: 0, B: 0}
	blue = colorutil.RGB{R: 0, G: 0, B: 1}
)

func seg(x1, y1, x2, y2 float64, c colorutil.RGB) schematic.LineSegment {
	return schematic.NewLineSegment(0, geometry.NewPoint2D(x1, y1), geometry.NewPoint2D(x2, y2), c, 1)
}

func newTestTracer() *Tracer {
	return NewTracer(DefaultOptions())
}

func TestTracePathsEmpty(t *testing.T) {
	assert.Empty(t, newTestTracer().TracePaths(nil))
}

func TestTracePathsChain(t *testing.T) {
	segments := []schematic.LineSegment{
		seg(0, 0, 100, 0, red),
		seg(100, 0, 100, 50, red),
		seg(100, 50, 200, 50, red),
	}

	paths := newTestTracer().TracePaths(segments)
	require.Len(t, paths, 1)
	assert.Len(t, paths[0].Segments, 3)
	assert.Equal(t, schematic.ColorRed, paths[0].Color)
}

// A closed square of same-colored segments traces to exactly one path with
// all four members: the visited guard terminates the cycle.
func TestTracePathsClosedSquare(t *testing.T) {
	segments := []schematic.LineSegment{
		seg(0, 0, 100, 0, red),
		seg(100, 0, 100, 100, red),
		seg(100, 100, 0, 100, red),
		seg(0, 100, 0, 0, red),
	}

	paths := newTestTracer().TracePaths(segments)
	require.Len(t, paths, 1)
	assert.Len(t, paths[0].Segments, 4)
}

// Color guards traversal: touching segments of different colors stay in
// separate paths.
func TestTracePathsColorGuard(t *testing.T) {
	segments := []schematic.LineSegment{
		seg(0, 0, 100, 0, red),
		seg(100, 0, 200, 0, blue),
		seg(200, 0, 300, 0, blue),
	}

	paths := newTestTracer().TracePaths(segments)
	require.Len(t, paths, 2)
	for _, p := range paths {
		for _, s := range p.Segments {
			assert.Equal(t, p.Color, s.Color)
		}
	}
}

func TestTracePathsToleranceBridging(t *testing.T) {
	// Endpoints 4.9 apart bridge at tolerance 5.
	near := []schematic.LineSegment{
		seg(0, 0, 100, 0, red),
		seg(104.9, 0, 200, 0, red),
	}
	paths := newTestTracer().TracePaths(near)
	assert.Len(t, paths, 1)

	// At 5.1 apart they stay separate.
	far := []schematic.LineSegment{
		seg(0, 0, 100, 0, red),
		seg(105.1, 0, 200, 0, red),
	}
	paths = newTestTracer().TracePaths(far)
	assert.Len(t, paths, 2)
}

func TestTracePathsSelfLoop(t *testing.T) {
	loop := schematic.LineSegment{
		Page:  0,
		Start: geometry.NewPoint2D(50, 50),
		End:   geometry.NewPoint2D(50, 50),
		Color: schematic.ColorRed,
	}
	paths := newTestTracer().TracePaths([]schematic.LineSegment{loop})
	require.Len(t, paths, 1)
	assert.Len(t, paths[0].Segments, 1)
}

// Neighbor lists are sorted after graph construction, so traversal order and
// the segment order inside each traced path depend only on the input.
func TestTracePathsDeterministicOrder(t *testing.T) {
	segments := []schematic.LineSegment{
		seg(0, 0, 100, 0, red),
		seg(100, 0, 200, 0, red),
		seg(100, 0, 100, 100, red),
		seg(100, 0, 100, -100, red),
		seg(200, 0, 300, 0, red),
	}

	paths := newTestTracer().TracePaths(segments)
	require.Len(t, paths, 1)
	require.Len(t, paths[0].Segments, 5)
	assert.Equal(t, segments, paths[0].Segments)

	for i := 0; i < 20; i++ {
		assert.Equal(t, paths, newTestTracer().TracePaths(segments))
	}
}

func TestFindJunctions(t *testing.T) {
	tracer := newTestTracer()

	// Three segments meeting at (100, 100) form one junction.
	tee := []schematic.LineSegment{
		seg(0, 100, 100, 100, red),
		seg(100, 100, 200, 100, red),
		seg(100, 100, 100, 0, red),
	}
	junctions := tracer.FindJunctions(tee)
	require.Len(t, junctions, 1)
	assert.Equal(t, 3, junctions[0].Incident)
	assert.True(t, junctions[0].Point.CloseTo(geometry.NewPoint2D(100, 100), 0.2))

	// Two segments meeting form no junction.
	elbow := []schematic.LineSegment{
		seg(0, 100, 100, 100, red),
		seg(100, 100, 100, 0, red),
	}
	assert.Empty(t, tracer.FindJunctions(elbow))
}

// Three segments meet within the point resolution but their endpoints land
// in adjacent 0.1-unit buckets. The meeting still counts as one junction
// with all three incidents.
func TestFindJunctionsAcrossBucketBoundary(t *testing.T) {
	segments := []schematic.LineSegment{
		seg(0, 0, 9.98, 0, red),
		seg(10.02, 0, 20, 0, red),
		seg(10.05, 0.03, 10, 10, red),
	}

	junctions := newTestTracer().FindJunctions(segments)
	require.Len(t, junctions, 1)
	assert.Equal(t, 3, junctions[0].Incident)
	assert.True(t, junctions[0].Point.CloseTo(geometry.NewPoint2D(10, 0), 0.2))
}

// Every segment lands in exactly one traced path, whatever the geometry.
func TestTracePartitionProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	genSegments := gen.SliceOfN(12, gen.Float64Range(0, 500)).Map(func(vals []float64) []schematic.LineSegment {
		var segs []schematic.LineSegment
		for i := 0; i+3 < len(vals); i += 4 {
			color := red
			if i%8 == 4 {
				color = blue
			}
			s := seg(vals[i], vals[i+1], vals[i+2], vals[i+3], color)
			if s.Length > 0 {
				segs = append(segs, s)
			}
		}
		return segs
	})

	properties.Property("paths partition the input", prop.ForAll(
		func(segs []schematic.LineSegment) bool {
			paths := newTestTracer().TracePaths(segs)
			total := 0
			for _, p := range paths {
				total += len(p.Segments)
				for _, s := range p.Segments {
					if s.Color != p.Color {
						return false
					}
				}
			}
			return total == len(segs)
		},
		genSegments,
	))

	properties.TestingRun(t)
}
