package geometry

import "math"

// PointTolerance is the resolution at which two points count as the same
// physical location. Endpoint grouping buckets coordinates at this
// resolution instead of comparing floats directly.
const PointTolerance = 0.1

// GridKey identifies a spatial bucket. Points whose coordinates round to the
// same bucket at a given resolution share a key, which gives tolerance-aware
// point grouping without relying on float equality.
type GridKey struct {
	Col int
	Row int
}

// KeyFor returns the bucket key for a point at the given resolution.
// Resolution must be positive.
func KeyFor(p Point2D, resolution float64) GridKey {
	return GridKey{
		Col: int(math.Floor(p.X / resolution)),
		Row: int(math.Floor(p.Y / resolution)),
	}
}

// NeighborKeys returns the 3x3 block of bucket keys centered on k. Two points
// within resolution units of each other always land in the same or adjacent
// buckets, so scanning this block finds every near-coincident candidate.
func (k GridKey) NeighborKeys() [9]GridKey {
	var keys [9]GridKey
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			keys[i] = GridKey{Col: k.Col + dc, Row: k.Row + dr}
			i++
		}
	}
	return keys
}

// GridIndex buckets points by GridKey for neighbor queries.
type GridIndex struct {
	resolution float64
	buckets    map[GridKey][]Point2D
}

// NewGridIndex creates an empty index with the given bucket resolution.
func NewGridIndex(resolution float64) *GridIndex {
	return &GridIndex{
		resolution: resolution,
		buckets:    make(map[GridKey][]Point2D),
	}
}

// Add inserts a point into its bucket.
func (g *GridIndex) Add(p Point2D) {
	key := KeyFor(p, g.resolution)
	g.buckets[key] = append(g.buckets[key], p)
}

// Near returns all indexed points within maxDist of p. maxDist must not
// exceed the index resolution, otherwise candidates can be missed.
func (g *GridIndex) Near(p Point2D, maxDist float64) []Point2D {
	var result []Point2D
	for _, key := range KeyFor(p, g.resolution).NeighborKeys() {
		for _, q := range g.buckets[key] {
			if p.Distance(q) <= maxDist {
				result = append(result, q)
			}
		}
	}
	return result
}
