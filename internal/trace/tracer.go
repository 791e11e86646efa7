// Package trace reconstructs continuous wire routes from classified wire
// segments. It builds a connectivity graph over segment endpoints (exact
// matches plus tolerance-bridged near misses) and extracts connected
// components and junction points.
package trace

import (
	"fmt"
	"sort"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/schematic"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/geometry"
)

// Options configures path tracing.
type Options struct {
	// Tolerance is the maximum endpoint gap, in page units, bridged when
	// connecting segments. Bridging covers small rendering gaps without
	// conflating genuinely distant geometry.
	Tolerance float64 `yaml:"tolerance"`
}

// DefaultOptions returns tracing defaults.
func DefaultOptions() Options {
	return Options{Tolerance: 5}
}

// Tracer extracts wire paths and junctions from segment populations.
type Tracer struct {
	tolerance float64
}

// NewTracer creates a tracer with the given options.
func NewTracer(opts Options) *Tracer {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultOptions().Tolerance
	}
	return &Tracer{tolerance: tol}
}

// endpointNode is one distinct endpoint location: the segments touching it
// and a representative coordinate.
type endpointNode struct {
	point    geometry.Point2D
	segments []int
}

// buildEndpointIndex groups segment endpoints at the point-equality
// resolution. Each bucket becomes one node keyed by its grid cell.
func buildEndpointIndex(segments []schematic.LineSegment) map[geometry.GridKey]*endpointNode {
	index := make(map[geometry.GridKey]*endpointNode)
	for i, seg := range segments {
		for _, pt := range [2]geometry.Point2D{seg.Start, seg.End} {
			key := geometry.KeyFor(pt, geometry.PointTolerance)
			node, ok := index[key]
			if !ok {
				node = &endpointNode{point: pt}
				index[key] = node
			}
			node.segments = append(node.segments, i)
		}
	}
	return index
}

// buildAdjacency records segment adjacencies: all segments sharing an exact
// endpoint, plus all segments touching two distinct endpoints whose distance
// is positive and within the tolerance.
func (t *Tracer) buildAdjacency(segments []schematic.LineSegment, index map[geometry.GridKey]*endpointNode) map[int][]int {
	adj := make(map[int][]int, len(segments))
	addEdge := func(a, b int) {
		if a == b {
			return
		}
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	// Exact: every pair of segments sharing an endpoint bucket.
	for _, node := range index {
		for i := 0; i < len(node.segments); i++ {
			for j := i + 1; j < len(node.segments); j++ {
				addEdge(node.segments[i], node.segments[j])
			}
		}
	}

	// Tolerance bridging: index the endpoint nodes at the tolerance
	// resolution and link segments across near-coincident pairs.
	coarse := geometry.NewGridIndex(t.tolerance)
	for _, node := range index {
		coarse.Add(node.point)
	}
	for _, node := range index {
		for _, q := range coarse.Near(node.point, t.tolerance) {
			if node.point.Distance(q) <= 0 {
				continue
			}
			other := index[geometry.KeyFor(q, geometry.PointTolerance)]
			for _, a := range node.segments {
				for _, b := range other.segments {
					addEdge(a, b)
				}
			}
		}
	}

	// Edges accumulate in map-iteration order and pairs sharing two
	// endpoints appear twice. Sort and dedupe so traversal order is a
	// function of the input alone.
	for k, list := range adj {
		sort.Ints(list)
		dedup := list[:0]
		for i, v := range list {
			if i == 0 || v != dedup[len(dedup)-1] {
				dedup = append(dedup, v)
			}
		}
		adj[k] = dedup
	}

	return adj
}

// TracePaths groups segments into connected components and returns one
// WirePath per component. Traversal only crosses an edge when both segments
// share the same classified color, so geometrically close wires of different
// voltage classes never merge into one route. Every input segment appears in
// exactly one path; isolated segments become singleton paths.
func (t *Tracer) TracePaths(segments []schematic.LineSegment) []schematic.WirePath {
	if len(segments) == 0 {
		return nil
	}

	index := buildEndpointIndex(segments)
	adj := t.buildAdjacency(segments, index)

	visited := make([]bool, len(segments))
	var paths []schematic.WirePath

	for start := range segments {
		if visited[start] {
			continue
		}
		color := segments[start].Color

		// BFS with a visited guard; terminates even when segments
		// form closed loops.
		var member []int
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			member = append(member, cur)

			for _, next := range adj[cur] {
				if visited[next] || segments[next].Color != color {
					continue
				}
				visited[next] = true
				queue = append(queue, next)
			}
		}

		path := schematic.WirePath{
			ID:    fmt.Sprintf("wire-%03d", len(paths)+1),
			Page:  segments[start].Page,
			Color: color,
		}
		for _, idx := range member {
			path.Segments = append(path.Segments, segments[idx])
		}
		paths = append(paths, path)
	}

	return paths
}

// FindJunctions returns every point where three or more segments actually
// meet. Endpoints within the point-equality resolution count as one meeting
// location even when they straddle a bucket boundary; tolerance-bridged links
// are connectivity aids, not physical taps.
func (t *Tracer) FindJunctions(segments []schematic.LineSegment) []schematic.Junction {
	index := buildEndpointIndex(segments)

	keys := make([]geometry.GridKey, 0, len(index))
	for k := range index {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Row != keys[j].Row {
			return keys[i].Row < keys[j].Row
		}
		return keys[i].Col < keys[j].Col
	})

	merged := make(map[geometry.GridKey]bool, len(index))
	var junctions []schematic.Junction
	for _, key := range keys {
		if merged[key] {
			continue
		}

		// Pull in every node reachable through chains of endpoints
		// closer than the point resolution, so a meeting point split
		// across adjacent buckets still reads as one location.
		cluster := []geometry.GridKey{key}
		merged[key] = true
		for i := 0; i < len(cluster); i++ {
			node := index[cluster[i]]
			for _, nk := range cluster[i].NeighborKeys() {
				other, ok := index[nk]
				if !ok || merged[nk] {
					continue
				}
				if node.point.Distance(other.point) <= geometry.PointTolerance {
					merged[nk] = true
					cluster = append(cluster, nk)
				}
			}
		}

		distinct := make(map[int]bool)
		var points []geometry.Point2D
		for _, ck := range cluster {
			node := index[ck]
			points = append(points, node.point)
			for _, s := range node.segments {
				distinct[s] = true
			}
		}
		if len(distinct) < 3 {
			continue
		}
		junctions = append(junctions, schematic.Junction{
			Page:     segments[index[cluster[0]].segments[0]].Page,
			Point:    geometry.Centroid(points),
			Incident: len(distinct),
		})
	}

	sort.Slice(junctions, func(i, j int) bool {
		if junctions[i].Point.Y != junctions[j].Point.Y {
			return junctions[i].Point.Y < junctions[j].Point.Y
		}
		return junctions[i].Point.X < junctions[j].Point.X
	})
	return junctions
}
