package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyForGroupsNearbyPoints(t *testing.T) {
	a := NewPoint2D(100.00, 50.00)
	b := NewPoint2D(100.04, 50.09)
	c := NewPoint2D(101.00, 50.00)

	assert.Equal(t, KeyFor(a, PointTolerance), KeyFor(b, PointTolerance))
	assert.NotEqual(t, KeyFor(a, PointTolerance), KeyFor(c, PointTolerance))
}

func TestNeighborKeysCoverNearPoints(t *testing.T) {
	// Points within one resolution of each other always share a key in the
	// 3x3 neighborhood.
	a := NewPoint2D(9.99, 0)
	b := NewPoint2D(10.01, 0)

	ka := KeyFor(a, 5)
	kb := KeyFor(b, 5)
	assert.NotEqual(t, ka, kb)

	found := false
	for _, k := range ka.NeighborKeys() {
		if k == kb {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGridIndexNear(t *testing.T) {
	idx := NewGridIndex(5)
	idx.Add(NewPoint2D(0, 0))
	idx.Add(NewPoint2D(3, 4))
	idx.Add(NewPoint2D(100, 100))

	near := idx.Near(NewPoint2D(0, 0), 5)
	assert.Len(t, near, 2)

	near = idx.Near(NewPoint2D(100, 100), 1)
	assert.Len(t, near, 1)
}

func TestPolylineLength(t *testing.T) {
	points := []Point2D{{0, 0}, {100, 0}, {100, 50}}
	assert.InDelta(t, 150.0, PolylineLength(points), 1e-9)
	assert.Zero(t, PolylineLength(nil))
	assert.Zero(t, PolylineLength(points[:1]))
}
