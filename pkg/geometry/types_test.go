package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint2DArithmetic(t *testing.T) {
	a := NewPoint2D(3, 4)
	b := NewPoint2D(1, 2)

	assert.Equal(t, NewPoint2D(4, 6), a.Add(b))
	assert.Equal(t, NewPoint2D(2, 2), a.Sub(b))
	assert.Equal(t, NewPoint2D(6, 8), a.Scale(2))
	assert.InDelta(t, 5.0, NewPoint2D(0, 0).Distance(a), 1e-9)
}

func TestRectContainsAndCenter(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	assert.True(t, r.Contains(NewPoint2D(10, 20)))
	assert.True(t, r.Contains(NewPoint2D(110, 70)))
	assert.False(t, r.Contains(NewPoint2D(9.9, 20)))
	assert.False(t, r.Contains(NewPoint2D(50, 71)))
	assert.Equal(t, NewPoint2D(60, 45), r.Center())
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)

	assert.Equal(t, NewRect(0, 0, 30, 15), a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))
}

func TestCentroidAndBoundingBox(t *testing.T) {
	points := []Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 9}}

	assert.Equal(t, NewPoint2D(5, 3), Centroid(points))
	assert.Equal(t, NewRect(0, 0, 10, 9), BoundingBox(points))

	assert.Equal(t, Point2D{}, Centroid(nil))
	assert.Equal(t, Rect{}, BoundingBox(nil))
}
