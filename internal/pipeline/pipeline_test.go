package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/document"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/schematic"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/colorutil"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/geometry"
)

var (
	red   = colorutil.RGB{R: 1, G: 0, B: 0}
	black = colorutil.RGB{R: 0.05, G: 0.05, B: 0.05}
)

func lineStroke(x1, y1, x2, y2 float64, c colorutil.RGB, width float64) document.RawStroke {
	return document.RawStroke{
		Points: []geometry.Point2D{geometry.NewPoint2D(x1, y1), geometry.NewPoint2D(x2, y2)},
		Color:  c,
		Width:  width,
	}
}

func testDocument() *document.StrokeDocument {
	return &document.StrokeDocument{
		Pages: []document.Page{
			{
				Width:  800,
				Height: 600,
				Strokes: []document.RawStroke{
					// Frame line.
					lineStroke(0, 5, 590, 5, black, 1),
					// Two connected red wire runs.
					lineStroke(100, 300, 220, 300, red, 1),
					lineStroke(220, 300, 220, 400, red, 1),
					// Degenerate: zero length.
					lineStroke(50, 50, 50, 50, red, 1),
					// Too thick: an area fill masquerading as a stroke.
					lineStroke(10, 10, 400, 10, red, 30),
					// Not a two-point line primitive.
					{Points: []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, Color: red, Width: 1},
				},
			},
			{
				Width:  800,
				Height: 600,
				Strokes: []document.RawStroke{
					lineStroke(100, 100, 300, 100, red, 1),
				},
			},
		},
	}
}

func TestProcessPageFiltersAndClassifies(t *testing.T) {
	result, err := ProcessPage(testDocument(), 0, DefaultOptions())
	require.NoError(t, err)

	// Degenerate, too-thick, and multi-point strokes never become segments.
	assert.Len(t, result.Segments, 3)
	assert.Equal(t, schematic.TypeBorder, result.Types[0])
	assert.Equal(t, schematic.TypeWire, result.Types[1])
	assert.Equal(t, schematic.TypeWire, result.Types[2])

	// The two red runs share an endpoint and trace to one path.
	require.Len(t, result.Paths, 1)
	assert.Len(t, result.Paths[0].Segments, 2)
	assert.Equal(t, schematic.ColorRed, result.Paths[0].Color)
	assert.Equal(t, schematic.Voltage24VDC, result.Paths[0].VoltageType())

	assert.Len(t, result.Wires(), 2)

	s := result.Stats
	assert.Equal(t, 3, s.SegmentCount)
	assert.Equal(t, 2, s.WireCount)
	assert.Equal(t, 1, s.ByType[schematic.TypeBorder])
	assert.Equal(t, 2, s.ByType[schematic.TypeWire])
	assert.InDelta(t, 100.0, s.WireLengthMin, 1e-9)
	assert.InDelta(t, 120.0, s.WireLengthMax, 1e-9)
	assert.InDelta(t, 110.0, s.WireLengthMean, 1e-9)
}

func TestProcessPageOutOfRange(t *testing.T) {
	_, err := ProcessPage(testDocument(), 7, DefaultOptions())
	assert.Error(t, err)
}

func TestProcessPageEmptyPage(t *testing.T) {
	doc := &document.StrokeDocument{Pages: []document.Page{{Width: 800, Height: 600}}}
	result, err := ProcessPage(doc, 0, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, result.Segments)
	assert.Empty(t, result.Paths)
	assert.Zero(t, result.Stats.WireCount)
}

func TestProcessDocument(t *testing.T) {
	result, err := ProcessDocument(testDocument(), DefaultOptions())
	require.NoError(t, err)

	require.Len(t, result.Pages, 2)
	assert.Equal(t, 0, result.Pages[0].Page)
	assert.Equal(t, 1, result.Pages[1].Page)

	s := result.Stats
	assert.Equal(t, 2, s.PageCount)
	assert.Equal(t, 4, s.SegmentCount)
	assert.Equal(t, 3, s.WireCount)
	assert.Equal(t, 2, s.PathCount)
	assert.InDelta(t, 100.0, s.WireLengthMin, 1e-9)
	assert.InDelta(t, 200.0, s.WireLengthMax, 1e-9)
}

// Merging page stats is order-independent, which is what makes the parallel
// page scan safe.
func TestDocumentStatsMergeCommutative(t *testing.T) {
	result, err := ProcessDocument(testDocument(), DefaultOptions())
	require.NoError(t, err)

	forward := NewDocumentStats()
	backward := NewDocumentStats()
	for i := 0; i < len(result.Pages); i++ {
		forward.Merge(result.Pages[i].Stats)
		backward.Merge(result.Pages[len(result.Pages)-1-i].Stats)
	}

	assert.Equal(t, forward, backward)
}
