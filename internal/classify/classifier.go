// Package classify assigns structural roles to line segments on a schematic
// page: frame borders, title-block rules, table gridlines, component
// outlines, and the electrical wires everything else exists to find.
//
// Borders, title blocks and grids are identified by position and repetition
// rather than color, because schematic frames are almost always black. Wires
// are identified primarily by color and length, because colored ink in this
// domain is reserved for conductors.
package classify

import (
	"math"
	"sort"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/schematic"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/geometry"
)

// Options holds the classification tunables. Page dimensions are passed to
// NewLineClassifier separately since they come from the document, not from
// configuration.
type Options struct {
	// BorderMargin is the distance from a page edge within which a long
	// segment counts as part of the drawing frame.
	BorderMargin float64 `yaml:"border_margin"`

	// TitleBlockRatio is the fraction of the page height below which
	// segments belong to the title block.
	TitleBlockRatio float64 `yaml:"title_block_ratio"`

	// GridTolerance is the alignment slack when looking for regularly
	// repeating table gridlines.
	GridTolerance float64 `yaml:"grid_tolerance"`

	// OutlineTolerance is the endpoint proximity within which short
	// segments count as edges of the same component outline.
	OutlineTolerance float64 `yaml:"outline_tolerance"`

	// OutlineNeighborMin is how many similar-length neighbors a short
	// segment needs before it reads as a component outline edge.
	OutlineNeighborMin int `yaml:"outline_neighbor_min"`
}

// DefaultOptions returns the default classification tunables.
func DefaultOptions() Options {
	return Options{
		BorderMargin:       20,
		TitleBlockRatio:    0.85,
		GridTolerance:      3,
		OutlineTolerance:   8,
		OutlineNeighborMin: 2,
	}
}

// LineClassifier classifies segments on a single page. Classification is a
// pure function of the segment and the page's full segment population; the
// classifier holds no state across calls or pages.
type LineClassifier struct {
	pageWidth  float64
	pageHeight float64
	opts       Options
}

// NewLineClassifier creates a classifier for one page of the given size.
// Zero-valued tunables fall back to their defaults.
func NewLineClassifier(pageWidth, pageHeight float64, opts Options) *LineClassifier {
	def := DefaultOptions()
	if opts.BorderMargin <= 0 {
		opts.BorderMargin = def.BorderMargin
	}
	if opts.TitleBlockRatio <= 0 {
		opts.TitleBlockRatio = def.TitleBlockRatio
	}
	if opts.GridTolerance <= 0 {
		opts.GridTolerance = def.GridTolerance
	}
	if opts.OutlineTolerance <= 0 {
		opts.OutlineTolerance = def.OutlineTolerance
	}
	if opts.OutlineNeighborMin <= 0 {
		opts.OutlineNeighborMin = def.OutlineNeighborMin
	}
	return &LineClassifier{pageWidth: pageWidth, pageHeight: pageHeight, opts: opts}
}

// ClassifyLine assigns a LineType to seg. The rules run in a fixed order and
// the first match wins; a segment that matches nothing is TypeUnknown, never
// an error.
func (c *LineClassifier) ClassifyLine(seg schematic.LineSegment, population []schematic.LineSegment) schematic.LineType {
	switch {
	case c.isBorder(seg):
		return schematic.TypeBorder
	case c.isTitleBlock(seg):
		return schematic.TypeTitleBlock
	case c.isTableGrid(seg, population):
		return schematic.TypeTableGrid
	case c.isComponentOutline(seg, population):
		return schematic.TypeComponentOutline
	case isWireLike(seg):
		return schematic.TypeWire
	default:
		return schematic.TypeUnknown
	}
}

// ClassifyPage classifies every segment against the full population and
// returns the results in input order.
func (c *LineClassifier) ClassifyPage(population []schematic.LineSegment) []schematic.LineType {
	types := make([]schematic.LineType, len(population))
	for i, seg := range population {
		types[i] = c.ClassifyLine(seg, population)
	}
	return types
}

// isBorder reports whether seg is part of the drawing frame: a near-axis
// segment hugging a page edge and spanning at least 70% of that dimension.
func (c *LineClassifier) isBorder(seg schematic.LineSegment) bool {
	const spanRatio = 0.7

	mid := seg.Midpoint()
	if seg.IsHorizontal {
		nearEdge := mid.Y <= c.opts.BorderMargin || mid.Y >= c.pageHeight-c.opts.BorderMargin
		return nearEdge && seg.Length >= spanRatio*c.pageWidth
	}
	if seg.IsVertical {
		nearEdge := mid.X <= c.opts.BorderMargin || mid.X >= c.pageWidth-c.opts.BorderMargin
		return nearEdge && seg.Length >= spanRatio*c.pageHeight
	}
	return false
}

// isTitleBlock reports whether seg belongs to the header band or the title
// block region at the bottom of the page. Long horizontals that span at
// least half the page are kept as rules, anything short in those bands is
// block decoration.
func (c *LineClassifier) isTitleBlock(seg schematic.LineSegment) bool {
	const headerBand = 20.0

	header := geometry.NewRect(0, 0, c.pageWidth, headerBand)
	blockTop := c.opts.TitleBlockRatio * c.pageHeight
	block := geometry.NewRect(0, blockTop, c.pageWidth, c.pageHeight-blockTop)

	inHeader := header.Contains(seg.Start) && header.Contains(seg.End)
	inBlock := block.Contains(seg.Start) && block.Contains(seg.End)
	if !inHeader && !inBlock {
		return false
	}

	short := seg.Length < 0.4*c.pageWidth
	spanningRule := seg.IsHorizontal && seg.Length >= 0.5*c.pageWidth
	return short || spanningRule
}

// isTableGrid reports whether seg lines up with at least two other segments
// of the same orientation at a regularly repeating coordinate, i.e. it is one
// rule of a parts-list or terminal table.
func (c *LineClassifier) isTableGrid(seg schematic.LineSegment, population []schematic.LineSegment) bool {
	own, ok := alignCoord(seg)
	if !ok {
		return false
	}

	coords := []float64{own}
	for i := range population {
		other := population[i]
		if sameSegment(seg, other) {
			continue
		}
		if seg.IsHorizontal != other.IsHorizontal || seg.IsVertical != other.IsVertical {
			continue
		}
		if c, ok := alignCoord(other); ok {
			coords = append(coords, c)
		}
	}
	if len(coords) < 3 {
		return false
	}

	reps := clusterCoords(coords, c.opts.GridTolerance)
	if len(reps) < 3 {
		return false
	}

	return inRegularRun(reps, own, c.opts.GridTolerance)
}

// alignCoord returns the coordinate a segment repeats on: y for horizontals,
// x for verticals. Diagonals have no alignment coordinate.
func alignCoord(seg schematic.LineSegment) (float64, bool) {
	if seg.IsHorizontal {
		return seg.Midpoint().Y, true
	}
	if seg.IsVertical {
		return seg.Midpoint().X, true
	}
	return 0, false
}

// clusterCoords sorts coordinates and collapses values within tol of each
// other into one representative, so double-struck lines do not fake a grid.
func clusterCoords(coords []float64, tol float64) []float64 {
	sorted := append([]float64(nil), coords...)
	sort.Float64s(sorted)

	var reps []float64
	for _, v := range sorted {
		if len(reps) > 0 && v-reps[len(reps)-1] <= tol {
			continue
		}
		reps = append(reps, v)
	}
	return reps
}

// inRegularRun reports whether own sits inside a run of three or more
// representatives whose consecutive gaps agree within 2*tol.
func inRegularRun(reps []float64, own, tol float64) bool {
	ownIdx := -1
	for i, r := range reps {
		if math.Abs(r-own) <= tol {
			ownIdx = i
			break
		}
	}
	if ownIdx < 0 {
		return false
	}

	// Walk maximal constant-spacing runs; own must fall inside a run of
	// three or more lines.
	start := 0
	for start < len(reps)-1 {
		gap := reps[start+1] - reps[start]
		end := start + 1
		for end < len(reps)-1 && math.Abs((reps[end+1]-reps[end])-gap) <= 2*tol {
			end++
		}
		if end-start+1 >= 3 && ownIdx >= start && ownIdx <= end {
			return true
		}
		start = end
	}
	return false
}

// wireLikeColors are the strongly conductor-coded colors; short segments in
// these colors are never treated as outline decoration.
var wireLikeColors = map[schematic.WireColor]bool{
	schematic.ColorRed:    true,
	schematic.ColorBlue:   true,
	schematic.ColorGreen:  true,
	schematic.ColorBrown:  true,
	schematic.ColorOrange: true,
}

// isComponentOutline reports whether seg is one edge of a small closed or
// near-closed shape: short, not conductor-colored, and accompanied by enough
// similar-length short segments with endpoints near its own.
func (c *LineClassifier) isComponentOutline(seg schematic.LineSegment, population []schematic.LineSegment) bool {
	const maxOutlineLen = 50.0

	if seg.Length > maxOutlineLen || seg.Length == 0 {
		return false
	}
	if wireLikeColors[seg.Color] {
		return false
	}

	neighbors := 0
	for i := range population {
		other := population[i]
		if sameSegment(seg, other) {
			continue
		}
		if other.Length > maxOutlineLen || other.Length == 0 {
			continue
		}
		ratio := other.Length / seg.Length
		if ratio < 0.5 || ratio > 2.0 {
			continue
		}
		if c.endpointsNear(seg, other) {
			neighbors++
			if neighbors >= c.opts.OutlineNeighborMin {
				return true
			}
		}
	}
	return false
}

// endpointsNear reports whether any endpoint of other lies within the outline
// tolerance of one of seg's endpoints.
func (c *LineClassifier) endpointsNear(seg, other schematic.LineSegment) bool {
	for _, a := range [2]geometry.Point2D{seg.Start, seg.End} {
		for _, b := range [2]geometry.Point2D{other.Start, other.End} {
			if a.Distance(b) <= c.opts.OutlineTolerance {
				return true
			}
		}
	}
	return false
}

// isWireLike applies the length/color gates that identify conductors. Any
// matching gate qualifies: long segments of any color, medium segments that
// are colored or axis-aligned, and short colored connector stubs.
func isWireLike(seg schematic.LineSegment) bool {
	axis := seg.IsHorizontal || seg.IsVertical
	colored := seg.Color != schematic.ColorBlack &&
		seg.Color != schematic.ColorGray &&
		seg.Color != schematic.ColorWhite &&
		seg.Color != schematic.ColorOther
	primary := seg.Color == schematic.ColorRed ||
		seg.Color == schematic.ColorBlue ||
		seg.Color == schematic.ColorGreen

	switch {
	case seg.Length > 50:
		return true
	case seg.Length > 30 && (colored || axis):
		return true
	case seg.Length > 15 && wireLikeColors[seg.Color]:
		return true
	case seg.Length > 15 && seg.Color == schematic.ColorGray && axis:
		return true
	case seg.Length >= 8 && primary:
		return true
	default:
		return false
	}
}

// sameSegment reports whether two segments are the same stroke. Segments are
// value types, so identity is structural.
func sameSegment(a, b schematic.LineSegment) bool {
	return a.Page == b.Page && a.Start == b.Start && a.End == b.End && a.Width == b.Width
}
