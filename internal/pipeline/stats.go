package pipeline

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/schematic"
)

// PageStats aggregates one page's classification and tracing results.
type PageStats struct {
	Page         int                         `json:"page"`
	SegmentCount int                         `json:"segment_count"`
	ByType       map[schematic.LineType]int  `json:"by_type"`
	ByColor      map[schematic.WireColor]int `json:"by_color"`

	WireCount       int `json:"wire_count"`
	HorizontalWires int `json:"horizontal_wires"`
	VerticalWires   int `json:"vertical_wires"`

	WireLengthMin  float64 `json:"wire_length_min"`
	WireLengthMax  float64 `json:"wire_length_max"`
	WireLengthMean float64 `json:"wire_length_mean"`
	WireLengthSum  float64 `json:"wire_length_sum"`

	PathCount     int `json:"path_count"`
	JunctionCount int `json:"junction_count"`
}

// newPageStats computes statistics from a page's classified segments and
// traced paths.
func newPageStats(page int, segments []schematic.LineSegment, types []schematic.LineType,
	paths []schematic.WirePath, junctions []schematic.Junction) PageStats {

	s := PageStats{
		Page:          page,
		SegmentCount:  len(segments),
		ByType:        make(map[schematic.LineType]int),
		ByColor:       make(map[schematic.WireColor]int),
		PathCount:     len(paths),
		JunctionCount: len(junctions),
	}

	var wireLengths []float64
	for i, seg := range segments {
		s.ByType[types[i]]++
		s.ByColor[seg.Color]++
		if types[i] != schematic.TypeWire {
			continue
		}
		s.WireCount++
		wireLengths = append(wireLengths, seg.Length)
		if seg.IsHorizontal {
			s.HorizontalWires++
		}
		if seg.IsVertical {
			s.VerticalWires++
		}
	}

	if len(wireLengths) > 0 {
		s.WireLengthMin = floats.Min(wireLengths)
		s.WireLengthMax = floats.Max(wireLengths)
		s.WireLengthMean = stat.Mean(wireLengths, nil)
		s.WireLengthSum = floats.Sum(wireLengths)
	}

	return s
}

// DocumentStats is the document-wide roll-up of page statistics. Merging is
// commutative and associative, so pages may be aggregated in any order.
type DocumentStats struct {
	PageCount    int                         `json:"page_count"`
	SegmentCount int                         `json:"segment_count"`
	ByType       map[schematic.LineType]int  `json:"by_type"`
	ByColor      map[schematic.WireColor]int `json:"by_color"`

	WireCount      int     `json:"wire_count"`
	WireLengthMin  float64 `json:"wire_length_min"`
	WireLengthMax  float64 `json:"wire_length_max"`
	WireLengthMean float64 `json:"wire_length_mean"`

	PathCount     int `json:"path_count"`
	JunctionCount int `json:"junction_count"`

	wireLengthSum float64
}

// NewDocumentStats returns an empty roll-up.
func NewDocumentStats() DocumentStats {
	return DocumentStats{
		ByType:  make(map[schematic.LineType]int),
		ByColor: make(map[schematic.WireColor]int),
	}
}

// Merge folds one page's statistics into the roll-up.
func (d *DocumentStats) Merge(p PageStats) {
	d.PageCount++
	d.SegmentCount += p.SegmentCount
	for t, n := range p.ByType {
		d.ByType[t] += n
	}
	for c, n := range p.ByColor {
		d.ByColor[c] += n
	}

	if p.WireCount > 0 {
		if d.WireCount == 0 || p.WireLengthMin < d.WireLengthMin {
			d.WireLengthMin = p.WireLengthMin
		}
		if p.WireLengthMax > d.WireLengthMax {
			d.WireLengthMax = p.WireLengthMax
		}
	}
	d.WireCount += p.WireCount
	d.wireLengthSum += p.WireLengthSum
	if d.WireCount > 0 {
		d.WireLengthMean = d.wireLengthSum / float64(d.WireCount)
	}

	d.PathCount += p.PathCount
	d.JunctionCount += p.JunctionCount
}
