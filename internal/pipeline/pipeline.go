// Package pipeline orchestrates per-page wire detection: pull raw strokes
// from the document provider, filter out non-candidates, classify the page's
// segment population, trace the wire subset into routes, and aggregate
// statistics. Pages are independent, so documents are scanned with one
// worker per page.
package pipeline

import (
	"fmt"
	"sync"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/classify"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/document"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/schematic"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/trace"
)

// Options configures a pipeline run.
type Options struct {
	// MaxStrokeWidth discards obviously-too-thick strokes (area fills)
	// before classification is even attempted.
	MaxStrokeWidth float64 `yaml:"max_stroke_width"`

	// MinSegmentLength discards degenerate geometry. Zero-length strokes
	// are always dropped regardless of this value.
	MinSegmentLength float64 `yaml:"min_segment_length"`

	Classify classify.Options `yaml:"classify"`
	Trace    trace.Options    `yaml:"trace"`
}

// DefaultOptions returns pipeline defaults.
func DefaultOptions() Options {
	return Options{
		MaxStrokeWidth: 5,
		Classify:       classify.DefaultOptions(),
		Trace:          trace.DefaultOptions(),
	}
}

// PageResult holds everything the pipeline produced for one page.
type PageResult struct {
	Page      int                     `json:"page"`
	Segments  []schematic.LineSegment `json:"segments"`
	Types     []schematic.LineType    `json:"types"`
	Paths     []schematic.WirePath    `json:"paths"`
	Junctions []schematic.Junction    `json:"junctions"`
	Stats     PageStats               `json:"stats"`
}

// Wires returns the WIRE-classified subset of the page's segments.
func (r PageResult) Wires() []schematic.LineSegment {
	var wires []schematic.LineSegment
	for i, seg := range r.Segments {
		if r.Types[i] == schematic.TypeWire {
			wires = append(wires, seg)
		}
	}
	return wires
}

// ProcessPage runs the full pipeline over one page of the provider. A page
// with no usable strokes yields an empty result, not an error; errors only
// come from the provider itself.
func ProcessPage(provider document.Provider, pageIdx int, opts Options) (PageResult, error) {
	page, err := provider.Page(pageIdx)
	if err != nil {
		return PageResult{}, fmt.Errorf("pull page %d: %w", pageIdx, err)
	}

	segments := extractSegments(page, pageIdx, opts)

	classifier := classify.NewLineClassifier(page.Width, page.Height, opts.Classify)
	types := classifier.ClassifyPage(segments)

	var wires []schematic.LineSegment
	for i, seg := range segments {
		if types[i] == schematic.TypeWire {
			wires = append(wires, seg)
		}
	}

	tracer := trace.NewTracer(opts.Trace)
	paths := tracer.TracePaths(wires)
	junctions := tracer.FindJunctions(wires)

	return PageResult{
		Page:      pageIdx,
		Segments:  segments,
		Types:     types,
		Paths:     paths,
		Junctions: junctions,
		Stats:     newPageStats(pageIdx, segments, types, paths, junctions),
	}, nil
}

// extractSegments filters a page's raw strokes down to classification
// candidates: straight two-point strokes of non-zero length that pass the
// cheap width/length gate.
func extractSegments(page document.Page, pageIdx int, opts Options) []schematic.LineSegment {
	var segments []schematic.LineSegment
	for _, stroke := range page.Strokes {
		if !stroke.IsLine() {
			continue
		}
		if opts.MaxStrokeWidth > 0 && stroke.Width > opts.MaxStrokeWidth {
			continue
		}
		seg := schematic.NewLineSegment(pageIdx, stroke.Points[0], stroke.Points[1], stroke.Color, stroke.Width)
		if seg.Length <= 0 || seg.Length < opts.MinSegmentLength {
			continue
		}
		segments = append(segments, seg)
	}
	return segments
}

// DocumentResult holds per-page results and the document-wide statistics
// roll-up.
type DocumentResult struct {
	Pages []PageResult  `json:"pages"`
	Stats DocumentStats `json:"stats"`
}

// ProcessDocument scans every page of the provider, one worker per page, and
// merges the page statistics. Page order in the result matches page index
// regardless of worker completion order; the stats merge is commutative so
// scheduling cannot change the totals.
func ProcessDocument(provider document.Provider, opts Options) (DocumentResult, error) {
	n := provider.PageCount()
	results := make([]PageResult, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			results[page], errs[page] = ProcessPage(provider, page, opts)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return DocumentResult{}, err
		}
	}

	stats := NewDocumentStats()
	for _, r := range results {
		stats.Merge(r.Stats)
	}

	return DocumentResult{Pages: results, Stats: stats}, nil
}
