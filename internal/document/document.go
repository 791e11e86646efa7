// Package document provides page access for the wire-detection pipeline: the
// provider interface the pipeline consumes, a JSON-backed stroke document for
// pre-extracted vector data, and a raster provider that extracts stroke
// primitives from scanned page images.
package document

import (
	"fmt"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/colorutil"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/geometry"
)

// RawStroke is a drawing primitive as pulled from a page: an ordered point
// list with stroke color and width. Pages legitimately contain primitives
// that are not straight two-point strokes; the pipeline skips those rather
// than treating them as errors.
type RawStroke struct {
	Points []geometry.Point2D `json:"points"`
	Color  colorutil.RGB      `json:"color"`
	Width  float64            `json:"width"`
}

// IsLine reports whether the stroke is a straight two-point primitive with
// distinct endpoints.
func (s RawStroke) IsLine() bool {
	return len(s.Points) == 2 && s.Points[0].Distance(s.Points[1]) > 0
}

// Page holds one page's dimensions and raw strokes, in the same coordinate
// units (origin top-left).
type Page struct {
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Strokes []RawStroke `json:"strokes"`
}

// Provider is the document collaborator: read-only access to pages by index.
// Implementations must allow concurrent reads of different pages.
type Provider interface {
	PageCount() int
	Page(index int) (Page, error)
}

// StrokeDocument is an in-memory multi-page stroke collection. It implements
// Provider and is the interchange form for both JSON dumps and raster
// extraction results.
type StrokeDocument struct {
	Pages []Page `json:"pages"`
}

// PageCount returns the number of pages.
func (d *StrokeDocument) PageCount() int {
	return len(d.Pages)
}

// Page returns the page at index.
func (d *StrokeDocument) Page(index int) (Page, error) {
	if index < 0 || index >= len(d.Pages) {
		return Page{}, fmt.Errorf("page %d out of range (document has %d pages)", index, len(d.Pages))
	}
	return d.Pages[index], nil
}
