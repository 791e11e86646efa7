package document

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"

	"gocv.io/x/gocv"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/colorutil"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/geometry"
)

// RasterOptions configures stroke extraction from scanned page images.
type RasterOptions struct {
	CannyLow       float32 `yaml:"canny_low"`
	CannyHigh      float32 `yaml:"canny_high"`
	HoughThreshold int     `yaml:"hough_threshold"`
	MinLineLength  float32 `yaml:"min_line_length"`
	MaxLineGap     float32 `yaml:"max_line_gap"`
}

// DefaultRasterOptions returns extraction defaults tuned for 200dpi schematic
// scans.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		CannyLow:       50,
		CannyHigh:      150,
		HoughThreshold: 40,
		MinLineLength:  8,
		MaxLineGap:     3,
	}
}

// ExtractStrokes pulls line strokes out of a page image with Canny edge
// detection and a probabilistic Hough transform. Stroke color is sampled at
// the line midpoint of the source image; width is not recoverable from the
// transform and is reported as 1.
func ExtractStrokes(img gocv.Mat, opts RasterOptions) Page {
	if img.Empty() {
		return Page{}
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, opts.CannyLow, opts.CannyHigh)

	lines := gocv.NewMat()
	defer lines.Close()
	gocv.HoughLinesPWithParams(edges, &lines, 1, float32(math.Pi/180),
		opts.HoughThreshold, opts.MinLineLength, opts.MaxLineGap)

	page := Page{
		Width:  float64(img.Cols()),
		Height: float64(img.Rows()),
	}

	for i := 0; i < lines.Rows(); i++ {
		vec := lines.GetVeciAt(i, 0)
		start := geometry.Point2D{X: float64(vec[0]), Y: float64(vec[1])}
		end := geometry.Point2D{X: float64(vec[2]), Y: float64(vec[3])}

		mx := int((start.X + end.X) / 2)
		my := int((start.Y + end.Y) / 2)
		bgr := img.GetVecbAt(my, mx)

		page.Strokes = append(page.Strokes, RawStroke{
			Points: []geometry.Point2D{start, end},
			Color:  colorutil.FromBytes(bgr[2], bgr[1], bgr[0]),
			Width:  1,
		})
	}

	return page
}

// LoadRasterDocument reads page images from disk and extracts their strokes
// into an in-memory stroke document. Decoding goes through image.Decode, so
// the caller chooses the supported formats by registering decoders. Mats are
// released before returning, the result carries no native resources.
func LoadRasterDocument(paths []string, opts RasterOptions) (*StrokeDocument, error) {
	doc := &StrokeDocument{}
	for _, path := range paths {
		page, err := loadRasterPage(path, opts)
		if err != nil {
			return nil, err
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

func loadRasterPage(path string, opts RasterOptions) (Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return Page{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Page{}, fmt.Errorf("decode page image %s: %w", path, err)
	}

	rgba, err := gocv.ImageToMatRGBA(toRGBA(img))
	if err != nil {
		return Page{}, fmt.Errorf("convert page image %s: %w", path, err)
	}
	defer rgba.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(rgba, &bgr, gocv.ColorRGBAToBGR)

	return ExtractStrokes(bgr, opts), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
