// Command routegen synthesizes a routed path between two points and prints
// it, for exercising the routing policies used when a logical connection has
// no traced geometry.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/route"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/pkg/geometry"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	x1 := flag.Float64("x1", 0, "Start x")
	y1 := flag.Float64("y1", 0, "Start y")
	x2 := flag.Float64("x2", 100, "End x")
	y2 := flag.Float64("y2", 100, "End y")
	style := flag.String("style", "manhattan", "Routing style: manhattan, l, l-vertical, straight, smooth")
	segments := flag.Int("segments", 12, "Sample count for smooth routing")
	flag.Parse()

	start := geometry.NewPoint2D(*x1, *y1)
	end := geometry.NewPoint2D(*x2, *y2)

	var points []geometry.Point2D
	switch *style {
	case "manhattan":
		points = route.Manhattan(start, end)
	case "l":
		points = route.LPath(start, end, true)
	case "l-vertical":
		points = route.LPath(start, end, false)
	case "straight":
		points = route.Straight(start, end)
	case "smooth":
		points = route.Smooth(start, end, *segments)
	default:
		fmt.Fprintf(os.Stderr, "Unknown style %q\n", *style)
		os.Exit(1)
	}

	fmt.Printf("%s route, %d points, %.1f units:\n", *style, len(points), geometry.PolylineLength(points))
	for _, p := range points {
		fmt.Printf("  (%.2f, %.2f)\n", p.X, p.Y)
	}
}
