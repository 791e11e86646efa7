// Command wirescan runs wire detection over a schematic document and reports
// per-page and document statistics. The document is either a JSON stroke dump
// or one page image per file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"

	"gopkg.in/yaml.v3"

	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/document"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/pipeline"
	"github.com/LiamOReillyME/Electrical-Schematics-sub001/internal/schematic"
)

// Config is the YAML tunables file: pipeline gates plus raster extraction
// parameters.
type Config struct {
	Pipeline pipeline.Options       `yaml:"pipeline"`
	Raster   document.RasterOptions `yaml:"raster"`
}

func defaultConfig() Config {
	return Config{
		Pipeline: pipeline.DefaultOptions(),
		Raster:   document.DefaultRasterOptions(),
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	docPath := flag.String("doc", "", "Path to JSON stroke document")
	images := flag.String("images", "", "Comma-separated page image paths (TIFF, PNG, or JPEG)")
	configPath := flag.String("config", "", "Optional YAML tunables file")
	outPath := flag.String("out", "", "Optional path for full JSON results")
	flag.Parse()

	if *docPath == "" && *images == "" {
		fmt.Println("Usage: wirescan -doc <strokes.json> | -images <p1.tif,p2.tif> [-config cfg.yaml] [-out results.json]")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var provider document.Provider
	if *docPath != "" {
		doc, err := document.LoadStrokeDocument(*docPath)
		if err != nil {
			log.Fatalf("Failed to load stroke document: %v", err)
		}
		provider = doc
	} else {
		paths := strings.Split(*images, ",")
		doc, err := document.LoadRasterDocument(paths, cfg.Raster)
		if err != nil {
			log.Fatalf("Failed to extract strokes from images: %v", err)
		}
		provider = doc
	}

	log.Printf("Scanning %d page(s)", provider.PageCount())
	result, err := pipeline.ProcessDocument(provider, cfg.Pipeline)
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	for _, page := range result.Pages {
		printPage(page)
	}
	printDocument(result.Stats)

	if *outPath != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("Failed to marshal results: %v", err)
		}
		if err := os.WriteFile(*outPath, data, 0644); err != nil {
			log.Fatalf("Failed to write results: %v", err)
		}
		log.Printf("Results written to %s", *outPath)
	}
}

func printPage(r pipeline.PageResult) {
	s := r.Stats
	fmt.Printf("\nPage %d: %d segments, %d wires, %d paths, %d junctions\n",
		s.Page, s.SegmentCount, s.WireCount, s.PathCount, s.JunctionCount)
	fmt.Printf("  Types:  %s\n", formatTypeCounts(s.ByType))
	fmt.Printf("  Colors: %s\n", formatColorCounts(s.ByColor))
	if s.WireCount > 0 {
		fmt.Printf("  Wire length: min %.1f  max %.1f  mean %.1f (%d horizontal, %d vertical)\n",
			s.WireLengthMin, s.WireLengthMax, s.WireLengthMean, s.HorizontalWires, s.VerticalWires)
	}
	for _, path := range r.Paths {
		bounds := path.Bounds()
		center := bounds.Center()
		fmt.Printf("  %s: %d segment(s), %s, %.1f units, %s, %.0fx%.0f at (%.0f, %.0f)\n",
			path.ID, len(path.Segments), path.Color, path.TotalLength(), path.VoltageType(),
			bounds.Width, bounds.Height, center.X, center.Y)
	}
}

func printDocument(s pipeline.DocumentStats) {
	fmt.Printf("\nDocument: %d page(s), %d segments, %d wires, %d paths, %d junctions\n",
		s.PageCount, s.SegmentCount, s.WireCount, s.PathCount, s.JunctionCount)
	if s.WireCount > 0 {
		fmt.Printf("  Wire length: min %.1f  max %.1f  mean %.1f\n",
			s.WireLengthMin, s.WireLengthMax, s.WireLengthMean)
	}
}

func formatTypeCounts(counts map[schematic.LineType]int) string {
	var keys []schematic.LineType
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}

func formatColorCounts(counts map[schematic.WireColor]int) string {
	var keys []schematic.WireColor
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}
