package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/seamline/seamline"
)

// Demo driver for the repair pipeline. Input on stdin should be
// newline separated points in the form "x y", with each polyline
// fragment separated by an extra newline. The boundary ring comes from
// a file in the same format. Fragments are snapped, conformed to the
// boundary, and written back to stdout in the input format.
//
// Coordinates must be in a projected, equal-unit CRS. Nothing here
// validates that.

var (
	threshold = kingpin.Flag("threshold",
		"Maximum endpoint gap eligible for snapping, in coordinate units.").
		Default("1.0").Float64()
	policyName = kingpin.Flag("policy",
		"How interior endpoints reach the boundary.").
		Default("shortest").Enum("shortest", "extrapolate")
	maxExtrapolation = kingpin.Flag("max-extrapolation",
		"Distance budget for the extrapolate policy.").
		Default("100").Float64()
	boundaryPath = kingpin.Flag("boundary",
		"File holding the boundary ring, one \"x y\" vertex per line.").
		Required().ExistingFile()
)

func main() {
	kingpin.Parse()

	boundary := readBoundary(*boundaryPath)
	fragments := readPolylines(os.Stdin)
	fmt.Fprintf(os.Stderr, "Read %d fragments\n", len(fragments))

	snapped, err := seamline.Snap(fragments, *threshold)
	if err != nil {
		log.Fatalf("snap: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Snapped into %d polylines\n", len(snapped))

	policy := seamline.ShortestDistance
	if *policyName == "extrapolate" {
		policy = seamline.Extrapolate
	}

	for _, line := range snapped {
		conformed, err := seamline.Conform(line, boundary, policy, *maxExtrapolation)
		if err != nil {
			log.Printf("skipping %v: %v", line, err)
			continue
		}
		writePolyline(os.Stdout, conformed)
	}
}

func readPolylines(in *os.File) []*seamline.Polyline {
	lines := []*seamline.Polyline{}
	scanner := bufio.NewScanner(in)
	points := []seamline.Point{}
	for scanner.Scan() {
		text := scanner.Text()

		// An empty line after collected points ends the fragment
		if strings.TrimSpace(text) == "" {
			if len(points) > 0 {
				lines = append(lines, &seamline.Polyline{Points: points})
				points = []seamline.Point{}
			}
			continue
		}

		points = append(points, parsePoint(text))
	}

	// Handle trailing fragment if any
	if len(points) > 0 {
		lines = append(lines, &seamline.Polyline{Points: points})
	}
	return lines
}

func readBoundary(path string) *seamline.Ring {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("could not open boundary file %q: %v", path, err)
	}
	defer file.Close()

	points := []seamline.Point{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		points = append(points, parsePoint(text))
	}
	// Tolerate an explicitly closed ring in the file
	if len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	if len(points) < 3 {
		log.Fatalf("boundary file %q has %d vertices, need at least 3", path, len(points))
	}
	return &seamline.Ring{Points: points}
}

func parsePoint(line string) seamline.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("invalid y value %q: %v", parts[1], err)
	}
	return seamline.Point{X: x, Y: y}
}

func writePolyline(out io.Writer, line *seamline.Polyline) {
	for _, p := range line.Points {
		fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
	}
	fmt.Fprintln(out)
}
