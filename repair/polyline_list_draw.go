package repair

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 10

// dbgDraw renders the polylines (and optionally the boundary ring)
// to a PNG and cats it to the terminal. Endpoints get dots so gaps
// that are about to be snapped are visible.
func (pl PolylineList) dbgDraw(boundary *Ring, scale float64) {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	extend := func(points []Point) {
		for _, p := range points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	for _, line := range pl {
		extend(line.Points)
	}
	if boundary != nil {
		extend(boundary.Points)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	if boundary != nil {
		c.MoveTo(boundary.Points[0].X, boundary.Points[0].Y)
		for _, p := range boundary.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0.4, 0.4, 0.4)
		c.SetLineWidth(1)
		c.Stroke()
	}

	c.SetLineWidth(2)
	for _, line := range pl {
		c.MoveTo(line.Points[0].X, line.Points[0].Y)
		for _, p := range line.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.SetRGB(0, 1, 1)
		c.Stroke()
		for _, endpoint := range [2]Point{line.First(), line.Last()} {
			c.DrawCircle(endpoint.X, endpoint.Y, 3/scale)
			c.SetRGB(1, 0.5, 0)
			c.Fill()
		}
	}

	c.SavePNG("/tmp/polyline_list.png")
	imgcat.CatFile("/tmp/polyline_list.png", os.Stdout)
}
