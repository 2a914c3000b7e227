package repair

import (
	"math"
	"sort"
)

// ExtendPolicy selects how a strictly-interior endpoint is pushed out
// to the boundary ring.
type ExtendPolicy int

const (
	// ShortestDistance appends a segment to the nearest ring point. It
	// is the minimum-length way to reach the boundary and always
	// succeeds for a simple ring.
	ShortestDistance ExtendPolicy = iota

	// Extrapolate continues along the terminal segment's bearing and
	// stops at the first ring crossing. Truer to the feature being
	// modeled (a street running straight to the city limit), but a
	// shallow approach angle can miss the ring within the budget.
	Extrapolate
)

func (p ExtendPolicy) String() string {
	switch p {
	case ShortestDistance:
		return "shortest-distance"
	case Extrapolate:
		return "extrapolate"
	}
	return "unknown"
}

// DefaultMaxExtrapolation bounds the Extrapolate ray when the caller
// has no better number for its coordinate units.
const DefaultMaxExtrapolation = 100

// Conform clips line to the closed region bounded by boundary, then
// extends any endpoint left strictly inside out to the ring under the
// chosen policy. Both endpoints are handled in one call. The result's
// endpoints always lie on the ring, which is what makes the line
// usable for splitting the polygon into parts.
func Conform(line *Polyline, boundary *Ring, policy ExtendPolicy, maxExtrapolation float64) *Polyline {
	checkLine(line)
	checkRing(boundary)
	if maxExtrapolation < 0 {
		throwf(ErrInvalidArgument, "negative max extrapolation %v", maxExtrapolation)
	}

	clipped := Clip(line, boundary)
	if clipped.Closed() {
		// A loop has no dangling ends to push out.
		return clipped
	}

	points := clipped.Points
	if boundary.StateOf(points[0]) == EndpointInside {
		reached := extendToBoundary(points[0], points[1], boundary, policy, maxExtrapolation)
		points = append([]Point{reached}, points...)
	}
	if n := len(points); boundary.StateOf(points[n-1]) == EndpointInside {
		reached := extendToBoundary(points[n-1], points[n-2], boundary, policy, maxExtrapolation)
		points = append(points, reached)
	}
	return &Polyline{Points: points}
}

// Clip returns the portion of line lying within or on the ring. Each
// segment is cut at its ring crossings and the surviving pieces are
// reassembled into contiguous runs. A concave ring can leave several
// disjoint runs; the longest one is kept. A line entirely outside the
// ring raises ErrNoIntersection so the caller can decide whether that
// is a no-op or a defect in its data.
func Clip(line *Polyline, boundary *Ring) *Polyline {
	checkLine(line)
	checkRing(boundary)

	var runs []*Polyline
	var run []Point
	flush := func() {
		if len(run) >= 2 {
			runs = append(runs, &Polyline{Points: run})
		}
		run = nil
	}

	for i := 0; i < len(line.Points)-1; i++ {
		p, q := line.Points[i], line.Points[i+1]
		if SamePoint(p, q) {
			continue
		}
		for _, piece := range clipSegment(p, q, boundary) {
			if len(run) > 0 && SamePoint(run[len(run)-1], piece[0]) {
				run = append(run, piece[1])
			} else {
				flush()
				run = []Point{piece[0], piece[1]}
			}
		}
	}
	flush()

	if len(runs) == 0 {
		throwf(ErrNoIntersection, "line %v → %v lies entirely outside the ring",
			line.First(), line.Last())
	}
	longest := runs[0]
	for _, candidate := range runs[1:] {
		if candidate.Length() > longest.Length() {
			longest = candidate
		}
	}
	return longest
}

// clipSegment cuts p→q at every ring crossing and keeps the pieces
// whose midpoints are inside or on the ring.
func clipSegment(p, q Point, boundary *Ring) [][2]Point {
	cuts := []float64{0, 1}
	for i := range boundary.Points {
		e0, e1 := boundary.Edge(i)
		if _, t, ok := segmentIntersection(p, q, e0, e1); ok {
			cuts = append(cuts, t)
		}
	}
	sort.Float64s(cuts)

	lerp := func(t float64) Point {
		// Endpoints stay bit-exact so run reassembly and chain merging
		// can match them
		if t <= 0 {
			return p
		}
		if t >= 1 {
			return q
		}
		return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
	}

	var pieces [][2]Point
	for i := 0; i < len(cuts)-1; i++ {
		t0, t1 := cuts[i], cuts[i+1]
		if t1-t0 < Tolerance {
			continue
		}
		if boundary.StateOf(lerp((t0+t1)/2)) == EndpointOutside {
			continue
		}
		pieces = append(pieces, [2]Point{lerp(t0), lerp(t1)})
	}
	return pieces
}

func extendToBoundary(at, prev Point, boundary *Ring, policy ExtendPolicy, maxExtrapolation float64) Point {
	if policy == Extrapolate {
		return extrapolateToBoundary(at, prev, boundary, maxExtrapolation)
	}
	return boundary.Project(at).Point
}

// extrapolateToBoundary shoots a ray from at along the outward bearing
// of the terminal segment prev→at and returns its nearest crossing
// with the ring, no further than maxExtrapolation away.
func extrapolateToBoundary(at, prev Point, boundary *Ring, maxExtrapolation float64) Point {
	length := prev.DistanceTo(at)
	if length < Tolerance {
		throwf(ErrInvalidInput, "terminal segment %v → %v has no direction", prev, at)
	}
	far := Point{
		X: at.X + (at.X-prev.X)/length*maxExtrapolation,
		Y: at.Y + (at.Y-prev.Y)/length*maxExtrapolation,
	}

	best := Point{}
	bestDist := math.Inf(1)
	for i := range boundary.Points {
		e0, e1 := boundary.Edge(i)
		hit, _, ok := segmentIntersection(at, far, e0, e1)
		if !ok {
			continue
		}
		if d := at.DistanceTo(hit); d > Tolerance && d < bestDist {
			best, bestDist = hit, d
		}
	}
	if math.IsInf(bestDist, 1) {
		throwf(ErrExtrapolationExceeded,
			"ray from %v toward %v missed the ring within %v units", at, far, maxExtrapolation)
	}
	return best
}
