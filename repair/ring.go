package repair

import (
	"math"

	"github.com/logrusorgru/aurora"
)

// EndpointState classifies a point against a ring. Extend acts only on
// EndpointInside; the other two states are terminal. An outside
// endpoint is Clip's problem, which removes the dangling portion
// rather than repositioning it.
type EndpointState int

const (
	EndpointOutside EndpointState = iota
	EndpointOnBoundary
	EndpointInside
)

func (s EndpointState) String() string {
	switch s {
	case EndpointOutside:
		return "outside"
	case EndpointOnBoundary:
		return "on-boundary"
	case EndpointInside:
		return "inside"
	}
	return "unknown"
}

func (s EndpointState) DbgString() string {
	// Inside endpoints are the ones still needing work, so they get the
	// loud color
	switch s {
	case EndpointOutside:
		return aurora.Red(s.String()).String()
	case EndpointOnBoundary:
		return aurora.Green(s.String()).String()
	}
	return aurora.Cyan(s.String()).String()
}

func checkRing(r *Ring) {
	count := 0
	if r != nil {
		count = len(r.Points)
	}
	if count < 3 {
		throwf(ErrInvalidInput, "ring needs at least 3 points, has %d", count)
	}
}

// Edge returns the i'th ring edge, including the implicit closing edge
// from the last vertex back to the first.
func (r *Ring) Edge(i int) (Point, Point) {
	return r.Points[i], r.Points[CircularIndex(i+1, len(r.Points))]
}

func (r *Ring) Perimeter() float64 {
	var length float64
	for i := range r.Points {
		a, b := r.Edge(i)
		length += a.DistanceTo(b)
	}
	return length
}

// Contains is the even-odd crossing-count test: a point is inside iff
// a horizontal ray from it crosses the ring an odd number of times.
// Points lying on the ring itself are ambiguous here; classify with
// StateOf when that distinction matters.
func (r *Ring) Contains(p Point) bool {
	return r.crossingCount(p)%2 == 1
}

func (r *Ring) crossingCount(p Point) int {
	count := 0
	for i := range r.Points {
		a, b := r.Edge(i)
		if Equal(a.Y, b.Y) {
			// A horizontal edge never straddles the ray; its neighbors
			// account for the crossing.
			continue
		}
		if below(a, p) == below(b, p) {
			continue
		}
		// Where the edge crosses p's horizontal
		x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if x > p.X {
			count++
		}
	}
	return count
}

// When two points have the same Y value, the one with the smaller X is
// "lower". This simulates a slightly rotated coordinate system so the
// crossing test never has to treat a vertex exactly on the ray as a
// special case.
func below(a, b Point) bool {
	if Equal(a.Y, b.Y) {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Distance is the shortest distance from p to the ring itself, not to
// the region it bounds; it is positive for interior points too.
func (r *Ring) Distance(p Point) float64 {
	return r.Project(p).Distance
}

// RingProjection is a nearest-point query result: the point on the
// ring, its arc-length position measured along the ring from the first
// vertex, and its distance from the query point. The arc length gives
// downstream callers a consistent way to order points along the
// boundary.
type RingProjection struct {
	Point     Point
	ArcLength float64
	Distance  float64
}

func (r *Ring) Project(p Point) RingProjection {
	checkRing(r)
	best := RingProjection{Distance: math.Inf(1)}
	traveled := 0.0
	for i := range r.Points {
		a, b := r.Edge(i)
		edgeLength := a.DistanceTo(b)
		nearest, t := nearestOnSegment(p, a, b)
		if d := p.DistanceTo(nearest); d < best.Distance {
			best = RingProjection{
				Point:     nearest,
				ArcLength: traveled + t*edgeLength,
				Distance:  d,
			}
		}
		traveled += edgeLength
	}
	return best
}

// nearestOnSegment clamps the perpendicular projection of p onto a→b,
// returning the nearest point and its parameter along the segment.
func nearestOnSegment(p, a, b Point) (Point, float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return a, 0
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))
	return Point{X: a.X + t*dx, Y: a.Y + t*dy}, t
}

// StateOf classifies p as on the ring (within Tolerance), strictly
// inside, or outside. The boundary test runs first because the
// crossing count cannot be trusted for points sitting on an edge.
func (r *Ring) StateOf(p Point) EndpointState {
	checkRing(r)
	if r.Distance(p) <= Tolerance {
		return EndpointOnBoundary
	}
	if r.Contains(p) {
		return EndpointInside
	}
	return EndpointOutside
}
