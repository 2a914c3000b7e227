package repair

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/seamline/seamline/dbg"
)

// Point is a 2D coordinate in whatever projected coordinate system the
// caller works in. All distances in this package are Euclidean, so
// geometry must arrive in an equal-unit projection; raw longitude and
// latitude degrees will give meaningless results.
type Point struct {
	X float64
	Y float64
}

func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Polyline is an ordered path of at least two points. Nothing in this
// package mutates one once built; every transformation returns a fresh
// polyline, so values can be shared between goroutines without
// synchronization.
type Polyline struct {
	Points []Point
}

func (l *Polyline) First() Point { return l.Points[0] }
func (l *Polyline) Last() Point  { return l.Points[len(l.Points)-1] }

// Closed reports whether the polyline's endpoints coincide. A closed
// polyline is already a complete loop, so snapping and extension leave
// it alone.
func (l *Polyline) Closed() bool {
	return SamePoint(l.First(), l.Last())
}

func (l *Polyline) Length() float64 {
	var length float64
	for i := 0; i < len(l.Points)-1; i++ {
		length += l.Points[i].DistanceTo(l.Points[i+1])
	}
	return length
}

func (l *Polyline) Reverse() *Polyline {
	reversed := make([]Point, len(l.Points))
	for i, p := range l.Points {
		reversed[len(l.Points)-1-i] = p
	}
	return &Polyline{Points: reversed}
}

func (l *Polyline) String() string {
	return fmt.Sprintf("Polyline %s [%d points, %v → %v]",
		l.DbgName(), len(l.Points), l.First(), l.Last())
}

func (l *Polyline) DbgName() string {
	// Closed loops show cyan, open paths green
	name := dbg.Name(l)
	if l.Closed() {
		name = aurora.Cyan(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}

// PolylineList is an unordered collection of polylines, assumed
// disjoint from each other except possibly at shared endpoints. It is
// the unit of input to Snap.
type PolylineList []*Polyline

// Ring is the exterior ring of a simple polygon. The closing edge from
// the last vertex back to the first is implicit; the first point must
// not be repeated at the end.
type Ring struct {
	Points []Point
}
