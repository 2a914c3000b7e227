package repair

import "math"

// segmentIntersection intersects the closed segments a0→a1 and b0→b1,
// returning the crossing point and its parameter along a0→a1. Parallel
// and collinear pairs report no crossing: a collinear overlap yields no
// useful cut point for clipping, which is the only caller that cares
// about that case.
func segmentIntersection(a0, a1, b0, b1 Point) (Point, float64, bool) {
	dax, day := a1.X-a0.X, a1.Y-a0.Y
	dbx, dby := b1.X-b0.X, b1.Y-b0.Y
	denom := dax*dby - day*dbx
	if Equal(denom, 0) {
		return Point{}, 0, false
	}
	t := ((b0.X-a0.X)*dby - (b0.Y-a0.Y)*dbx) / denom
	u := ((b0.X-a0.X)*day - (b0.Y-a0.Y)*dax) / denom
	if t < -Tolerance || t > 1+Tolerance || u < -Tolerance || u > 1+Tolerance {
		return Point{}, 0, false
	}
	t = math.Max(0, math.Min(1, t))
	return Point{X: a0.X + t*dax, Y: a0.Y + t*day}, t, true
}
