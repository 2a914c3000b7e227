package repair

import "math"

const Tolerance = 1e-6

// Float comparison is tolerance based. Cut points computed from
// segment intersections drift in the last few bits, and exact
// comparison would refuse to chain-merge pieces that plainly touch.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// SamePoint is coordinate-wise equality within Tolerance. Everywhere
// the contract says "exact shared endpoint", this is the test.
func SamePoint(a, b Point) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// Ring edges are addressed as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it
// only gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
