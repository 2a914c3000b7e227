// Topology repair for 2D polyline networks.
//
// This package takes raw polyline fragments (street centerlines,
// transit routes, trail segments), snaps near-but-disjoint endpoints
// shut, and conforms the result to a polygon boundary so the repaired
// line can split the polygon into parts. All geometry must already be
// in a projected, equal-unit coordinate system.
package seamline

import "github.com/seamline/seamline/repair"

type Point = repair.Point
type Polyline = repair.Polyline
type Ring = repair.Ring
type ExtendPolicy = repair.ExtendPolicy

const (
	ShortestDistance = repair.ShortestDistance
	Extrapolate      = repair.Extrapolate

	DefaultMaxExtrapolation = repair.DefaultMaxExtrapolation
)

// Failure conditions, distinguishable with errors.Is.
var (
	ErrInvalidInput          = repair.ErrInvalidInput
	ErrInvalidArgument       = repair.ErrInvalidArgument
	ErrNoIntersection        = repair.ErrNoIntersection
	ErrExtrapolationExceeded = repair.ErrExtrapolationExceeded
)

// EndpointDistance returns the minimum distance among the four
// endpoint pairings of two polylines. This, not closest approach, is
// the metric for deciding whether two dangling ends should be joined.
func EndpointDistance(a, b *Polyline) (result float64, err error) {
	defer func() {
		recoveredErr := repair.HandleRepairPanicRecover(recover())
		if recoveredErr != nil {
			result = 0
			err = recoveredErr
		}
	}()
	return repair.EndpointDistance(a, b), nil
}

// Snap joins polylines whose nearest endpoints are within threshold by
// inserting connector segments, then merges everything sharing
// endpoint coordinates into maximal polylines. Pairs with a wider gap
// stay separate; closed polylines pass through untouched.
func Snap(lines []*Polyline, threshold float64) (result []*Polyline, err error) {
	defer func() {
		recoveredErr := repair.HandleRepairPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return repair.Snap(lines, threshold), nil
}

// Conform clips line to the region bounded by boundary, then extends
// any endpoint still strictly inside out to the ring under policy. On
// ErrExtrapolationExceeded, retrying with ShortestDistance always
// succeeds for a simple ring.
func Conform(line *Polyline, boundary *Ring, policy ExtendPolicy, maxExtrapolation float64) (result *Polyline, err error) {
	defer func() {
		recoveredErr := repair.HandleRepairPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return repair.Conform(line, boundary, policy, maxExtrapolation), nil
}
