package repair

import "github.com/pkg/errors"

// Failure conditions raised by the repair operations. After recovery
// they remain distinguishable with errors.Is, so a caller can, say,
// retry Conform with ShortestDistance after ErrExtrapolationExceeded.
var (
	// ErrInvalidInput: malformed geometry, such as a polyline with fewer
	// than two points or an empty collection.
	ErrInvalidInput = errors.New("invalid input geometry")

	// ErrInvalidArgument: illegal parameter, such as a negative snap
	// threshold or extrapolation budget.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoIntersection: the line has no overlap at all with the region
	// bounded by the ring.
	ErrNoIntersection = errors.New("no intersection with boundary")

	// ErrExtrapolationExceeded: the extrapolation ray did not reach the
	// ring within the configured budget.
	ErrExtrapolationExceeded = errors.New("extrapolation exceeded")
)

// Threading error returns through the clipping and merging loops would
// add a lot of noise for conditions that abort the whole operation
// anyway. Instead, the core panics, and the public API recovers to
// convert to an error.

type RepairError error

// Panic with a RepairError wrapping one of the condition sentinels.
func throwf(condition error, format string, args ...interface{}) {
	panic(RepairError(errors.Wrapf(condition, format, args...)))
}

func HandleRepairPanicRecover(r interface{}) error {
	if r != nil {
		if repairError, ok := r.(RepairError); ok {
			return repairError
		}
		panic(r)
	}
	return nil
}
