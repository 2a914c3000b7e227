package repair

import "math"

func checkLine(l *Polyline) {
	count := 0
	if l != nil {
		count = len(l.Points)
	}
	if count < 2 {
		throwf(ErrInvalidInput, "polyline needs at least 2 points, has %d", count)
	}
}

// EndpointDistance is the snap-eligibility metric: the minimum
// distance among the four endpoint pairings of two polylines. The
// closest approach anywhere along the lines can be smaller, but that
// is the wrong question when deciding whether two dangling ends should
// be joined; only endpoint proximity matters for topological repair.
func EndpointDistance(a, b *Polyline) float64 {
	_, _, dist := closestEndpoints(a, b)
	return dist
}

// closestEndpoints also reports which endpoint pair achieves the
// minimum, so the snapper can place its connector between exactly
// those two points rather than any endpoints.
func closestEndpoints(a, b *Polyline) (onA, onB Point, dist float64) {
	checkLine(a)
	checkLine(b)
	dist = math.Inf(1)
	for _, pa := range [2]Point{a.First(), a.Last()} {
		for _, pb := range [2]Point{b.First(), b.Last()} {
			if d := pa.DistanceTo(pb); d < dist {
				onA, onB, dist = pa, pb, d
			}
		}
	}
	return onA, onB, dist
}
