package repair

// Snap joins polylines whose nearest endpoints fall within threshold
// by inserting a connecting segment between exactly those endpoints,
// then chain-merges everything that shares endpoint coordinates into
// maximal polylines. Pairs with a gap wider than threshold stay
// separate; that is the normal "already disconnected" outcome, not an
// error. Closed polylines pass through untouched.
//
// Candidate pairs are found by brute-force O(n²) scan. Inputs are
// small (dozens of street fragments), and finding the true
// minimum-distance pairing matters more than scaling here.
func Snap(lines PolylineList, threshold float64) PolylineList {
	if threshold < 0 {
		throwf(ErrInvalidArgument, "negative snap threshold %v", threshold)
	}
	if len(lines) == 0 {
		throwf(ErrInvalidInput, "empty polyline collection")
	}
	for _, line := range lines {
		checkLine(line)
	}

	var open, closed PolylineList
	for _, line := range lines {
		if line.Closed() {
			closed = append(closed, line)
		} else {
			open = append(open, line)
		}
	}

	pending := append(PolylineList{}, open...)
	for i := 0; i < len(open); i++ {
		for j := i + 1; j < len(open); j++ {
			onA, onB, dist := closestEndpoints(open[i], open[j])
			if dist > threshold {
				continue
			}
			if SamePoint(onA, onB) {
				// Already touching; the merge below picks this up without a
				// degenerate connector.
				continue
			}
			pending = append(pending, &Polyline{Points: []Point{onA, onB}})
		}
	}

	return append(mergeChains(pending), closed...)
}

// mergeChains concatenates polylines that share an endpoint
// coordinate, repeating until no pair can be joined. Pieces are
// reversed only as needed to keep the merged path continuous.
func mergeChains(lines PolylineList) PolylineList {
	pending := append(PolylineList{}, lines...)
	for {
		merged := false
	scan:
		for i := 0; i < len(pending); i++ {
			for j := i + 1; j < len(pending); j++ {
				joined := joinAtSharedEndpoint(pending[i], pending[j])
				if joined == nil {
					continue
				}
				pending[i] = joined
				pending = append(pending[:j], pending[j+1:]...)
				merged = true
				break scan
			}
		}
		if !merged {
			return pending
		}
	}
}

func joinAtSharedEndpoint(a, b *Polyline) *Polyline {
	// A piece that merged into a loop is complete; gluing anything else
	// onto it would break the loop.
	if a.Closed() || b.Closed() {
		return nil
	}
	switch {
	case SamePoint(a.Last(), b.First()):
		return concat(a, b)
	case SamePoint(a.Last(), b.Last()):
		return concat(a, b.Reverse())
	case SamePoint(a.First(), b.First()):
		return concat(a.Reverse(), b)
	case SamePoint(a.First(), b.Last()):
		return concat(b, a)
	}
	return nil
}

// concat appends b onto a, keeping the shared junction point once.
func concat(a, b *Polyline) *Polyline {
	points := make([]Point, 0, len(a.Points)+len(b.Points)-1)
	points = append(points, a.Points...)
	points = append(points, b.Points[1:]...)
	return &Polyline{Points: points}
}
