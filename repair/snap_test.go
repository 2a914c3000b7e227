package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapJoinsWithinThreshold(t *testing.T) {
	lines := PolylineList{
		{Points: []Point{{0, 0}, {5, 0}}},
		{Points: []Point{{5.5, 0}, {10, 0}}},
	}

	result := Snap(lines, 1.0)

	require.Len(t, result, 1)
	assert.Equal(t, []Point{{0, 0}, {5, 0}, {5.5, 0}, {10, 0}}, result[0].Points)
}

func TestSnapLeavesWideGapsAlone(t *testing.T) {
	lines := PolylineList{
		{Points: []Point{{0, 0}, {5, 0}}},
		{Points: []Point{{5.5, 0}, {10, 0}}},
	}

	// Gap is 0.5, threshold is 0.4
	result := Snap(lines, 0.4)

	require.Len(t, result, 2)
	assert.ElementsMatch(t,
		[][]Point{{{0, 0}, {5, 0}}, {{5.5, 0}, {10, 0}}},
		[][]Point{result[0].Points, result[1].Points})
}

func TestSnapChainsThreeFragments(t *testing.T) {
	lines := PolylineList{
		{Points: []Point{{0, 0}, {4, 0}}},
		{Points: []Point{{4.2, 0}, {7, 0}}},
		{Points: []Point{{7.3, 0.1}, {12, 1}}},
	}

	result := Snap(lines, 0.5)

	require.Len(t, result, 1)
	assert.Equal(t, Point{0, 0}, result[0].First())
	assert.Equal(t, Point{12, 1}, result[0].Last())
	// Two connectors were inserted along the chain
	assert.Len(t, result[0].Points, 6)
}

func TestSnapHandlesReversedFragments(t *testing.T) {
	// The second fragment is digitized in the opposite direction, so
	// continuity requires a reversal during the merge.
	lines := PolylineList{
		{Points: []Point{{0, 0}, {5, 0}}},
		{Points: []Point{{10, 0}, {5.5, 0}}},
	}

	result := Snap(lines, 1.0)

	require.Len(t, result, 1)
	assert.Equal(t, []Point{{0, 0}, {5, 0}, {5.5, 0}, {10, 0}}, result[0].Points)
}

func TestSnapMergesCoincidentEndpointsWithoutConnector(t *testing.T) {
	lines := PolylineList{
		{Points: []Point{{0, 0}, {5, 0}}},
		{Points: []Point{{5, 0}, {10, 0}}},
	}

	result := Snap(lines, 0)

	require.Len(t, result, 1)
	// The shared junction point appears exactly once
	assert.Equal(t, []Point{{0, 0}, {5, 0}, {10, 0}}, result[0].Points)
}

func TestSnapIsIdempotent(t *testing.T) {
	lines := PolylineList{
		{Points: []Point{{0, 0}, {5, 0}}},
		{Points: []Point{{5.5, 0}, {10, 0}}},
	}

	once := Snap(lines, 1.0)
	require.Len(t, once, 1)

	for _, threshold := range []float64{0, 0.4, 1.0, 100} {
		again := Snap(once, threshold)
		require.Len(t, again, 1)
		assert.Equal(t, once[0].Points, again[0].Points)
	}
}

func TestSnapSingleLineUnchanged(t *testing.T) {
	lines := PolylineList{
		{Points: []Point{{0, 0}, {3, 3}, {6, 0}}},
	}

	result := Snap(lines, 50)

	require.Len(t, result, 1)
	assert.Equal(t, lines[0].Points, result[0].Points)
}

func TestSnapSkipsClosedLoops(t *testing.T) {
	loop := &Polyline{Points: []Point{{0, 0}, {4, 0}, {4, 4}, {0, 0}}}
	open := &Polyline{Points: []Point{{4.1, 0}, {8, 0}}}

	// The open fragment ends 0.1 from the loop's corner, but loops are
	// complete and never paired.
	result := Snap(PolylineList{loop, open}, 1.0)

	require.Len(t, result, 2)
	assert.ElementsMatch(t,
		[][]Point{loop.Points, open.Points},
		[][]Point{result[0].Points, result[1].Points})
}

func TestSnapConnectsDistantChainsSeparately(t *testing.T) {
	// Two clusters, each internally snappable, far from each other.
	lines := PolylineList{
		{Points: []Point{{0, 0}, {5, 0}}},
		{Points: []Point{{5.3, 0}, {10, 0}}},
		{Points: []Point{{100, 100}, {105, 100}}},
		{Points: []Point{{105.3, 100}, {110, 100}}},
	}

	result := Snap(lines, 0.5)

	require.Len(t, result, 2)
	for _, line := range result {
		assert.Len(t, line.Points, 4)
	}
}

func TestSnapNegativeThreshold(t *testing.T) {
	lines := PolylineList{{Points: []Point{{0, 0}, {5, 0}}}}
	err := recoverCall(func() {
		Snap(lines, -0.1)
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSnapEmptyCollection(t *testing.T) {
	err := recoverCall(func() {
		Snap(PolylineList{}, 1.0)
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSnapRejectsDegenerateMember(t *testing.T) {
	lines := PolylineList{
		{Points: []Point{{0, 0}, {5, 0}}},
		{Points: []Point{{7, 7}}},
	}
	err := recoverCall(func() {
		Snap(lines, 1.0)
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
