package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSegmentKeepAll(t *testing.T) {
	a := Vertex{0, 0}
	b := Vertex{100, 0}

	out := scanSegment(a, b, func(Vertex) bool { return true }, chainScan)
	require.Len(t, out, 1)
	assert.Equal(t, a, out[0].Va)
	assert.Equal(t, b, out[0].Vb)
}

func TestScanSegmentKeepNone(t *testing.T) {
	out := scanSegment(Vertex{0, 0}, Vertex{100, 0}, func(Vertex) bool { return false }, chainScan)
	assert.Empty(t, out)
}

func TestScanSegmentDegenerate(t *testing.T) {
	out := scanSegment(Vertex{5, 5}, Vertex{5, 5}, func(Vertex) bool { return true }, chainScan)
	assert.Empty(t, out)
}

func TestScanSegmentBisectsTransition(t *testing.T) {
	a := Vertex{0, 0}
	b := Vertex{100, 0}

	out := scanSegment(a, b, func(p Vertex) bool { return p.X < 37.5 }, chainScan)
	require.Len(t, out, 1)
	assert.Equal(t, a, out[0].Va)
	assert.InDelta(t, 37.5, out[0].Vb.X, 1e-3)
}

func TestScanSegmentMultipleRuns(t *testing.T) {
	a := Vertex{0, 0}
	b := Vertex{100, 0}

	// keep [0,25] and [75,100]
	keep := func(p Vertex) bool { return p.X <= 25 || p.X >= 75 }
	out := scanSegment(a, b, keep, chainScan)
	require.Len(t, out, 2)
	assert.Equal(t, a, out[0].Va)
	assert.InDelta(t, 25, out[0].Vb.X, 1e-3)
	assert.InDelta(t, 75, out[1].Va.X, 1e-3)
	assert.Equal(t, b, out[1].Vb)
}

func TestScanSegmentDropsShortRuns(t *testing.T) {
	a := Vertex{0, 0}
	b := Vertex{100, 0}

	// a keep run far below the minimum emitted length
	keep := func(p Vertex) bool { return p.X >= 50 && p.X <= 50+1e-6 }
	out := scanSegment(a, b, keep, chainScan)
	assert.Empty(t, out)
}

func TestClosestPairKeep(t *testing.T) {
	sites := []Vertex{{0, 0}, {10, 0}, {5, 10}}

	keep01 := closestPairKeep(sites, 0, 3, 0, 1)
	// on the 0-1 bisector, below the circumcenter (5, 3.75)
	assert.True(t, keep01(Vertex{5, 1}))
	// above the circumcenter site 2 takes over
	assert.False(t, keep01(Vertex{5, 8}))
	// near the circumcenter all three are almost equidistant: margin drops it
	assert.False(t, keep01(Vertex{5, 3.75}))

	keep02 := closestPairKeep(sites, 0, 3, 0, 2)
	assert.True(t, keep02(Vertex{1, 6}))
	assert.False(t, keep02(Vertex{5, 1}))
}

func TestClosestPairKeepIdentity(t *testing.T) {
	// two distinct sites sharing rounded coordinates must still be told
	// apart by index
	sites := []Vertex{{0, 0}, {0, 0}, {10, 0}}

	keep := closestPairKeep(sites, 0, 3, 0, 2)
	// sites 0 and 1 are coordinate-equal; the nearest two at any point on
	// the 0-2 bisector are indices 0 and 1, never the pair (0, 2)
	assert.False(t, keep(Vertex{5, 1}))
}

func TestClosestPairKeepTwoSites(t *testing.T) {
	sites := []Vertex{{0, 0}, {10, 0}}

	keep := closestPairKeep(sites, 0, 2, 0, 1)
	assert.True(t, keep(Vertex{5, 100}))
	assert.True(t, keep(Vertex{5, -100}))
}

func TestSideKeep(t *testing.T) {
	sites := []Vertex{{100, 300}, {500, 300}}

	keepLeft := sideKeep(sites, 0, 1, 2, true)
	keepRight := sideKeep(sites, 0, 1, 2, false)

	assert.True(t, keepLeft(Vertex{100, 0}))
	assert.False(t, keepLeft(Vertex{500, 0}))
	assert.True(t, keepRight(Vertex{500, 0}))
	assert.False(t, keepRight(Vertex{100, 0}))

	// both sides keep the thin band around the boundary itself
	assert.True(t, keepLeft(Vertex{300, 123}))
	assert.True(t, keepRight(Vertex{300, 123}))
}
