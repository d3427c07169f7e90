package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoSiteEdges(t *testing.T) {
	box := NewBoundingBox(600, 600)

	edges := twoSiteEdges(Vertex{0, 0}, Vertex{10, 0}, box)
	require.Len(t, edges, 1)
	assert.Equal(t, Vertex{5, 0}, edges[0].Va)
	assert.Equal(t, Vertex{5, 600}, edges[0].Vb)

	// every point on the edge is equidistant from both sites
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p := lerp(edges[0].Va, edges[0].Vb, tt)
		d1 := math.Sqrt(distSq(p, Vertex{0, 0}))
		d2 := math.Sqrt(distSq(p, Vertex{10, 0}))
		assert.InDelta(t, d1, d2, 1e-4)
	}
}

func TestTwoSiteEdgesCoincident(t *testing.T) {
	box := NewBoundingBox(600, 600)
	assert.Empty(t, twoSiteEdges(Vertex{5, 5}, Vertex{5, 5}, box))
}

func TestTwoSiteEdgesBisectorOutsideBox(t *testing.T) {
	box := NewBoundingBox(100, 100)
	// both sites far right of the box: the bisector misses it entirely
	assert.Empty(t, twoSiteEdges(Vertex{500, 0}, Vertex{700, 0}, box))
}

func TestThreeSiteEdges(t *testing.T) {
	box := NewBoundingBox(600, 600)
	sites := []Vertex{{0, 0}, {10, 0}, {5, 10}}

	edges := threeSiteEdges(sites, 0, box)
	require.Len(t, edges, 3)

	cc := Vertex{5, 3.75}
	for _, e := range edges {
		// one endpoint near the circumcenter, the other on the boundary
		dA := math.Sqrt(distSq(e.Va, cc))
		dB := math.Sqrt(distSq(e.Vb, cc))
		near := math.Min(dA, dB)
		assert.InDelta(t, 0, near, 1e-2, "edge %v does not start at the circumcenter", e)

		far := e.Va
		if dB > dA {
			far = e.Vb
		}
		onBoundary := far.X < 1e-6 || far.X > 600-1e-6 || far.Y < 1e-6 || far.Y > 600-1e-6
		assert.True(t, onBoundary, "edge %v does not reach the boundary", e)

		// the supporting line passes through the circumcenter
		area := cross(e.Va, e.Vb, cc)
		assert.InDelta(t, 0, area/e.Length(), 1e-3)
	}
}

func TestThreeSiteEdgesCollinear(t *testing.T) {
	box := NewBoundingBox(600, 600)
	sites := []Vertex{{100, 300}, {300, 300}, {500, 300}}

	edges := threeSiteEdges(sites, 0, box)
	// the middle pair's bisector is never the nearest pair: only the two
	// adjacent bisectors survive
	require.Len(t, edges, 2)
	xs := []float64{edges[0].Va.X, edges[1].Va.X}
	assert.InDelta(t, 200, math.Min(xs[0], xs[1]), 1e-3)
	assert.InDelta(t, 400, math.Max(xs[0], xs[1]), 1e-3)
	for _, e := range edges {
		assert.InDelta(t, e.Va.X, e.Vb.X, 1e-6, "collinear-site bisector should be vertical")
		assert.InDelta(t, 600, math.Abs(e.Va.Y-e.Vb.Y), 1e-3, "bisector should span the full box")
	}
}
