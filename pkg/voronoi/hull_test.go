package voronoi

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidHull checks the shared hull invariants: every vertex is an
// input site, no input site lies strictly outside, and no three consecutive
// vertices are collinear.
func assertValidHull(t *testing.T, hull, sites []Vertex) {
	t.Helper()

	for _, h := range hull {
		found := false
		for _, s := range sites {
			if s == h {
				found = true
				break
			}
		}
		assert.True(t, found, "hull vertex %v is not an input site", h)
	}

	if len(hull) < 3 {
		return
	}

	// hull is CCW: every site must be on or left of every directed edge
	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		for _, s := range sites {
			assert.GreaterOrEqual(t, cross(a, b, s), -1e-9,
				"site %v lies outside hull edge %v-%v", s, a, b)
		}
	}

	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		c := hull[(i+2)%len(hull)]
		assert.Greater(t, math.Abs(cross(a, b, c)), 1e-9,
			"consecutive hull vertices %v %v %v are collinear", a, b, c)
	}
}

func TestConvexHullSquare(t *testing.T) {
	sites := []Vertex{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2}}

	hull := convexHull(sites)
	require.Len(t, hull, 4)
	assertValidHull(t, hull, sites)

	// interior point excluded
	for _, h := range hull {
		assert.NotEqual(t, Vertex{2, 2}, h)
	}
}

func TestConvexHullCollinearExcluded(t *testing.T) {
	sites := []Vertex{{0, 0}, {2, 0}, {4, 0}, {4, 4}, {0, 4}}

	hull := convexHull(sites)
	require.Len(t, hull, 4)
	assertValidHull(t, hull, sites)

	for _, h := range hull {
		assert.NotEqual(t, Vertex{2, 0}, h)
	}
}

func TestConvexHullSmall(t *testing.T) {
	assert.Empty(t, convexHull(nil))

	one := []Vertex{{1, 2}}
	assert.Equal(t, one, convexHull(one))

	two := []Vertex{{3, 4}, {1, 2}}
	assert.Equal(t, two, convexHull(two))
}

func TestConvexHullRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sites := make([]Vertex, 40)
	for i := range sites {
		sites[i] = Vertex{X: rng.Float64() * 600, Y: rng.Float64() * 600}
	}

	hull := convexHull(sites)
	require.GreaterOrEqual(t, len(hull), 3)
	assertValidHull(t, hull, sites)
}

func TestConvexHullDoesNotMutateInput(t *testing.T) {
	sites := []Vertex{{4, 0}, {0, 0}, {2, 2}, {0, 4}, {4, 4}}
	orig := make([]Vertex, len(sites))
	copy(orig, sites)

	convexHull(sites)
	assert.Equal(t, orig, sites)
}
