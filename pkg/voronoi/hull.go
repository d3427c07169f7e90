package voronoi

import (
	"sort"
)

// cross returns the z component of (a-o) x (b-o).
func cross(o, a, b Vertex) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// convexHull builds the convex hull of the given sites with a monotone
// chain, in counter-clockwise order. The cross <= 0 pop excludes collinear
// interior points. Inputs of size <= 2 are returned as-is.
func convexHull(sites []Vertex) []Vertex {
	if len(sites) <= 2 {
		out := make([]Vertex, len(sites))
		copy(out, sites)
		return out
	}

	sorted := make([]Vertex, len(sites))
	copy(sorted, sites)
	sort.Sort(verticesByXY{vertices(sorted)})

	lower := make([]Vertex, 0, len(sorted))
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Vertex, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}
