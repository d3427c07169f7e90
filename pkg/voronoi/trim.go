package voronoi

// trimEdges clips one sub-diagram's own edges against the merge boundary.
// The side predicate alone decides what survives: the split is by sorted
// index, not a clean half-plane, so an edge may cross the boundary several
// times and come back as multiple pieces.
func (v *Voronoi) trimEdges(edges []Edge, lo, mid, hi int, keepLeft bool) []Edge {
	if len(edges) == 0 {
		return nil
	}

	keep := sideKeep(v.sites, lo, mid, hi, keepLeft)

	var trimmed []Edge
	for _, e := range edges {
		trimmed = append(trimmed, scanSegment(e.Va, e.Vb, keep, trimScan)...)
	}
	return trimmed
}
