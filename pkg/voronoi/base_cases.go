package voronoi

// Exact solvers for the smallest site counts. Recursion short-circuits to
// these when step recording is off; the sampled generic path handles the
// same inputs otherwise and agrees within classification tolerance.

// twoSiteEdges returns the clipped perpendicular bisector of two sites.
// Coincident sites yield no edge.
func twoSiteEdges(a, b Vertex, box BoundingBox) []Edge {
	if equalWithEpsilon(a.X, b.X) && equalWithEpsilon(a.Y, b.Y) {
		return nil
	}

	mid, dir := perpBisector(a, b)
	pts := box.intersectLine(mid, dir)
	if len(pts) < 2 {
		return nil
	}
	return []Edge{{Va: pts[0], Vb: pts[len(pts)-1]}}
}

// threeSiteEdges solves three sites sites[lo:lo+3] exactly. The regular
// case extends each pair's bisector direction from the circumcenter to the
// box boundary and keeps the valid ray; collinear triples fall back to the
// generic pairwise path (independent bisectors, clipped and classified).
func threeSiteEdges(sites []Vertex, lo int, box BoundingBox) []Edge {
	hi := lo + 3
	var edges []Edge

	cc, ok := circumcenter(sites[lo], sites[lo+1], sites[lo+2])
	if !ok {
		for i := lo; i < hi; i++ {
			for j := i + 1; j < hi; j++ {
				mid, dir := perpBisector(sites[i], sites[j])
				pts := box.intersectLine(mid, dir)
				if len(pts) < 2 {
					continue
				}
				keep := closestPairKeep(sites, lo, hi, i, j)
				edges = append(edges, scanSegment(pts[0], pts[len(pts)-1], keep, chainScan)...)
			}
		}
		return edges
	}

	for i := lo; i < hi; i++ {
		for j := i + 1; j < hi; j++ {
			_, dir := perpBisector(sites[i], sites[j])
			pts := box.intersectLine(cc, dir)
			if len(pts) < 2 {
				continue
			}
			keep := closestPairKeep(sites, lo, hi, i, j)
			edges = append(edges, scanSegment(pts[0], pts[len(pts)-1], keep, chainScan)...)
		}
	}
	return edges
}
