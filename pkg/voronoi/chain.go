package voronoi

// dividingChain assembles the merge boundary between sites[lo:mid] and
// sites[mid:hi]. Every cross pair contributes its bisector, clipped to the
// box and classified against the combined site range; the union of the kept
// sub-segments is the chain. Quadratic in the subset sizes, which is fine
// at demonstration scale.
func (v *Voronoi) dividingChain(lo, mid, hi int) []Edge {
	var edges []Edge

	for i := lo; i < mid; i++ {
		for j := mid; j < hi; j++ {
			bmid, dir := perpBisector(v.sites[i], v.sites[j])
			pts := v.box.intersectLine(bmid, dir)
			if len(pts) < 2 {
				continue
			}
			keep := closestPairKeep(v.sites, lo, hi, i, j)
			edges = append(edges, scanSegment(pts[0], pts[len(pts)-1], keep, chainScan)...)
		}
	}

	return edges
}
