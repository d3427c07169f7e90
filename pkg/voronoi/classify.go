package voronoi

import (
	"math"
)

// keepFunc decides whether a point on a candidate segment belongs to the
// output. Both the dividing-chain and trimming predicates fit this shape.
type keepFunc func(p Vertex) bool

// scanParams tunes the sample-then-bisect run extractor. Longer segments
// get proportionally more samples; keep<->drop transitions are refined with
// binary search so adjacent output segments meet without sampling gaps.
type scanParams struct {
	unitsPerSample float64
	minSamples     int
	bisectRounds   int
	minLength      float64
}

// Parameter sets carried over from the two classification call sites:
// chain synthesis samples denser bisection, trimming refines further.
var (
	chainScan = scanParams{unitsPerSample: 4, minSamples: 60, bisectRounds: 20, minLength: 1e-5}
	trimScan  = scanParams{unitsPerSample: 8, minSamples: 60, bisectRounds: 30, minLength: 1e-6}
)

// scanSegment samples keep across segment a-b, locates every keep<->drop
// boundary by bisection and emits one edge per maximal keep run. Runs
// shorter than p.minLength are dropped.
func scanSegment(a, b Vertex, keep keepFunc, p scanParams) []Edge {
	segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
	if segLen < 1e-9 {
		return nil
	}

	samples := int(segLen / p.unitsPerSample)
	if samples < p.minSamples {
		samples = p.minSamples
	}

	ts := make([]float64, samples)
	flags := make([]bool, samples)
	for i := range ts {
		ts[i] = float64(i) / float64(samples-1)
		flags[i] = keep(lerp(a, b, ts[i]))
	}

	// bisect narrows [tKeep, tDrop] onto the transition, returning the
	// keep-side bound.
	bisect := func(tKeep, tDrop float64) float64 {
		for r := 0; r < p.bisectRounds; r++ {
			tm := 0.5 * (tKeep + tDrop)
			if keep(lerp(a, b, tm)) {
				tKeep = tm
			} else {
				tDrop = tm
			}
		}
		return tKeep
	}

	var out []Edge
	emit := func(t0, t1 float64) {
		e := Edge{Va: lerp(a, b, t0), Vb: lerp(a, b, t1)}
		if e.Length() > p.minLength {
			out = append(out, e)
		}
	}

	start := -1.0
	for i := 0; i < samples-1; i++ {
		k0, k1 := flags[i], flags[i+1]
		if k0 && start < 0 {
			start = ts[i]
		}
		if k0 == k1 {
			continue
		}
		if k0 {
			// leaving the keep run
			emit(start, bisect(ts[i], ts[i+1]))
			start = -1
		} else {
			// entering a keep run
			start = bisect(ts[i+1], ts[i])
		}
	}
	if start >= 0 && flags[samples-1] {
		emit(start, 1)
	}

	return out
}

// closestPairKeep builds the dividing-chain predicate for site pair (ia, ib):
// a point is kept when ia and ib are its two nearest sites among
// sites[lo:hi], strictly closer than the third-nearest by a small margin.
// Sites are compared by index, never by coordinates.
func closestPairKeep(sites []Vertex, lo, hi, ia, ib int) keepFunc {
	return func(p Vertex) bool {
		// partial selection of the three nearest sites
		d0, d1, d2 := math.Inf(1), math.Inf(1), math.Inf(1)
		i0, i1 := -1, -1
		for i := lo; i < hi; i++ {
			d := distSq(p, sites[i])
			switch {
			case d < d0:
				d2, d1, d0 = d1, d0, d
				i1, i0 = i0, i
			case d < d1:
				d2, d1 = d1, d
				i1 = i
			case d < d2:
				d2 = d
			}
		}

		if i1 < 0 {
			return true
		}
		pairMatch := (i0 == ia && i1 == ib) || (i0 == ib && i1 == ia)
		if !pairMatch {
			return false
		}
		// damp jitter near-equidistant to a third site
		if !math.IsInf(d2, 1) && d0 >= d2-1e-7 {
			return false
		}
		return true
	}
}

// sideKeep builds the trimming predicate. The side value
// f = distSq(nearest right site) - distSq(nearest left site) is positive on
// the left side of the merge boundary; each sub-diagram keeps its own side
// plus a thin band around f = 0.
func sideKeep(sites []Vertex, lo, mid, hi int, keepLeft bool) keepFunc {
	const tol = 1e-6
	return func(p Vertex) bool {
		dL := math.Inf(1)
		for i := lo; i < mid; i++ {
			if d := distSq(p, sites[i]); d < dL {
				dL = d
			}
		}
		dR := math.Inf(1)
		for i := mid; i < hi; i++ {
			if d := distSq(p, sites[i]); d < dR {
				dR = d
			}
		}
		f := dR - dL
		if keepLeft {
			return f >= -tol
		}
		return f <= tol
	}
}
