package voronoi

import (
	"github.com/xCallmeEDtw/Termproject/pkg/dbg"
	"github.com/xCallmeEDtw/Termproject/pkg/logger"
	"go.uber.org/zap"
)

// Voronoi carries the shared read-only state of one computation: the
// deduplicated, (x,y)-sorted site array and the clipping box. Recursive
// calls address sites through contiguous [lo,hi) index ranges, so site
// identity is always an index into this array. The only mutable state is
// the append-only step sink, controlled by an explicit recording flag.
type Voronoi struct {
	sites []Vertex
	box   BoundingBox

	recordSteps bool
	steps       *[]MergeStep

	Logger *logger.ZapLogger
}

// Diagram is the owned result of one recursive call: the clipped edge set
// and the convex hull of the generating sites.
type Diagram struct {
	Edges []Edge
	Hull  []Vertex
}

// MergeStep records one divide-and-conquer merge level for stepwise
// playback. Steps are appended post-order: all deeper merges before their
// parent, left subtree before right. Nothing in the algorithm reads them
// back.
type MergeStep struct {
	LeftEdges  []Edge
	RightEdges []Edge
	ChainEdges []Edge

	LeftHull   []Vertex
	RightHull  []Vertex
	MergedHull []Vertex

	SplitX     float64
	LeftSites  []Vertex
	RightSites []Vertex
}

// build computes the diagram of sites[lo:hi]. Each call returns an owned
// Diagram; nothing is shared across siblings except the step sink.
func (v *Voronoi) build(lo, hi int) *Diagram {
	n := hi - lo

	if n == 1 {
		return &Diagram{Hull: []Vertex{v.sites[lo]}}
	}

	// Exact small solvers apply only when not recording: recorded builds
	// bottom out at n=1 so that every split contributes a MergeStep.
	if !v.recordSteps {
		if n == 2 {
			return &Diagram{
				Edges: twoSiteEdges(v.sites[lo], v.sites[lo+1], v.box),
				Hull:  convexHull(v.sites[lo:hi]),
			}
		}
		if n == 3 {
			return &Diagram{
				Edges: threeSiteEdges(v.sites, lo, v.box),
				Hull:  convexHull(v.sites[lo:hi]),
			}
		}
	}

	// Index-midpoint split. The nominal split coordinate is the mean x of
	// the two sites straddling the cut; it is informational only, trimming
	// never depends on it.
	mid := lo + n/2
	splitX := (v.sites[mid-1].X + v.sites[mid].X) / 2

	left := v.build(lo, mid)
	right := v.build(mid, hi)

	return v.merge(left, right, lo, mid, hi, splitX)
}

// merge combines two sub-diagrams: synthesize the dividing chain from all
// cross-pair bisectors, trim each side's own edges against it, and
// recompute the hull of the combined sites from scratch.
func (v *Voronoi) merge(left, right *Diagram, lo, mid, hi int, splitX float64) *Diagram {
	v.Logger.Debug("[dc-merge] merging sub-diagrams",
		zap.String("left", dbg.Name(left)),
		zap.String("right", dbg.Name(right)),
		zap.Int("lo", lo), zap.Int("mid", mid), zap.Int("hi", hi),
		zap.Float64("splitX", splitX),
	)

	chain := v.dividingChain(lo, mid, hi)
	trimmedLeft := v.trimEdges(left.Edges, lo, mid, hi, true)
	trimmedRight := v.trimEdges(right.Edges, lo, mid, hi, false)

	hull := convexHull(v.sites[lo:hi])

	edges := make([]Edge, 0, len(trimmedLeft)+len(trimmedRight)+len(chain))
	edges = append(edges, trimmedLeft...)
	edges = append(edges, trimmedRight...)
	edges = append(edges, chain...)

	v.Logger.Debug("[dc-merge] merge done",
		zap.Int("chain", len(chain)),
		zap.Int("left-kept", len(trimmedLeft)),
		zap.Int("right-kept", len(trimmedRight)),
		zap.Int("hull", len(hull)),
	)

	if v.recordSteps {
		leftSites := make([]Vertex, mid-lo)
		copy(leftSites, v.sites[lo:mid])
		rightSites := make([]Vertex, hi-mid)
		copy(rightSites, v.sites[mid:hi])

		*v.steps = append(*v.steps, MergeStep{
			LeftEdges:  trimmedLeft,
			RightEdges: trimmedRight,
			ChainEdges: chain,
			LeftHull:   left.Hull,
			RightHull:  right.Hull,
			MergedHull: hull,
			SplitX:     splitX,
			LeftSites:  leftSites,
			RightSites: rightSites,
		})
	}

	return &Diagram{Edges: edges, Hull: hull}
}
