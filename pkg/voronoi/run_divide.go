package voronoi

import (
	"math"
	"sort"

	"github.com/xCallmeEDtw/Termproject/pkg/logger"
	"go.uber.org/zap"
)

// CreateDiagram computes the Voronoi diagram of the given sites, clipped to
// the box, with divide and conquer. Duplicate sites are allowed; they
// collapse during normalization. The result is a pure function of
// (points, box), so repeated calls on the same input are identical.
func CreateDiagram(points []Vertex, box BoundingBox, logger *logger.ZapLogger) *Diagram {
	diagram, _ := run(points, box, false, logger)
	return diagram
}

// CreateDiagramWithSteps is CreateDiagram plus the ordered MergeStep
// sequence for playback. Recording disables the exact small-case shortcuts
// so every split yields a step, even for 2 or 3 sites.
func CreateDiagramWithSteps(points []Vertex, box BoundingBox, logger *logger.ZapLogger) (*Diagram, []MergeStep) {
	return run(points, box, true, logger)
}

func run(points []Vertex, box BoundingBox, recordSteps bool, logger *logger.ZapLogger) (*Diagram, []MergeStep) {
	logger.Info("[dc] divide-and-conquer started",
		zap.Int("points", len(points)),
		zap.Float64("w", box.W), zap.Float64("h", box.H),
		zap.Bool("record-steps", recordSteps),
	)

	sites := normalizeSites(points)
	logger.Info("[dc] sites deduplicated and sorted", zap.Int("sites", len(sites)))

	if len(sites) == 0 {
		return &Diagram{}, nil
	}

	var steps []MergeStep
	v := &Voronoi{
		sites:       sites,
		box:         box,
		recordSteps: recordSteps,
		steps:       &steps,
		Logger:      logger,
	}

	diagram := v.build(0, len(sites))

	logger.Info("[dc] diagram complete",
		zap.Int("edges", len(diagram.Edges)),
		zap.Int("hull", len(diagram.Hull)),
		zap.Int("steps", len(steps)),
	)

	return diagram, steps
}

// normalizeSites dedupes sites on a 1e-6 rounding grid, keeping the first
// occurrence at each rounded key, then sorts by (x, then y). Sites closer
// than the grid collapse to one, so no edge is ever produced between
// near-coincident sites.
func normalizeSites(points []Vertex) []Vertex {
	type key struct{ x, y int64 }

	seen := make(map[key]struct{}, len(points))
	out := make([]Vertex, 0, len(points))
	for _, p := range points {
		k := key{x: int64(math.Round(p.X * 1e6)), y: int64(math.Round(p.Y * 1e6))}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}

	sort.Sort(verticesByXY{vertices(out)})
	return out
}
