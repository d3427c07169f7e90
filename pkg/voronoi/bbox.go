package voronoi

import (
	"math"
	"sort"
)

// BoundingBox is the viewport [0,W]x[0,H] every edge is clipped to.
type BoundingBox struct {
	W, H float64
}

// Create new Bounding Box
func NewBoundingBox(w, h float64) BoundingBox {
	return BoundingBox{W: w, H: h}
}

func (b BoundingBox) contains(v Vertex) bool {
	return v.X >= -1e-9 && v.X <= b.W+1e-9 && v.Y >= -1e-9 && v.Y <= b.H+1e-9
}

// intersectLine clips the infinite line P(t) = mid + t*dir against the box
// and returns the 0..2 crossing points, sorted by (x, then y).
// Near-axis directions are special-cased so the parametric solve never
// divides by a vanishing component.
func (b BoundingBox) intersectLine(mid, dir Vertex) []Vertex {
	var pts []Vertex

	if math.Abs(dir.X) < 1e-9 {
		// vertical-ish line x = mid.X
		if mid.X >= -1e-9 && mid.X <= b.W+1e-9 {
			pts = append(pts, Vertex{X: mid.X, Y: 0}, Vertex{X: mid.X, Y: b.H})
		}
		return b.uniqueOnRect(pts)
	}

	if math.Abs(dir.Y) < 1e-9 {
		// horizontal-ish line y = mid.Y
		if mid.Y >= -1e-9 && mid.Y <= b.H+1e-9 {
			pts = append(pts, Vertex{X: 0, Y: mid.Y}, Vertex{X: b.W, Y: mid.Y})
		}
		return b.uniqueOnRect(pts)
	}

	// parameters where the line crosses x=0, x=W, y=0, y=H
	candidates := []float64{
		(0 - mid.X) / dir.X,
		(b.W - mid.X) / dir.X,
		(0 - mid.Y) / dir.Y,
		(b.H - mid.Y) / dir.Y,
	}

	for _, t := range candidates {
		p := Vertex{X: mid.X + t*dir.X, Y: mid.Y + t*dir.Y}
		if b.contains(p) {
			pts = append(pts, p)
		}
	}

	return b.uniqueOnRect(pts)
}

// uniqueOnRect snaps near-boundary coordinates exactly onto the boundary,
// drops duplicates within 1e-7 and sorts the survivors by (x, y).
func (b BoundingBox) uniqueOnRect(pts []Vertex) []Vertex {
	out := make([]Vertex, 0, len(pts))
	for _, p := range pts {
		if math.Abs(p.X) < 1e-8 {
			p.X = 0
		} else if math.Abs(p.X-b.W) < 1e-8 {
			p.X = b.W
		}
		if math.Abs(p.Y) < 1e-8 {
			p.Y = 0
		} else if math.Abs(p.Y-b.H) < 1e-8 {
			p.Y = b.H
		}

		dup := false
		for _, q := range out {
			if math.Abs(q.X-p.X) < 1e-7 && math.Abs(q.Y-p.Y) < 1e-7 {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	sort.Sort(verticesByXY{vertices(out)})
	return out
}
