package voronoi

import (
	"math"
)

// Vertex is an immutable 2-D point. Sites and edge endpoints share this type.
type Vertex struct {
	X float64
	Y float64
}

// Edge is an unordered pair of endpoints.
type Edge struct {
	Va Vertex
	Vb Vertex
}

// Eq reports whether both edges connect the same endpoints, in either order.
func (e Edge) Eq(o Edge) bool {
	return (e.Va == o.Va && e.Vb == o.Vb) || (e.Va == o.Vb && e.Vb == o.Va)
}

// Canonical returns the edge with its endpoints in (x, then y) order.
// The persisted output format relies on this ordering.
func (e Edge) Canonical() Edge {
	if e.Va.X > e.Vb.X || (e.Va.X == e.Vb.X && e.Va.Y > e.Vb.Y) {
		return Edge{Va: e.Vb, Vb: e.Va}
	}
	return e
}

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float64 {
	return math.Hypot(e.Vb.X-e.Va.X, e.Vb.Y-e.Va.Y)
}

type vertices []Vertex

func (s vertices) Len() int      { return len(s) }
func (s vertices) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

type verticesByXY struct{ vertices }

func (s verticesByXY) Less(i, j int) bool {
	if s.vertices[i].X != s.vertices[j].X {
		return s.vertices[i].X < s.vertices[j].X
	}
	return s.vertices[i].Y < s.vertices[j].Y
}

func equalWithEpsilon(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func lessThanWithEpsilon(a, b float64) bool {
	return b-a > 1e-9
}

func greaterThanWithEpsilon(a, b float64) bool {
	return a-b > 1e-9
}

func distSq(a, b Vertex) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// perpBisector returns the perpendicular bisector of segment p1-p2 as a
// (midpoint, unit direction) pair.
func perpBisector(p1, p2 Vertex) (mid, dir Vertex) {
	mid = Vertex{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
	dir = Vertex{X: p1.Y - p2.Y, Y: p2.X - p1.X}
	norm := math.Hypot(dir.X, dir.Y)
	if norm > 1e-9 {
		dir.X /= norm
		dir.Y /= norm
	}
	return mid, dir
}

// circumcenter returns the center of the circle through a, b and c.
// ok is false when the three points are collinear (near-zero determinant).
func circumcenter(a, b, c Vertex) (center Vertex, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-9 {
		return Vertex{}, false
	}
	ha := a.X*a.X + a.Y*a.Y
	hb := b.X*b.X + b.Y*b.Y
	hc := c.X*c.X + c.Y*c.Y
	center.X = (ha*(b.Y-c.Y) + hb*(c.Y-a.Y) + hc*(a.Y-b.Y)) / d
	center.Y = (ha*(c.X-b.X) + hb*(a.X-c.X) + hc*(b.X-a.X)) / d
	return center, true
}

// lerp returns the point at parameter t on segment a-b.
func lerp(a, b Vertex, t float64) Vertex {
	return Vertex{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}
