package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/xCallmeEDtw/Termproject/pkg/voronoi"
)

const (
	svgEdgeStyle = "stroke:rgb(0,0,0);stroke-width:1.5"
	svgSiteStyle = "fill:rgb(255,0,0)"
	svgHullStyle = "fill:none;stroke:rgb(0,0,0);stroke-width:1;stroke-dasharray:4 2"
)

// WriteSVG writes the diagram as an SVG document: a line per edge, a circle
// per site and an optional dashed hull polygon. Coordinates land on the
// integer pixel grid, which is plenty for display.
func WriteSVG(w io.Writer, d *voronoi.Diagram, sites []voronoi.Vertex, box voronoi.BoundingBox) {
	canvas := svg.New(w)
	canvas.Start(int(box.W), int(box.H))
	canvas.Rect(0, 0, int(box.W), int(box.H), "fill:rgb(255,255,255);stroke:rgb(0,0,0)")

	for _, e := range d.Edges {
		canvas.Line(int(e.Va.X), int(e.Va.Y), int(e.Vb.X), int(e.Vb.Y), svgEdgeStyle)
	}

	if len(d.Hull) >= 3 {
		xs := make([]int, len(d.Hull))
		ys := make([]int, len(d.Hull))
		for i, p := range d.Hull {
			xs[i] = int(p.X)
			ys[i] = int(p.Y)
		}
		canvas.Polygon(xs, ys, svgHullStyle)
	}

	for _, s := range sites {
		canvas.Circle(int(s.X), int(s.Y), siteRadius, svgSiteStyle)
	}

	canvas.End()
}
