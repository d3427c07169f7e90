// Package render draws diagrams and merge steps to PNG and SVG. It is a
// display collaborator only; nothing here feeds back into the computation.
package render

import (
	"io"

	"github.com/fogleman/gg"

	"github.com/xCallmeEDtw/Termproject/pkg/voronoi"
)

const (
	siteRadius = 3
	edgeWidth  = 1.5
)

// Merge-step palette: left sub-diagram blue, right green, dividing chain
// red, pre-merge hulls dashed in their side's color, merged hull dashed
// purple.
const (
	colorLeft       = "#0000ff"
	colorRight      = "#008000"
	colorChain      = "#ff0000"
	colorMergedHull = "#aa00aa"
)

// newCanvas prepares a white context with a thin border rectangle.
func newCanvas(box voronoi.BoundingBox) *gg.Context {
	c := gg.NewContext(int(box.W), int(box.H))
	c.SetRGB(1, 1, 1)
	c.Clear()
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(1)
	c.DrawRectangle(0, 0, box.W, box.H)
	c.Stroke()
	return c
}

func drawSites(c *gg.Context, sites []voronoi.Vertex) {
	c.SetHexColor("#ff0000")
	for _, s := range sites {
		c.DrawCircle(s.X, s.Y, siteRadius)
		c.Fill()
	}
}

func drawEdges(c *gg.Context, edges []voronoi.Edge, hexColor string) {
	c.SetHexColor(hexColor)
	c.SetLineWidth(edgeWidth)
	for _, e := range edges {
		c.DrawLine(e.Va.X, e.Va.Y, e.Vb.X, e.Vb.Y)
		c.Stroke()
	}
}

func drawHull(c *gg.Context, hull []voronoi.Vertex, hexColor string) {
	if len(hull) < 2 {
		return
	}
	c.SetHexColor(hexColor)
	c.SetLineWidth(1)
	c.SetDash(4, 2)
	c.MoveTo(hull[0].X, hull[0].Y)
	for _, p := range hull[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.Stroke()
	c.SetDash()
}

// EncodePNG draws the final diagram (black edges, red sites, dashed hull)
// and writes it as PNG.
func EncodePNG(w io.Writer, d *voronoi.Diagram, sites []voronoi.Vertex, box voronoi.BoundingBox) error {
	c := newCanvas(box)
	drawEdges(c, d.Edges, "#000000")
	drawHull(c, d.Hull, "#000000")
	drawSites(c, sites)
	return c.EncodePNG(w)
}

// SavePNG is EncodePNG to a file path.
func SavePNG(path string, d *voronoi.Diagram, sites []voronoi.Vertex, box voronoi.BoundingBox) error {
	c := newCanvas(box)
	drawEdges(c, d.Edges, "#000000")
	drawHull(c, d.Hull, "#000000")
	drawSites(c, sites)
	return c.SavePNG(path)
}

// SaveStepPNG draws one merge step with the playback palette.
func SaveStepPNG(path string, step voronoi.MergeStep, box voronoi.BoundingBox) error {
	c := newCanvas(box)

	drawEdges(c, step.LeftEdges, colorLeft)
	drawEdges(c, step.RightEdges, colorRight)
	drawEdges(c, step.ChainEdges, colorChain)

	drawHull(c, step.LeftHull, colorLeft)
	drawHull(c, step.RightHull, colorRight)
	drawHull(c, step.MergedHull, colorMergedHull)

	// split line, light gray
	c.SetHexColor("#bbbbbb")
	c.SetLineWidth(1)
	c.SetDash(2, 4)
	c.DrawLine(step.SplitX, 0, step.SplitX, box.H)
	c.Stroke()
	c.SetDash()

	drawSites(c, step.LeftSites)
	drawSites(c, step.RightSites)

	return c.SavePNG(path)
}
