package render

import (
	"os"
	"path/filepath"

	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/xCallmeEDtw/Termproject/pkg/voronoi"
)

// This is for debugging purposes only

// DebugShow renders the diagram to a temp PNG and cats it to the terminal.
func DebugShow(d *voronoi.Diagram, sites []voronoi.Vertex, box voronoi.BoundingBox) error {
	path := filepath.Join(os.TempDir(), "voronoi_debug.png")
	if err := SavePNG(path, d, sites, box); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
