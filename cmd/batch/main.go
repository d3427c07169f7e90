// Batch runner: reads count-prefixed site batches from a test-data file,
// computes each diagram, writes P/E result files and optional PNG/SVG
// renders, and prints a one-line summary per batch.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/xCallmeEDtw/Termproject/pkg/batch"
	"github.com/xCallmeEDtw/Termproject/pkg/logger"
	"github.com/xCallmeEDtw/Termproject/pkg/render"
	"github.com/xCallmeEDtw/Termproject/pkg/voronoi"
)

var (
	in     = kingpin.Flag("in", "Input test-data file.").Required().String()
	outDir = kingpin.Flag("out", "Output directory for results.").Default(".").String()
	width  = kingpin.Flag("width", "Box width.").Default("600").Float64()
	height = kingpin.Flag("height", "Box height.").Default("600").Float64()
	png    = kingpin.Flag("png", "Also render each diagram to PNG.").Bool()
	svgOut = kingpin.Flag("svg", "Also render each diagram to SVG.").Bool()
	steps  = kingpin.Flag("steps", "Also render per-merge step PNGs.").Bool()
	debug  = kingpin.Flag("debug", "Log per-merge debug detail.").Bool()
)

func main() {
	kingpin.Parse()

	if err := runBatches(); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}
}

func runBatches() error {
	reader, err := batch.Open(*in)
	if err != nil {
		return err
	}
	defer reader.Close()

	var log *logger.ZapLogger
	if *debug {
		log = logger.NewDebug()
	} else {
		log = logger.New()
	}

	box := voronoi.NewBoundingBox(*width, *height)

	for idx := 1; ; idx++ {
		sites, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err == batch.ErrStopped {
			fmt.Println(aurora.Yellow("stop signal, done"))
			break
		}
		if err != nil {
			return err
		}

		start := time.Now()

		var diagram *voronoi.Diagram
		var mergeSteps []voronoi.MergeStep
		if *steps {
			diagram, mergeSteps = voronoi.CreateDiagramWithSteps(sites, box, log)
		} else {
			diagram = voronoi.CreateDiagram(sites, box, log)
		}

		elapsed := time.Since(start)

		if err := writeOutputs(idx, sites, diagram, mergeSteps, box); err != nil {
			return err
		}

		fmt.Printf("%s sites=%s edges=%s %s\n",
			aurora.Cyan(fmt.Sprintf("#%03d", idx)),
			aurora.Green(fmt.Sprintf("%d", len(sites))),
			aurora.Green(fmt.Sprintf("%d", len(diagram.Edges))),
			aurora.Gray(12, elapsed.String()),
		)
	}

	return nil
}

func writeOutputs(idx int, sites []voronoi.Vertex, diagram *voronoi.Diagram, mergeSteps []voronoi.MergeStep, box voronoi.BoundingBox) error {
	base := filepath.Join(*outDir, fmt.Sprintf("%03d", idx))

	if err := batch.WriteResult(base+".txt", sites, diagram.Edges); err != nil {
		return err
	}

	if *png {
		if err := render.SavePNG(base+".png", diagram, sites, box); err != nil {
			return errors.Wrapf(err, "render %s.png", base)
		}
	}

	if *svgOut {
		f, err := os.Create(base + ".svg")
		if err != nil {
			return errors.Wrapf(err, "create %s.svg", base)
		}
		render.WriteSVG(f, diagram, sites, box)
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "close %s.svg", base)
		}
	}

	for i, step := range mergeSteps {
		path := fmt.Sprintf("%s_step%02d.png", base, i+1)
		if err := render.SaveStepPNG(path, step, box); err != nil {
			return errors.Wrapf(err, "render %s", path)
		}
	}

	return nil
}
