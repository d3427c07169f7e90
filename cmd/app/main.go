package main

import (
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/xCallmeEDtw/Termproject/pkg/logger"
	"github.com/xCallmeEDtw/Termproject/pkg/voronoi"
	"github.com/xCallmeEDtw/Termproject/static"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	addr  = kingpin.Flag("addr", "HTTP listen address.").Default(":8080").String()
	debug = kingpin.Flag("debug", "Log per-merge debug detail.").Bool()
)

// Generate random sites inside the box
func generateRandSites(n int, width, height int, seed int64) []voronoi.Vertex {
	rng := rand.New(rand.NewSource(seed))
	sites := make([]voronoi.Vertex, n)
	for i := 0; i < n; i++ {
		sites[i] = voronoi.Vertex{
			X: float64(rng.Intn(width)),
			Y: float64(rng.Intn(height)),
		}
	}
	return sites
}

// Generate a near-square grid of n sites
func generateGridSites(n int, width, height int) []voronoi.Vertex {
	sites := make([]voronoi.Vertex, 0, n)

	rows := int(math.Sqrt(float64(n)))
	if rows < 1 {
		rows = 1
	}
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// the grid may have room for more cells than requested
			if len(sites) < n {
				x := xStep/2 + float64(j)*xStep
				y := yStep/2 + float64(i)*yStep
				sites = append(sites, voronoi.Vertex{X: x, Y: y})
			} else {
				break
			}
		}
	}

	return sites
}

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Width",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Height",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

func overlapEdges(scatter *charts.Scatter, name string, edges []voronoi.Edge, color string) {
	for _, edge := range edges {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		line.AddSeries(name, []opts.LineData{
			{Value: []float64{edge.Va.X, edge.Va.Y}},
			{Value: []float64{edge.Vb.X, edge.Vb.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
				Color: color,
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: color,
			}),
		)

		scatter.Overlap(line)
	}
}

func overlapHull(scatter *charts.Scatter, name string, hull []voronoi.Vertex, color string) {
	if len(hull) < 2 {
		return
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)

	data := make([]opts.LineData, 0, len(hull)+1)
	for _, p := range hull {
		data = append(data, opts.LineData{Value: []float64{p.X, p.Y}})
	}
	// close the polygon
	data = append(data, opts.LineData{Value: []float64{hull[0].X, hull[0].Y}})

	line.AddSeries(name, data).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: 1,
			Color: color,
			Type:  "dashed",
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: color,
		}),
	)

	scatter.Overlap(line)
}

// Convert the final diagram to an echarts scatter with line overlays
func diagramToEcharts(sites []voronoi.Vertex, diagram *voronoi.Diagram) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0)
	for _, site := range sites {
		points = append(points, opts.ScatterData{
			Value: []float64{site.X, site.Y},
		})
	}

	prepareScatter(scatter, "Voronoi diagram (divide & conquer)")

	scatter.AddSeries("Sites", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	overlapEdges(scatter, "Edges", diagram.Edges, "white")
	overlapHull(scatter, "Hull", diagram.Hull, "#aa00aa")

	return scatter
}

// Convert one merge step to an echarts scatter, playback palette:
// left blue, right green, chain red, merged hull purple.
func stepToEcharts(idx int, step voronoi.MergeStep) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, fmt.Sprintf("Merge step %d (split x=%.1f)", idx+1, step.SplitX))

	leftPoints := make([]opts.ScatterData, 0, len(step.LeftSites))
	for _, site := range step.LeftSites {
		leftPoints = append(leftPoints, opts.ScatterData{Value: []float64{site.X, site.Y}})
	}
	rightPoints := make([]opts.ScatterData, 0, len(step.RightSites))
	for _, site := range step.RightSites {
		rightPoints = append(rightPoints, opts.ScatterData{Value: []float64{site.X, site.Y}})
	}

	scatter.AddSeries("Left sites", leftPoints).
		SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{Color: "blue"}))
	scatter.AddSeries("Right sites", rightPoints).
		SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{Color: "green"}))

	overlapEdges(scatter, "Left edges", step.LeftEdges, "blue")
	overlapEdges(scatter, "Right edges", step.RightEdges, "green")
	overlapEdges(scatter, "Dividing chain", step.ChainEdges, "red")

	overlapHull(scatter, "Left hull", step.LeftHull, "blue")
	overlapHull(scatter, "Right hull", step.RightHull, "green")
	overlapHull(scatter, "Merged hull", step.MergedHull, "#aa00aa")

	return scatter
}

// http handler: form in, diagram (and optional merge steps) out
func diagramHandler(w http.ResponseWriter, r *http.Request) {
	width := 1000
	height := 1000
	numSites := 12
	var isRandom bool
	var showSteps bool
	seed := time.Now().UnixNano()

	if r.Method == http.MethodPost {
		r.ParseForm()
		width, _ = strconv.Atoi(r.FormValue("width"))
		height, _ = strconv.Atoi(r.FormValue("height"))
		numSites, _ = strconv.Atoi(r.FormValue("sites"))
		isRandom = r.FormValue("random") == "true"
		showSteps = r.FormValue("steps") == "true"
		if s, err := strconv.ParseInt(r.FormValue("seed"), 10, 64); err == nil {
			seed = s
		}
	}

	var sites []voronoi.Vertex
	if isRandom {
		sites = generateRandSites(numSites, width, height, seed)
	} else {
		sites = generateGridSites(numSites, width, height)
	}

	box := voronoi.NewBoundingBox(float64(width), float64(height))

	var log *logger.ZapLogger
	if *debug {
		log = logger.NewDebug()
	} else {
		log = logger.New()
	}
	defer log.ClearLogs()

	var diagram *voronoi.Diagram
	var steps []voronoi.MergeStep
	if showSteps {
		diagram, steps = voronoi.CreateDiagramWithSteps(sites, box, log)
	} else {
		diagram = voronoi.CreateDiagram(sites, box, log)
	}

	fmt.Fprintln(w, static.Part1)

	scatter := diagramToEcharts(sites, diagram)
	if err := scatter.Render(w); err != nil {
		fmt.Println("diagram render error:", err)
	}

	for i, step := range steps {
		chart := stepToEcharts(i, step)
		if err := chart.Render(w); err != nil {
			fmt.Println("step render error:", err)
		}
	}

	fmt.Fprintln(w, static.Part2)

	// embed the run's log into the page
	for _, entry := range log.Logs {
		fmt.Fprintln(w, entry)
	}

	fmt.Fprintln(w, static.Part3)
}

func main() {
	kingpin.Parse()

	http.HandleFunc("/", diagramHandler)
	fmt.Println("Listening on", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		fmt.Println("Err ListenAndServe", err)
	}
}
