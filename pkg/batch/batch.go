// Package batch reads count-prefixed site batches and reads/writes the
// P/E result file format.
//
// Input files hold one or more batches. Blank lines and lines starting
// with '#' are skipped everywhere. A batch is a count line n followed by
// n "x y" lines; a count of 0 is an explicit stop signal.
//
// Result files hold "P x y" site lines followed by "E x1 y1 x2 y2" edge
// lines, coordinates truncated to integers, both groups sorted
// lexicographically.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/xCallmeEDtw/Termproject/pkg/voronoi"
)

// ErrStopped is returned by Reader.Next when a batch count of 0 is read.
var ErrStopped = errors.New("batch: stop signal (count 0)")

// Reader iterates over the batches of one input file.
type Reader struct {
	f    *os.File
	sc   *bufio.Scanner
	line int
	path string
}

// Open opens an input file for batch iteration.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "batch: open %s", path)
	}
	return &Reader{f: f, sc: bufio.NewScanner(f), path: path}, nil
}

func (r *Reader) Close() error {
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	return err
}

// nextDataLine returns the next non-blank, non-comment line, or io.EOF.
func (r *Reader) nextDataLine() (string, error) {
	for r.sc.Scan() {
		r.line++
		s := strings.TrimSpace(r.sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		return s, nil
	}
	if err := r.sc.Err(); err != nil {
		return "", errors.Wrapf(err, "batch: read %s", r.path)
	}
	return "", io.EOF
}

// Next returns the sites of the next batch. It returns io.EOF when the
// file is exhausted and ErrStopped when a count of 0 is read.
func (r *Reader) Next() ([]voronoi.Vertex, error) {
	s, err := r.nextDataLine()
	if err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(strings.Fields(s)[0])
	if err != nil {
		return nil, errors.Wrapf(err, "batch: %s line %d: bad count %q", r.path, r.line, s)
	}
	if n == 0 {
		return nil, ErrStopped
	}

	sites := make([]voronoi.Vertex, 0, n)
	for i := 0; i < n; i++ {
		s, err := r.nextDataLine()
		if err == io.EOF {
			return nil, errors.Errorf("batch: %s: unexpected EOF, got %d of %d points", r.path, i, n)
		}
		if err != nil {
			return nil, err
		}
		p, err := parsePoint(s)
		if err != nil {
			return nil, errors.Wrapf(err, "batch: %s line %d", r.path, r.line)
		}
		sites = append(sites, p)
	}
	return sites, nil
}

func parsePoint(s string) (voronoi.Vertex, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return voronoi.Vertex{}, errors.Errorf("bad point %q", s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return voronoi.Vertex{}, errors.Wrapf(err, "bad x %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return voronoi.Vertex{}, errors.Wrapf(err, "bad y %q", fields[1])
	}
	return voronoi.Vertex{X: x, Y: y}, nil
}

// WriteResult writes sites and edges in the P/E format: coordinates
// integer-truncated, each edge canonicalized so its first endpoint is
// lexicographically first, P lines sorted by (x,y), E lines by
// (x1,y1,x2,y2).
func WriteResult(path string, sites []voronoi.Vertex, edges []voronoi.Edge) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "batch: create %s", path)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	sortedSites := make([]voronoi.Vertex, len(sites))
	copy(sortedSites, sites)
	sort.Slice(sortedSites, func(i, j int) bool {
		if sortedSites[i].X != sortedSites[j].X {
			return sortedSites[i].X < sortedSites[j].X
		}
		return sortedSites[i].Y < sortedSites[j].Y
	})

	sortedEdges := make([]voronoi.Edge, len(edges))
	for i, e := range edges {
		sortedEdges[i] = e.Canonical()
	}
	sort.Slice(sortedEdges, func(i, j int) bool {
		a, b := sortedEdges[i], sortedEdges[j]
		if a.Va.X != b.Va.X {
			return a.Va.X < b.Va.X
		}
		if a.Va.Y != b.Va.Y {
			return a.Va.Y < b.Va.Y
		}
		if a.Vb.X != b.Vb.X {
			return a.Vb.X < b.Vb.X
		}
		return a.Vb.Y < b.Vb.Y
	})

	w := bufio.NewWriter(f)
	for _, p := range sortedSites {
		fmt.Fprintf(w, "P %d %d\n", int(p.X), int(p.Y))
	}
	for _, e := range sortedEdges {
		fmt.Fprintf(w, "E %d %d %d %d\n", int(e.Va.X), int(e.Va.Y), int(e.Vb.X), int(e.Vb.Y))
	}
	if ferr := w.Flush(); ferr != nil {
		return errors.Wrapf(ferr, "batch: write %s", path)
	}
	return nil
}

// ReadResult reads a P/E result file back.
func ReadResult(path string) (sites []voronoi.Vertex, edges []voronoi.Edge, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "batch: open %s", path)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		fields := strings.Fields(s)
		switch fields[0] {
		case "P":
			if len(fields) < 3 {
				return nil, nil, errors.Errorf("batch: %s line %d: bad P line %q", path, line, s)
			}
			p, perr := parsePoint(fields[1] + " " + fields[2])
			if perr != nil {
				return nil, nil, errors.Wrapf(perr, "batch: %s line %d", path, line)
			}
			sites = append(sites, p)
		case "E":
			if len(fields) < 5 {
				return nil, nil, errors.Errorf("batch: %s line %d: bad E line %q", path, line, s)
			}
			var coords [4]float64
			for i := 0; i < 4; i++ {
				c, cerr := strconv.ParseFloat(fields[i+1], 64)
				if cerr != nil {
					return nil, nil, errors.Wrapf(cerr, "batch: %s line %d: bad coordinate %q", path, line, fields[i+1])
				}
				coords[i] = c
			}
			edges = append(edges, voronoi.Edge{
				Va: voronoi.Vertex{X: coords[0], Y: coords[1]},
				Vb: voronoi.Vertex{X: coords[2], Y: coords[3]},
			})
		default:
			return nil, nil, errors.Errorf("batch: %s line %d: unknown record %q", path, line, fields[0])
		}
	}
	if serr := sc.Err(); serr != nil {
		return nil, nil, errors.Wrapf(serr, "batch: read %s", path)
	}
	return sites, edges, nil
}
