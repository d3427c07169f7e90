package batch

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xCallmeEDtw/Termproject/pkg/voronoi"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReaderBatches(t *testing.T) {
	path := writeTemp(t, `
# demo test data
3
100 100
200 50

# comments and blanks may appear anywhere
300 300
2
10 20
30 40
0
`)

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	first, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, []voronoi.Vertex{{X: 100, Y: 100}, {X: 200, Y: 50}, {X: 300, Y: 300}}, first)

	second, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, []voronoi.Vertex{{X: 10, Y: 20}, {X: 30, Y: 40}}, second)

	_, err = r.Next()
	assert.Equal(t, ErrStopped, err)
}

func TestReaderEOF(t *testing.T) {
	path := writeTemp(t, "1\n5 5\n")

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderTruncatedBatch(t *testing.T) {
	path := writeTemp(t, "3\n1 2\n3 4\n")

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected EOF")
}

func TestReaderBadPoint(t *testing.T) {
	path := writeTemp(t, "# header\n2\n1 2\nnope 4\n")

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestReaderMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestWriteReadResultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	sites := []voronoi.Vertex{{X: 500.9, Y: 10.2}, {X: 3.7, Y: 8.1}}
	edges := []voronoi.Edge{
		{Va: voronoi.Vertex{X: 300, Y: 600}, Vb: voronoi.Vertex{X: 300, Y: 0}},
		{Va: voronoi.Vertex{X: 100, Y: 50}, Vb: voronoi.Vertex{X: 20, Y: 70}},
	}

	require.NoError(t, WriteResult(path, sites, edges))

	gotSites, gotEdges, err := ReadResult(path)
	require.NoError(t, err)

	// coordinates come back integer-truncated, sorted lexicographically,
	// with each edge's first endpoint lexicographically first
	assert.Equal(t, []voronoi.Vertex{{X: 3, Y: 8}, {X: 500, Y: 10}}, gotSites)
	assert.Equal(t, []voronoi.Edge{
		{Va: voronoi.Vertex{X: 20, Y: 70}, Vb: voronoi.Vertex{X: 100, Y: 50}},
		{Va: voronoi.Vertex{X: 300, Y: 0}, Vb: voronoi.Vertex{X: 300, Y: 600}},
	}, gotEdges)
}

func TestReadResultUnknownRecord(t *testing.T) {
	path := writeTemp(t, "P 1 2\nX 3 4\n")

	_, _, err := ReadResult(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown record")
}
