package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/loader"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		from    string
		to      string
		weight  int64
		wantErr error
	}{
		{"plain", "A,B,5", "A", "B", 5, nil},
		{"spaces", "  Paris , Lyon ,  465 ", "Paris", "Lyon", 465, nil},
		{"plus sign", "A,B,+7", "A", "B", 7, nil},
		{"negative", "A,B,-2", "A", "B", -2, nil},
		{"zero", "A,B,0", "A", "B", 0, nil},
		{"self loop", "A,A,1", "A", "A", 1, nil},
		{"two fields", "A,B", "", "", 0, loader.ErrFieldCount},
		{"four fields", "A,B,5,6", "", "", 0, loader.ErrFieldCount},
		{"blank", "", "", "", 0, loader.ErrFieldCount},
		{"empty source", " ,B,5", "", "B", 5, nil},
		{"empty destination", "A,,5", "A", "", 5, nil},
		{"float weight", "A,B,5.5", "", "", 0, loader.ErrBadWeight},
		{"word weight", "A,B,five", "", "", 0, loader.ErrBadWeight},
		{"header", "from,to,km", "", "", 0, loader.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to, w, err := loader.ParseLine(tc.line)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.from, from)
			assert.Equal(t, tc.to, to)
			assert.Equal(t, tc.weight, w)
		})
	}
}

func TestLoad_Triangle(t *testing.T) {
	g := core.NewGraph()
	rep := loader.New(g).Load([]string{"A,B,5", "B,C,3", "A,C,10"})

	assert.Equal(t, loader.Report{Lines: 3, Accepted: 3, NewVertices: 3}, rep)
	assert.NoError(t, rep.Err())
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	d, ok := g.Distance("C", "A")
	assert.True(t, ok)
	assert.Equal(t, int64(10), d)
}

func TestLoad_MixedInput(t *testing.T) {
	g := core.NewGraph()
	lines := []string{
		"from,to,km", // header: malformed
		"A,B,5",
		"A,B,9", // duplicate ordered pair
		"B,A,7", // reverse pair coexists by default
		"A,B",   // too few fields
		"",      // blank
		",C,4",  // empty source is an ordinary name
		"C,D,x", // bad weight
		"C,D,4",
	}
	rep := loader.New(g).Load(lines)

	assert.Equal(t, 9, rep.Lines)
	assert.Equal(t, 4, rep.Accepted)
	assert.Equal(t, 1, rep.Rejected)
	assert.Equal(t, 4, rep.Skipped)
	assert.Equal(t, 5, rep.NewVertices)
	assert.Equal(t, rep.Lines, rep.Accepted+rep.Rejected+rep.Skipped)

	require.Error(t, rep.Err())
	require.Len(t, rep.Problems.Errors, 5)
	assert.ErrorIs(t, rep.Err(), core.ErrDuplicateEdge)
	assert.ErrorIs(t, rep.Err(), loader.ErrBadWeight)

	var le *loader.LineError
	require.True(t, errors.As(rep.Problems.Errors[1], &le))
	assert.Equal(t, 3, le.Line)
	assert.Equal(t, "A,B,9", le.Text)

	// Malformed lines never create vertices.
	assert.False(t, g.HasVertex("from"))
	assert.Equal(t, []string{"", "A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestLoad_EmptyNames(t *testing.T) {
	g := core.NewGraph()
	loader.LoadFromSource(g, []string{" ,B,5"})

	assert.Equal(t, []string{"", "B"}, g.Vertices())
	assert.Equal(t, []core.Edge{{From: "", To: "B", Weight: 5}}, g.Edges())

	strict := core.NewGraph(core.WithNonEmptyNames())
	rep := loader.New(strict).Load([]string{" ,B,5", "A,B,1"})
	assert.Equal(t, 1, rep.Accepted)
	assert.Equal(t, 1, rep.Rejected)
	assert.ErrorIs(t, rep.Err(), core.ErrEmptyVertexName)
	assert.Equal(t, []string{"A", "B"}, strict.Vertices())
}

func TestLoadReader_LongLine(t *testing.T) {
	g := core.NewGraph()
	in := "A,B,1\n" + strings.Repeat("x", 70000) + "\nC,D,2\n"

	rep, err := loader.New(g).LoadReader(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Lines)
	assert.Equal(t, 2, rep.Accepted)
	assert.Equal(t, 1, rep.Skipped)
	assert.ErrorIs(t, rep.Err(), loader.ErrFieldCount)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
}

func TestLoadReader_NoTrailingNewline(t *testing.T) {
	g := core.NewGraph()
	rep, err := loader.New(g).LoadReader(strings.NewReader("A,B,1\nB,C,2"))
	require.NoError(t, err)
	assert.Equal(t, loader.Report{Lines: 2, Accepted: 2, NewVertices: 3}, rep)

	rep, err = loader.New(core.NewGraph()).LoadReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, rep.Lines)
}

func TestLoad_SymmetricGraphRejectsReverse(t *testing.T) {
	g := core.NewGraph(core.WithSymmetricEdges())
	rep := loader.New(g).Load([]string{"A,B,5", "B,A,7"})

	assert.Equal(t, 1, rep.Accepted)
	assert.Equal(t, 1, rep.Rejected)
	d, _ := g.Distance("B", "A")
	assert.Equal(t, int64(5), d)
}

// TestLoad_Deterministic loads the same lines twice and diffs the stores.
func TestLoad_Deterministic(t *testing.T) {
	lines := []string{"Oslo,Bergen,463", "Bergen,Trondheim,700", "Oslo,Trondheim,495", "bad", "Oslo,Bergen,1"}

	g1, g2 := core.NewGraph(), core.NewGraph()
	r1 := loader.New(g1).Load(lines)
	r2 := loader.New(g2).Load(lines)

	if diff := cmp.Diff(g1.Vertices(), g2.Vertices()); diff != "" {
		t.Errorf("vertices differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(g1.Edges(), g2.Edges()); diff != "" {
		t.Errorf("edges differ (-first +second):\n%s", diff)
	}
	assert.Equal(t, r1.Accepted, r2.Accepted)
	assert.Equal(t, r1.Skipped, r2.Skipped)
}

func TestLoadFromSource(t *testing.T) {
	g := core.NewGraph()
	loader.LoadFromSource(g, []string{"A,B,5", "garbage", "B,C,3"})

	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 5},
		{From: "B", To: "C", Weight: 3},
	}, g.Edges())
}

func TestLoadReader_CRLF(t *testing.T) {
	g := core.NewGraph()
	rep, err := loader.New(g).LoadReader(strings.NewReader("A,B,5\r\nB,C,3\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Accepted)

	d, ok := g.Distance("B", "C")
	assert.True(t, ok)
	assert.Equal(t, int64(3), d)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,B,5\nB,C,3\nA,C,10\n"), 0o600))

	g := core.NewGraph()
	rep, err := loader.New(g).LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Accepted)

	_, err = loader.New(g).LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_LogsSkippedLines(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := core.NewGraph()
	loader.New(g, loader.WithLogger(logrus.NewEntry(logger))).Load([]string{"A,B,5", "nope"})

	var debug []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.DebugLevel {
			debug = append(debug, e)
		}
	}
	require.Len(t, debug, 1)
	assert.Equal(t, "skipping malformed line", debug[0].Message)
	assert.Equal(t, 2, debug[0].Data["line"])

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "load complete", last.Message)
	assert.Equal(t, 1, last.Data["accepted"])
}
