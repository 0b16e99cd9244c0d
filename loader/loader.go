package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/citygraph/core"
	"github.com/sirupsen/logrus"
)

// fieldCount is the number of comma-separated fields on a data line.
const fieldCount = 3

// Option configures a Loader.
type Option func(l *Loader)

// WithLogger sets the logger used for per-line diagnostics.
func WithLogger(log *logrus.Entry) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// Loader feeds tabular lines into a single graph.
type Loader struct {
	g   *core.Graph
	log *logrus.Entry
}

// New returns a Loader writing into g. Without WithLogger, diagnostics are discarded.
func New(g *core.Graph, opts ...Option) *Loader {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	l := &Loader{g: g, log: logrus.NewEntry(quiet)}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LoadFromSource applies every line to g, best effort, with no failure signal.
func LoadFromSource(g *core.Graph, lines []string) {
	New(g).Load(lines)
}

// ParseLine splits one line into its endpoints and weight.
// Endpoints are trimmed and may be empty; whether "" is a valid name is up to
// the graph. The returned error wraps ErrFieldCount or ErrBadWeight.
func ParseLine(line string) (from, to string, weight int64, err error) {
	parts := strings.Split(line, ",")
	if len(parts) != fieldCount {
		return "", "", 0, fmt.Errorf("%w: got %d", ErrFieldCount, len(parts))
	}

	from = strings.TrimSpace(parts[0])
	to = strings.TrimSpace(parts[1])

	raw := strings.TrimSpace(parts[2])
	weight, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", "", 0, fmt.Errorf("%w: %q", ErrBadWeight, raw)
	}

	return from, to, weight, nil
}

// Load applies lines in order and reports what happened to each.
func (l *Loader) Load(lines []string) Report {
	var rep Report
	for i, line := range lines {
		l.apply(&rep, i+1, line)
	}
	l.logSummary(rep)

	return rep
}

// LoadReader reads lines from r until EOF. Lines may end in "\n" or "\r\n"
// and have no length limit; an over-long line is just another line.
// The returned error is non-nil only when reading fails; rep still covers the
// lines consumed before the failure.
func (l *Loader) LoadReader(r io.Reader) (Report, error) {
	var rep Report
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return rep, fmt.Errorf("loader: read input: %w", err)
		}
		if line == "" && err != nil {
			break
		}
		l.apply(&rep, n, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		if err != nil {
			break
		}
	}
	l.logSummary(rep)

	return rep, nil
}

// LoadFile opens path and loads it with LoadReader.
func (l *Loader) LoadFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return l.LoadReader(f)
}

func (l *Loader) apply(rep *Report, n int, line string) {
	rep.Lines++

	from, to, weight, err := ParseLine(line)
	if err != nil {
		rep.Skipped++
		rep.addProblem(n, line, err)
		l.log.WithFields(logrus.Fields{"line": n, "err": err}).Debug("skipping malformed line")
		return
	}

	if l.g.AddVertex(from) {
		rep.NewVertices++
	}
	if l.g.AddVertex(to) {
		rep.NewVertices++
	}

	if err := l.g.InsertEdge(from, to, weight); err != nil {
		rep.Rejected++
		rep.addProblem(n, line, err)
		l.log.WithFields(logrus.Fields{"line": n, "err": err}).Debug("edge rejected")
		return
	}
	rep.Accepted++
}

func (l *Loader) logSummary(rep Report) {
	l.log.WithFields(logrus.Fields{
		"lines":    rep.Lines,
		"accepted": rep.Accepted,
		"rejected": rep.Rejected,
		"skipped":  rep.Skipped,
		"vertices": rep.NewVertices,
	}).Info("load complete")
}
