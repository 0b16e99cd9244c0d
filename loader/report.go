package loader

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Sentinel errors describing why a line did not produce an edge.
var (
	// ErrFieldCount indicates a line that does not split into exactly three fields.
	ErrFieldCount = errors.New("loader: expected 3 comma-separated fields")

	// ErrBadWeight indicates a weight that is not a base-10 integer.
	ErrBadWeight = errors.New("loader: weight is not an integer")
)

// LineError ties a problem to the 1-based input line it came from.
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error implements error.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *LineError) Unwrap() error { return e.Err }

// Report summarizes one load.
type Report struct {
	// Lines is the number of lines read.
	Lines int

	// Accepted counts edges added to the graph.
	Accepted int

	// Rejected counts well-formed lines whose edge the graph refused.
	Rejected int

	// Skipped counts malformed lines.
	Skipped int

	// NewVertices counts vertices created by this load.
	NewVertices int

	// Problems holds one *LineError per rejected or skipped line, or nil.
	Problems *multierror.Error
}

// Err returns the aggregated per-line problems, or nil when every line was accepted.
func (r Report) Err() error {
	return r.Problems.ErrorOrNil()
}

func (r *Report) addProblem(line int, text string, err error) {
	r.Problems = multierror.Append(r.Problems, &LineError{Line: line, Text: text, Err: err})
}
