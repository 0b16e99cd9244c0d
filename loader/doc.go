// Package loader populates a core.Graph from tabular text.
//
// Each input line has the shape
//
//	<source>,<destination>,<integer weight>
//
// The line is split on every comma and must yield exactly three fields. Fields
// are trimmed of surrounding whitespace and the weight must parse as a base-10
// integer with an optional sign. Both endpoints are then inserted (idempotently)
// and the edge insertion is attempted. A blank endpoint is the empty name,
// which the graph accepts unless it was built with core.WithNonEmptyNames.
//
// Loading is best effort. A malformed line is skipped, a rejected edge (for
// example a duplicate ordered pair) is counted, and processing always moves on
// to the next line. Per-line problems are collected in a Report and are never
// returned as errors; only I/O failures are.
//
// There is no header handling and no quoting: a header row such as
// "from,to,km" is simply a malformed line because "km" is not an integer.
//
// Example:
//
//	g := core.NewGraph()
//	rep := loader.New(g).Load([]string{"A,B,5", "B,C,3", "A,C,10"})
//	fmt.Println(rep.Accepted) // 3
package loader
