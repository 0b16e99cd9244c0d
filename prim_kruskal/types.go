// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Prim and Kruskal algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citygraph/core"
)

// ErrInvalidGraph indicates that a nil graph was passed.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Only Kruskal reports it; Prim
// returns the tree of the root's component instead.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// StartPolicy picks Prim's start vertex when no explicit Root is given.
type StartPolicy int

const (
	// StartInsertion starts from the first vertex ever inserted.
	StartInsertion StartPolicy = iota

	// StartSorted starts from the lexicographically smallest vertex name.
	StartSorted
)

// String implements fmt.Stringer.
func (p StartPolicy) String() string {
	switch p {
	case StartInsertion:
		return "insertion"
	case StartSorted:
		return "sorted"
	default:
		return fmt.Sprintf("StartPolicy(%d)", int(p))
	}
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Prim from the first inserted vertex).
//
// Fields:
//
//	Method string      — one of MethodPrim or MethodKruskal.
//	Root   string      — start vertex for Prim; ignored by Kruskal.
//	Start  StartPolicy — how Prim picks its start vertex when Root is empty.
//
// Complexity: O(E log E) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string

	// Start picks Prim's start vertex when Root is empty.
	Start StartPolicy
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithStart returns an Option that sets the start policy used when Root is empty.
func WithStart(p StartPolicy) Option {
	return func(opts *MSTOptions) {
		opts.Start = p
	}
}

// DefaultOptions returns MSTOptions initialized for Prim:
//
//	– Method = MethodPrim
//	– Root   = "" (resolved by Start)
//	– Start  = StartInsertion.
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   "",
		Start:  StartInsertion,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(graph).
//	– If opts.Method == MethodPrim:    calls Prim(graph, opts.Root), or grows
//	                                    from the vertex chosen by opts.Start when Root is empty.
//	– Otherwise:                        returns ErrUnknownMethod.
//
// Returns:
//
//	[]core.Edge — slice of edges in MST (empty if graph has no edges).
//	int64       — total weight of MST (zero if no edges).
//	error       — non-nil if computation cannot proceed.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		if opts.Root != "" {
			return Prim(graph, opts.Root)
		}
		if graph == nil {
			return nil, 0, ErrInvalidGraph
		}
		s := graph.Snapshot()
		start, ok := startVertex(s, opts.Start)
		if !ok {
			return []core.Edge{}, 0, nil
		}
		mst, total := grow(s, start)

		return mst, total, nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// Spanning reports whether mst connects all vertexCount vertices.
// An empty graph is trivially spanned.
func Spanning(vertexCount int, mst []core.Edge) bool {
	if vertexCount == 0 {
		return true
	}

	return len(mst) == vertexCount-1
}

// startVertex resolves the start vertex of s under policy p.
// ok is false when s has no vertices.
func startVertex(s core.Snapshot, p StartPolicy) (string, bool) {
	if len(s.Vertices) == 0 {
		return "", false
	}
	start := s.Vertices[0]
	if p == StartSorted {
		for _, v := range s.Vertices[1:] {
			if v < start {
				start = v
			}
		}
	}

	return start, true
}
