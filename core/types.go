// Package core defines the central Graph and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// All core APIs share one sync.RWMutex: mutations take the write lock, queries
// take the read lock.
//
// This file declares Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexName indicates an empty vertex name on a graph built WithNonEmptyNames.
	ErrEmptyVertexName = errors.New("core: vertex name is empty")

	// ErrDuplicateVertex indicates that a vertex with the same name already exists.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateEdge indicates that an edge between the same endpoints already exists.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrNegativeWeight indicates a negative weight on a graph built WithNonNegativeWeights.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge represents a weighted connection between two vertices.
//
// From and To keep the orientation the edge was inserted with; queries and MST
// computations treat the edge as undirected.
type Edge struct {
	// From is the name of the vertex the edge was inserted from.
	From string

	// To is the name of the vertex the edge was inserted to.
	To string

	// Weight is the distance carried by the edge.
	Weight int64
}

// Other returns the endpoint of e opposite to name.
// For a self-loop, or when name is not an endpoint, it returns From.
func (e Edge) Other(name string) string {
	if e.From == name {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSymmetricEdges makes edge uniqueness unordered: once (A,B) exists,
// inserting (B,A) fails with ErrDuplicateEdge.
func WithSymmetricEdges() GraphOption {
	return func(g *Graph) { g.symmetric = true }
}

// WithNonNegativeWeights rejects negative edge weights with ErrNegativeWeight.
func WithNonNegativeWeights() GraphOption {
	return func(g *Graph) { g.nonNegative = true }
}

// WithNonEmptyNames rejects the empty vertex name with ErrEmptyVertexName.
// Without it "" is an ordinary, case-sensitive name like any other.
func WithNonEmptyNames() GraphOption {
	return func(g *Graph) { g.nonEmpty = true }
}

// edgeKey is an ordered (from, to) pair.
type edgeKey struct {
	from, to string
}

// Graph is the core in-memory graph data structure.
//
// mu guards every field below it. Edges live in an append-only slice, so an
// edge's index in that slice is also its insertion rank.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	symmetric   bool // unordered edge uniqueness
	nonNegative bool // reject negative weights
	nonEmpty    bool // reject the empty name

	// Storage
	order    []string            // vertex names in insertion order
	vertices map[string]struct{} // vertex name set
	edges    []Edge              // edges in insertion order

	// pairs[{from,to}] is the index in edges of the edge inserted as from→to.
	pairs map[edgeKey]int

	// incident[name] lists indices in edges touching name, ascending.
	incident map[string][]int
}

// NewGraph creates an empty Graph with the given options.
// By default, ordered edge uniqueness applies and any weight is accepted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		pairs:    make(map[edgeKey]int),
		incident: make(map[string][]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
