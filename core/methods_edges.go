// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/AddEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - Mutations under the write lock.
//   - Read queries under the read lock.

package core

import "fmt"

// InsertEdge appends the edge from→to with the given weight.
//
// Steps:
//  1. In non-negative mode, validate weight (ErrNegativeWeight).
//  2. Lock, check both endpoints exist (ErrVertexNotFound).
//  3. Check the ordered pair, plus the reverse pair in symmetric mode (ErrDuplicateEdge).
//  4. Append the edge, index the pair and record incidence on both endpoints
//     (once for a self-loop).
//
// The store is unchanged whenever an error is returned.
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(from, to string, weight int64) error {
	if g.nonNegative && weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.nonEmpty && (from == "" || to == "") {
		return ErrEmptyVertexName
	}
	if _, ok := g.vertices[from]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	key := edgeKey{from: from, to: to}
	if _, dup := g.pairs[key]; dup {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
	}
	if g.symmetric {
		if _, dup := g.pairs[edgeKey{from: to, to: from}]; dup {
			return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, to, from)
		}
	}

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.pairs[key] = idx
	g.incident[from] = append(g.incident[from], idx)
	if to != from {
		g.incident[to] = append(g.incident[to], idx)
	}

	return nil
}

// AddEdge inserts an edge and reports whether it was added.
// It returns false, leaving the store unchanged, when an endpoint is unknown,
// the pair already exists, or the weight is rejected by configuration.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) bool {
	return g.InsertEdge(from, to, weight) == nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
