// File: methods_adjacent.go
// Role: Neighborhood and weight lookups (Neighbors, Distance).
// Determinism:
//   - Neighbors() returns incident edges in insertion order.
//   - Distance() resolves parallel (A,B)/(B,A) edges to the earliest inserted one.
// Concurrency:
//   - Read lock only.

package core

import "fmt"

// Neighbors returns every edge touching name, in insertion order.
// A self-loop appears once.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d), where d is the number of incident edges.
func (g *Graph) Neighbors(name string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}
	idxs := g.incident[name]
	out := make([]Edge, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, g.edges[i])
	}

	return out, nil
}

// Distance returns the weight of the edge joining from and to in either
// orientation. ok is false when no such edge exists, including when either
// name is unknown.
//
// When both from→to and to→from are stored, the one inserted first wins.
// Complexity: O(1).
func (g *Graph) Distance(from, to string) (weight int64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	fwd, hasFwd := g.pairs[edgeKey{from: from, to: to}]
	rev, hasRev := g.pairs[edgeKey{from: to, to: from}]
	switch {
	case hasFwd && hasRev:
		if rev < fwd {
			return g.edges[rev].Weight, true
		}
		return g.edges[fwd].Weight, true
	case hasFwd:
		return g.edges[fwd].Weight, true
	case hasRev:
		return g.edges[rev].Weight, true
	default:
		return 0, false
	}
}
