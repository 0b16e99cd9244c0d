// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only configuration getters and the Stats() summary.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a point-in-time summary of a Graph's configuration and contents.
type GraphStats struct {
	SymmetricEdges     bool // unordered edge uniqueness
	NonNegativeWeights bool // negative weights rejected
	NonEmptyNames      bool // empty vertex name rejected

	VertexCount   int // number of vertices
	EdgeCount     int // number of edges
	SelfLoops     int // edges with From == To
	NegativeEdges int // edges with Weight < 0
	TotalWeight   int64
}

// SymmetricEdges reports whether edge uniqueness ignores orientation.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) SymmetricEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.symmetric
}

// NonNegativeWeights reports whether negative weights are rejected.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) NonNegativeWeights() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nonNegative
}

// NonEmptyNames reports whether the empty vertex name is rejected.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) NonEmptyNames() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nonEmpty
}

// Stats produces a read-only summary of flags and catalog sizes in one pass
// over the edge list.
// Complexity: O(E). Concurrency: read lock for the whole scan.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		SymmetricEdges:     g.symmetric,
		NonNegativeWeights: g.nonNegative,
		NonEmptyNames:      g.nonEmpty,
		VertexCount:        len(g.order),
		EdgeCount:          len(g.edges),
	}
	for _, e := range g.edges {
		if e.From == e.To {
			stats.SelfLoops++
		}
		if e.Weight < 0 {
			stats.NegativeEdges++
		}
		stats.TotalWeight += e.Weight
	}

	return stats
}
