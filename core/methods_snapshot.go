// File: methods_snapshot.go
// Role: Consistent read-only copies of a graph (Snapshot, Incidence).
// Determinism:
//   - Snapshot keeps vertex insertion order and edge insertion order.
// Concurrency:
//   - Read lock on the source for the duration of the copy; the result shares
//     nothing with the source.

package core

// Snapshot is a point-in-time copy of a Graph.
//
// Edge i of Edges is the i-th edge ever inserted, so indices double as
// insertion rank for tie-breaking.
type Snapshot struct {
	// Vertices holds vertex names in insertion order.
	Vertices []string

	// Edges holds edges in insertion order.
	Edges []Edge
}

// Snapshot copies vertices and edges under a single read lock, so the
// result never reflects a mutation that was only partly applied.
// Complexity: O(V + E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Snapshot{
		Vertices: make([]string, len(g.order)),
		Edges:    make([]Edge, len(g.edges)),
	}
	copy(s.Vertices, g.order)
	copy(s.Edges, g.edges)

	return s
}

// Incidence maps every vertex in s to the indices of the edges touching it,
// ascending. Vertices without edges map to nil. A self-loop is listed once.
// Complexity: O(V + E).
func (s Snapshot) Incidence() map[string][]int {
	inc := make(map[string][]int, len(s.Vertices))
	for _, v := range s.Vertices {
		inc[v] = nil
	}
	for i, e := range s.Edges {
		inc[e.From] = append(inc[e.From], i)
		if e.To != e.From {
			inc[e.To] = append(inc[e.To], i)
		}
	}

	return inc
}
