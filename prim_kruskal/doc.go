// Package prim_kruskal computes Minimum Spanning Trees (MST) over a *core.Graph
// of places and distances: Prim's algorithm, which is the primary engine, and
// Kruskal's algorithm as an independent cross-check.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - For a road map, the MST is the cheapest set of roads that still keeps
//     every city reachable.
//
// Algorithms Provided
//
//   - CalculateMST(g *core.Graph) ([]core.Edge, int64)
//
//   - Prim from the first vertex ever inserted into g. Never fails: an empty
//     graph gives (empty, 0) and a disconnected graph gives the tree of the
//     start vertex's component.
//
//   - Prim(g *core.Graph, root string) ([]core.Edge, int64, error)
//
//   - Strategy: grow a single tree from root. A min-heap frontier holds candidate
//     edges ordered by (weight, insertion index). Popping an edge whose endpoints
//     are both visited discards it; otherwise the edge is accepted and the newly
//     reached vertex's edges are pushed.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: stable-sort all edges by weight, then merge components with a
//     Disjoint-Set (Union-Find), skipping edges whose endpoints are already connected.
//
//   - Complexity: O(E log E + α(V)·E).
//
// Edge semantics
//
//   - Every stored edge is undirected, whatever orientation it was inserted with.
//   - Zero and negative weights are ordinary candidates; the greedy rule picks
//     negative edges first exactly like small positive ones.
//   - Self-loops never enter a tree.
//   - When (A,B) and (B,A) both exist, the cheaper one wins; on equal weight the
//     earlier inserted one wins.
//
// Determinism
//
//	Both algorithms read one core.Snapshot, so a concurrent insertion can never
//	be half-observed. Ties are broken by edge insertion order, and the default
//	start vertex is the first inserted (WithStart(StartSorted) switches to the
//	smallest name).
//
// Error Conditions
//
//	- ErrInvalidGraph           – graph is nil.
//	- ErrEmptyRoot (Prim)       – root == "" and no vertex is named "".
//	- core.ErrVertexNotFound    – root does not exist (Prim).
//	- ErrDisconnected (Kruskal) – |V| > 1 and no spanning tree exists.
//	- ErrUnknownMethod          – Compute called with an unknown Method.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
