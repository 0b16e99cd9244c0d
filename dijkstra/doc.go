// Package dijkstra answers multi-hop route queries over a citygraph store.
//
// Overview:
//
//   - core.Graph.Distance only reports a direct connection. ShortestPath finds the
//     cheapest chain of connections between two places, however many hops it takes.
//   - Dijkstra computes the minimum-cost distance from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Every stored edge is undirected, so A→B inserted once is walkable both ways.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a “predecessor” map, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:          the source is empty and no vertex is named "".
//   - ErrNilGraph:             a nil *core.Graph was passed.
//   - core.ErrVertexNotFound:  the source or target is not in the graph.
//   - ErrNegativeWeight:       some edge has a negative weight (fast O(E) pre-scan).
//   - ErrNoPath:               ShortestPath could not reach the target.
//   - ErrBadMaxDistance:       (via panic) WithMaxDistance got a negative value.
//   - ErrBadInfThreshold:      (via panic) WithInfEdgeThreshold got zero or a negative value.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//	func ShortestPath(g *core.Graph, from, to string, opts ...Option) (Path, error)
//
//	  - dist: map[v] = minimal distance from Source to v, or Unreachable.
//	  - prev: map[v] = immediate predecessor of v on one shortest path from Source,
//	          or "" if v is the Source or v is unreachable. Nil if ReturnPath=false.
//
// Thread safety:
//
//   - Both functions read one core.Snapshot and are safe to call while other
//     goroutines insert into the same graph; they just won't see those inserts.
package dijkstra
