// Package bfs provides breadth-first search over a core.Graph,
// returning hop counts, parent links, and visit order.
//
// What
//
//   - Explore cities in non-decreasing hop count from a start city.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Hops: map from city → connections from start
//   - Parent: map from city → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error).
//   - Honors a MaxHops limit (h>0) or explicit "no limit" (h==0).
//   - Components partitions the graph into connected components.
//
// Direction and weights
//
//	A connection A,B joins A and B both ways, whatever order it was loaded
//	in. Distances are ignored: BFS answers "how many hops", Dijkstra
//	answers "how many kilometres".
//
// Determinism
//
//	BFS runs on a core.Snapshot and expands neighbors in edge insertion
//	order, so the visit sequence is reproducible for a given load.
//	Components are ordered by their earliest-inserted city.
//
// Complexity
//
//	Time:   O(V + E)
//	Memory: O(V + E) for the snapshot incidence index and the queue.
//
// Cancellation
//
//	WithContext is checked once per dequeued city.
package bfs
