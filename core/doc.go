// Package core provides the thread-safe, in-memory store behind citygraph:
// named places (vertices) joined by weighted, undirected connections (edges).
//
// The Graph G = (V,E) is append-only:
//
//   - Vertices are identified by a case-sensitive, non-empty name and are unique.
//   - Edges are stored with the orientation they were inserted with (From→To),
//     but every query treats them as undirected.
//   - No two edges share the same ordered (From, To) pair. With
//     WithSymmetricEdges the check becomes unordered, so (B,A) is rejected
//     once (A,B) exists.
//   - An edge may only reference vertices that already exist.
//   - Nothing is ever updated or removed.
//
// Why a dedicated store?
//
//   - Deterministic enumeration: Vertices() is sorted by name, Edges() keeps
//     insertion order, Neighbors() keeps insertion order.
//   - Cheap membership: vertex lookup and ordered-pair lookup are O(1).
//   - Consistent reads: Snapshot() copies vertices and edges under a single
//     read lock, so algorithms never observe a half-applied mutation.
//
// Configuration Options (GraphOption):
//
//	– WithSymmetricEdges()
//	    Treat (A,B) and (B,A) as the same edge for uniqueness purposes.
//
//	– WithNonNegativeWeights()
//	    Reject negative weights in InsertEdge/AddEdge with ErrNegativeWeight.
//
// Core Methods:
//
//	// Vertex lifecycle
//	InsertVertex(name string) error    // O(1)
//	AddVertex(name string) bool        // O(1), false on any failure
//	HasVertex(name string) bool        // O(1)
//
//	// Edge lifecycle
//	InsertEdge(from, to string, weight int64) error // O(1)
//	AddEdge(from, to string, weight int64) bool     // O(1), false on any failure
//
//	// Query
//	Vertices() []string                       // O(V·log V), sorted by name
//	Edges() []Edge                            // O(E), insertion order
//	Neighbors(name string) ([]Edge, error)    // O(d), insertion order
//	Distance(from, to string) (int64, bool)   // O(1), undirected
//	Snapshot() Snapshot                       // O(V+E)
//	Stats() GraphStats                        // O(E)
//
// Errors:
//
//	ErrEmptyVertexName  – zero-length vertex name with WithNonEmptyNames
//	ErrDuplicateVertex  – vertex name already present
//	ErrVertexNotFound   – edge endpoint or queried vertex missing
//	ErrDuplicateEdge    – ordered (or, in symmetric mode, unordered) pair present
//	ErrNegativeWeight   – negative weight with WithNonNegativeWeights
//
// Quick ASCII example:
//
//	    A ──5── B
//	    │       │
//	   10       3
//	    │       │
//	    └── C ──┘
//
// represents three places and three connections; its minimum spanning tree
// keeps B–C (3) and A–B (5).
package core
