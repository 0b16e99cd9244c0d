// Package dijkstra implements Dijkstra's shortest-path algorithm on a citygraph store.
//
// Notes on implementation choices:
//
//   - The graph is read once through core.Graph.Snapshot, so concurrent inserts are never half-observed.
//   - Every edge is walked in both directions.
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - A route whose total would overflow int64 is treated as unreachable.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/citygraph/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Returns:
//
//   - dist: map from vertex name to minimum distance (Unreachable if not reached).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v and for the source, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty unless g has a vertex named "" (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (core.ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	r, err := newRunner(g, cfg)
	if err != nil {
		return nil, nil, err
	}
	r.run()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the cheapest route from one place to another.
//
// Errors:
//   - ErrEmptySource, ErrNilGraph, ErrNegativeWeight as for Dijkstra.
//   - core.ErrEmptyVertexName if to is empty and g has no vertex named "".
//   - core.ErrVertexNotFound if from or to is missing.
//   - ErrNoPath if to cannot be reached (within MaxDistance, if set).
//
// A route from a place to itself has one vertex, no edges and total 0.
func ShortestPath(g *core.Graph, from, to string, opts ...Option) (Path, error) {
	cfg := DefaultOptions(from)
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Source = from

	r, err := newRunner(g, cfg)
	if err != nil {
		return Path{}, err
	}
	if _, ok := r.dist[to]; !ok {
		if to == "" {
			return Path{}, fmt.Errorf("dijkstra: target: %w", core.ErrEmptyVertexName)
		}
		return Path{}, fmt.Errorf("dijkstra: target %q: %w", to, core.ErrVertexNotFound)
	}
	r.run()

	if r.dist[to] == Unreachable {
		return Path{}, fmt.Errorf("%w: %s→%s", ErrNoPath, from, to)
	}

	return r.path(to), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	snap     core.Snapshot     // The input graph, frozen.
	inc      map[string][]int  // Vertex name → incident edge indices.
	options  Options           // Configuration options (Source, thresholds, etc.).
	dist     map[string]int64  // Maps vertex name → current best distance from Source.
	prev     map[string]string // Maps vertex name → predecessor on the shortest path.
	prevEdge map[string]int    // Maps vertex name → index of the edge it was reached by.
	visited  map[string]bool   // Tracks if a vertex's distance is finalized.
	pq       nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// newRunner validates inputs and sets up initial distances, predecessors,
// visited flags, and pushes Source=0 into the heap.
func newRunner(g *core.Graph, cfg Options) (*runner, error) {
	// 1) Validate Source is provided; "" only counts when it names a vertex.
	if cfg.Source == "" && (g == nil || !g.HasVertex("")) {
		return nil, ErrEmptySource
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Freeze the graph and pre-scan weights.
	s := g.Snapshot()
	for _, e := range s.Edges {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Initialize dist[v] = +∞ and prev[v] = "" for all vertices v.
	V := len(s.Vertices)
	r := &runner{
		snap:     s,
		inc:      s.Incidence(),
		options:  cfg,
		dist:     make(map[string]int64, V),
		prev:     make(map[string]string, V),
		prevEdge: make(map[string]int, V),
		visited:  make(map[string]bool, V),
		pq:       make(nodePQ, 0, V),
	}
	for _, v := range s.Vertices {
		r.dist[v] = Unreachable
		r.prev[v] = ""
	}

	// 5) Validate Source exists.
	if _, ok := r.dist[cfg.Source]; !ok {
		return nil, fmt.Errorf("dijkstra: source %q: %w", cfg.Source, core.ErrVertexNotFound)
	}

	// 6) Distance to the source is zero.
	r.dist[cfg.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	return r, nil
}

// run is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance (no need to explore farther).
func (r *runner) run() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each edge touching u and attempts to improve distances to its neighbors.
// If a shorter path to neighbor v is found (newDist < dist[v]), we update dist[v], prev[v],
// and push a new heap entry.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) {
	for _, idx := range r.inc[u] {
		e := r.snap.Edges[idx]
		v := e.Other(u)
		w := e.Weight

		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// A sum that would reach Unreachable is not representable; leave v alone.
		if w >= Unreachable-r.dist[u] {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict comparison: on equal distance the first predecessor found stays.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.prevEdge[v] = idx

		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// path walks prev back from target; target must have been reached.
func (r *runner) path(target string) Path {
	var (
		vertices = []string{target}
		edges    []core.Edge
	)
	for v := target; v != r.options.Source; v = r.prev[v] {
		edges = append(edges, r.snap.Edges[r.prevEdge[v]])
		vertices = append(vertices, r.prev[v])
	}

	// Reverse into source→target order.
	for i, j := 0, len(vertices)-1; i < j; i, j = i+1, j-1 {
		vertices[i], vertices[j] = vertices[j], vertices[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	if edges == nil {
		edges = []core.Edge{}
	}

	return Path{Vertices: vertices, Edges: edges, Total: r.dist[target]}
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string // vertex name
	dist int64  // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending,
// then by name so that equal distances pop in a stable order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
