// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It treats every core.Edge as undirected and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/citygraph/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the whole graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrDisconnected : if |V| > 1 and the graph is not fully connected.
//
// Steps:
//  1. Take a snapshot; |V| ≤ 1 → trivial MST (empty, weight=0).
//  2. Collect edges in insertion order, skipping self-loops.
//  3. Stable-sort by ascending Weight so equal weights keep insertion order.
//  4. Initialize DSU maps parent[] and rank[] for each vertex.
//  5. For each edge (u,v): if find(u) != find(v), union and include it.
//  6. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate and snapshot.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	s := graph.Snapshot()
	if len(s.Vertices) <= 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Drop self-loops: they can never join two components.
	edges := make([]core.Edge, 0, len(s.Edges))
	for _, e := range s.Edges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Sort by weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Disjoint sets.
	parent := make(map[string]string, len(s.Vertices))
	rank := make(map[string]int, len(s.Vertices))
	for _, v := range s.Vertices {
		parent[v] = v
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v string) {
		rootU := find(u)
		rootV := find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 5. Build MST by iterating over sorted edges.
	var (
		mst         = make([]core.Edge, 0, len(s.Vertices)-1)
		totalWeight int64
		numVerts    = len(s.Vertices)
	)
	for _, e := range edges {
		if find(e.From) != find(e.To) {
			union(e.From, e.To)
			mst = append(mst, e)
			totalWeight += e.Weight
			if len(mst) == numVerts-1 {
				break
			}
		}
	}

	// 6. A short tree means more than one component.
	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
