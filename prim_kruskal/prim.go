// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It treats every core.Edge as undirected and grows the tree from a start vertex using a min-heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/citygraph/core"
)

// CalculateMST grows a minimum spanning tree from the first vertex inserted into g.
//
// An empty (or nil) graph yields an empty tree and 0. On a disconnected graph
// the result only covers the start vertex's component; compare the edge count
// with g.VertexCount()-1 (or use Spanning) to detect that.
//
// Complexity: O(E log E) time, O(V + E) memory.
func CalculateMST(g *core.Graph) ([]core.Edge, int64) {
	if g == nil {
		return []core.Edge{}, 0
	}
	s := g.Snapshot()
	start, ok := startVertex(s, StartInsertion)
	if !ok {
		return []core.Edge{}, 0
	}

	return grow(s, start)
}

// Prim computes the MST of root's connected component.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil.
//   - ErrEmptyRoot          : if root is empty and no vertex is named "".
//   - core.ErrVertexNotFound: if the root vertex does not exist in the graph.
//
// A disconnected graph is not an error: the returned tree simply stops at the
// boundary of root's component.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	// 1. Validate inputs.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	if root == "" && !graph.HasVertex("") {
		return nil, 0, ErrEmptyRoot
	}

	// 2. Work on one consistent copy of the store.
	s := graph.Snapshot()
	found := false
	for _, v := range s.Vertices {
		if v == root {
			found = true
			break
		}
	}
	if !found {
		return nil, 0, fmt.Errorf("%w: %q", core.ErrVertexNotFound, root)
	}

	// 3. Grow the tree.
	mst, total := grow(s, root)

	return mst, total, nil
}

// grow runs Prim's frontier loop over s starting at start.
//
// Steps:
//  1. Mark start visited and push every edge touching it whose far endpoint
//     is unvisited.
//  2. While the frontier is non-empty and some vertex is unvisited:
//     a. Pop the cheapest candidate (ties: lowest insertion index).
//     b. If both endpoints are visited, discard it.
//     c. Otherwise accept it, add its weight, visit the new endpoint and push
//     that vertex's edges whose far endpoint is unvisited.
//  3. Return accepted edges in acceptance order and their total.
//
// Self-loops never qualify: their far endpoint is always already visited.
func grow(s core.Snapshot, start string) ([]core.Edge, int64) {
	n := len(s.Vertices)
	inc := s.Incidence()
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total int64

	pq := &edgePQ{}
	heap.Init(pq)

	push := func(from string) {
		for _, idx := range inc[from] {
			if !visited[s.Edges[idx].Other(from)] {
				heap.Push(pq, candidate{idx: idx, weight: s.Edges[idx].Weight})
			}
		}
	}

	// 1. Seed.
	visited[start] = true
	push(start)

	// 2. Expand until every vertex is reached or nothing is left to try.
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		e := s.Edges[c.idx]
		if visited[e.From] && visited[e.To] {
			continue
		}
		next := e.To
		if visited[next] {
			next = e.From
		}
		visited[next] = true
		mst = append(mst, e)
		total += e.Weight
		push(next)
	}

	return mst, total
}

// candidate is a frontier entry: an edge by insertion index, plus its weight.
type candidate struct {
	idx    int
	weight int64
}

// edgePQ implements heap.Interface for a min-heap of candidates,
// ordered by weight and then by insertion index.
type edgePQ []candidate

// Len returns the number of candidates in the priority queue.
// Complexity: O(1).
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by ascending weight; equal weights keep insertion order.
// Complexity: O(1).
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps elements at indices i and j.
// Complexity: O(1).
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
