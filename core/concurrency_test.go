// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/citygraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe
// and every edge is recorded exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	require.True(t, g.AddVertex(VertexX))
	for i := 0; i < NConcurrentAdds; i++ {
		require.True(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}

	var wg sync.WaitGroup
	wg.Add(NConcurrentAdds)
	results := make([]bool, NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			results[id] = g.AddEdge(VertexX, fmt.Sprintf("V%d", id), int64(id))
		}(i)
	}
	wg.Wait()

	for i, ok := range results {
		assert.True(t, ok, "AddEdge X→V%d", i)
	}
	nbs, err := g.Neighbors(VertexX)
	require.NoError(t, err)
	require.Len(t, nbs, NConcurrentAdds)
}

// TestConcurrentDuplicateVertex races many inserts of the same name:
// exactly one must win.
func TestConcurrentDuplicateVertex(t *testing.T) {
	g := core.NewGraph()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	wg.Add(NReaders)
	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			if g.AddVertex(VertexA) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, g.VertexCount())
}

// TestConcurrentReadsDuringWrites mixes writers with Distance, Edges and
// Snapshot readers. Every snapshot must be internally consistent: each edge
// only references vertices present in the same snapshot.
func TestConcurrentReadsDuringWrites(t *testing.T) {
	g := core.NewGraph()
	require.True(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			name := fmt.Sprintf("V%d", id)
			if g.AddVertex(name) {
				g.AddEdge("Base", name, int64(id))
			}
		}(i)

		go func(id int) {
			defer wg.Done()
			_, _ = g.Distance("Base", fmt.Sprintf("V%d", id))
			_ = g.Edges()

			s := g.Snapshot()
			present := make(map[string]bool, len(s.Vertices))
			for _, v := range s.Vertices {
				present[v] = true
			}
			for _, e := range s.Edges {
				assert.True(t, present[e.From] && present[e.To], "edge %v references a vertex missing from its snapshot", e)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, rounds+1, g.VertexCount())
	assert.Equal(t, rounds, g.EdgeCount())
}
