// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for citygraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep magic names and weights out of test bodies.

package core_test

import (
	"testing"

	"github.com/katalvlaran/citygraph/core"
	"github.com/stretchr/testify/require"
)

// Common vertex names used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight0  int64 = 0
	Weight3  int64 = 3
	Weight5  int64 = 5
	Weight7  int64 = 7
	Weight10 int64 = 10
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// mustVertices inserts every name and fails the test on the first error.
func mustVertices(t testing.TB, g *core.Graph, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, g.InsertVertex(name), "InsertVertex(%q)", name)
	}
}

// triangle builds A–B(5), B–C(3), A–C(10).
func triangle(t testing.TB, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	mustVertices(t, g, VertexA, VertexB, VertexC)
	require.NoError(t, g.InsertEdge(VertexA, VertexB, Weight5))
	require.NoError(t, g.InsertEdge(VertexB, VertexC, Weight3))
	require.NoError(t, g.InsertEdge(VertexA, VertexC, Weight10))

	return g
}
