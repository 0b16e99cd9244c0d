// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns names sorted lexicographically ascending.
//   - Snapshot().Vertices keeps insertion order.
//
// Concurrency:
//   - Insertions under the write lock, queries under the read lock.
package core

import (
	"fmt"
	"sort"
)

// InsertVertex adds a vertex named name.
//
// Errors:
//   - ErrEmptyVertexName: if name == "" and the graph was built WithNonEmptyNames.
//   - ErrDuplicateVertex: if a vertex with that name already exists.
//
// The store is unchanged whenever an error is returned.
// Complexity: O(1) amortized.
func (g *Graph) InsertVertex(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.nonEmpty && name == "" {
		return ErrEmptyVertexName
	}
	if _, exists := g.vertices[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}
	g.vertices[name] = struct{}{}
	g.order = append(g.order, name)

	return nil
}

// AddVertex inserts a vertex and reports whether it was added.
// It returns false, leaving the store unchanged, if the name is already
// present (or empty under WithNonEmptyNames).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(name string) bool {
	return g.InsertVertex(name) == nil
}

// HasVertex reports whether a vertex with the given name exists.
// Complexity: O(1).
func (g *Graph) HasVertex(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[name]

	return exists
}

// Vertices returns all vertex names sorted ascending, independent of
// insertion order.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	names := make([]string, len(g.order))
	copy(names, g.order)
	g.mu.RUnlock()

	sort.Strings(names)

	return names
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
