package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citygraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty store and register three places:
	g := core.NewGraph()
	g.AddVertex("Paris")
	g.AddVertex("Lyon")
	g.AddVertex("Nice")

	// 2) Connect them:
	g.AddEdge("Paris", "Lyon", 465)
	g.AddEdge("Lyon", "Nice", 470)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s : %d km\n", e.From, e.To, e.Weight)
	}

	// 4) Distance is undirected:
	d, ok := g.Distance("Nice", "Lyon")
	fmt.Println("Nice-Lyon:", d, ok)
	_, ok = g.Distance("Paris", "Nice")
	fmt.Println("Paris-Nice direct?", ok)

	// Output:
	// Vertices: [Lyon Nice Paris]
	// Paris -> Lyon : 465 km
	// Lyon -> Nice : 470 km
	// Nice-Lyon: 470 true
	// Paris-Nice direct? false
}

// ExampleGraph_InsertEdge shows the error-returning insertion path.
func ExampleGraph_InsertEdge() {
	g := core.NewGraph(core.WithSymmetricEdges())
	_ = g.InsertVertex("A")
	_ = g.InsertVertex("B")

	fmt.Println(g.InsertEdge("A", "B", 5))
	err := g.InsertEdge("B", "A", 5)
	fmt.Println(errors.Is(err, core.ErrDuplicateEdge))
	err = g.InsertEdge("A", "Z", 1)
	fmt.Println(errors.Is(err, core.ErrVertexNotFound))

	// Output:
	// <nil>
	// true
	// true
}
