// Package citygraph is an in-memory weighted graph of places and the
// distances between them, with queries and spanning trees on top.
//
// Packages
//
//	core/          thread-safe Graph store: vertices, ordered edges, snapshots
//	loader/        "from,to,weight" line loader with per-line problem reports
//	prim_kruskal/  minimum spanning trees (Prim, Kruskal)
//	dijkstra/      weighted shortest routes
//	bfs/           hop-count reachability and connected components
//	cmd/citygraph  command-line front end
//
// Quick example:
//
//	g := core.NewGraph()
//	loader.LoadFromSource(g, []string{"A,B,5", "B,C,3", "A,C,10"})
//	km, ok := g.Distance("B", "A") // 5, true
//	mst, total := prim_kruskal.CalculateMST(g)
//	// mst = [A→B 5, B→C 3], total = 8
//
// Install the CLI:
//
//	go install github.com/katalvlaran/citygraph/cmd/citygraph@latest
package citygraph
