// Command citygraph loads a table of city connections and answers distance,
// route and spanning-tree queries over it.
package main

import "github.com/katalvlaran/citygraph/cmd/citygraph/commands"

func main() {
	commands.Execute()
}
