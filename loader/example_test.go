package loader_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/loader"
)

// ExampleLoader_LoadReader loads a small table and prints the report.
func ExampleLoader_LoadReader() {
	input := strings.Join([]string{
		"A,B,5",
		"B,C,3",
		"A,C,10",
		"A,B,4",
		"not,a,row",
	}, "\n")

	g := core.NewGraph()
	rep, err := loader.New(g).LoadReader(strings.NewReader(input))
	if err != nil {
		fmt.Println("read error:", err)
		return
	}
	fmt.Printf("lines=%d accepted=%d rejected=%d skipped=%d\n",
		rep.Lines, rep.Accepted, rep.Rejected, rep.Skipped)
	fmt.Println(g.Vertices())

	// Output:
	// lines=5 accepted=3 rejected=1 skipped=1
	// [A B C]
}
