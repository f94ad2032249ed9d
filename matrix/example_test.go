package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/volcanium/core"
	"github.com/katalvlaran/volcanium/matrix"
)

// ExampleBuildDistances computes hop counts on a small ring with a tail.
func ExampleBuildDistances() {
	g := core.NewGraph()
	_ = g.AddEdge("AA", "BB")
	_ = g.AddEdge("BB", "CC")
	_ = g.AddEdge("CC", "AA")
	_ = g.AddEdge("CC", "DD")

	d, err := matrix.BuildDistances(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, to := range []string{"BB", "CC", "DD"} {
		hops, _ := d.Distance("AA", to)
		fmt.Printf("AA→%s=%d\n", to, hops)
	}
	// Output:
	// AA→BB=1
	// AA→CC=1
	// AA→DD=2
}
