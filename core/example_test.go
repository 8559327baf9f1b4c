package core_test

import (
	"fmt"

	"github.com/katalvlaran/hamcycle/core"
)

// ExampleGraph builds a square with one diagonal and validates a tour of it.
//
//	0───1
//	│ ╲ │
//	3───2
func ExampleGraph() {
	g := core.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)
	g.AddEdge(0, 2)
	g.AddEdge(0, 9) // ignored: out of range

	fmt.Println(g.NumEdges(), g.Neighbors(0))
	fmt.Println(core.ValidateCycle(g, []int{0, 1, 2, 3, 0}))
	// Output:
	// 5 [1 2 3]
	// <nil>
}
