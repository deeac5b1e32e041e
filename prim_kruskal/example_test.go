package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle graph.
// The MST is {A–B, B–C} with total weight = 3.
func ExampleKruskal() {
	g := core.NewGraph()
	a, b, c := g.AddVertex("A"), g.AddVertex("B"), g.AddVertex("C")
	_, _ = g.AddEdge(a, b, 1)
	_, _ = g.AddEdge(b, c, 2)
	_, _ = g.AddEdge(a, c, 4)

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", g.MustLabel(e.From), g.MustLabel(e.To))
	}
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim grows a tree from A on the diamond graph.
func ExamplePrim() {
	g := core.NewGraph()
	a, b, c, d := g.AddVertex("A"), g.AddVertex("B"), g.AddVertex("C"), g.AddVertex("D")
	_, _ = g.AddEdge(a, b, 1)
	_, _ = g.AddEdge(b, c, 2)
	_, _ = g.AddEdge(a, c, 4)
	_, _ = g.AddEdge(c, d, 1)

	tree, _ := prim_kruskal.Prim(g, a)
	fmt.Println(tree)
	fmt.Println("total:", tree.Total)
	// Output:
	// B=A, C=B, D=C
	// total: 4
}
