package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

// candidate is a frontier entry: an edge from a connected vertex to a not yet
// connected one.
type candidate struct {
	edge   core.EdgeID
	from   core.VertexID
	to     core.VertexID
	weight int64
}

// primState grows one tree.
type primState struct {
	graph     *core.Graph
	connected map[core.VertexID]bool
	frontier  []candidate
}

// Prim grows a minimum spanning tree of root's component.
//
// The frontier keeps insertion order. Each round selects the first
// minimum-weight candidate, so ties go to the edge that entered the frontier
// first. Connecting a vertex drops every candidate pointing at it and appends
// its edges to still unconnected vertices, in adjacency order.
//
// The root is marked selected on the graph; nothing else is touched.
//
// Error Conditions:
//   - ErrNilGraph     : graph is nil.
//   - ErrRootNotFound : root does not exist (wraps core.ErrUnknownVertex).
//
// Complexity: O(V·E) time, O(V + E) memory.
func Prim(graph *core.Graph, root core.VertexID) (*Tree, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, ErrNilGraph
	}
	if err := graph.SelectVertex(root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRootNotFound, err)
	}

	// 2. Seed with the root.
	st := &primState{
		graph:     graph,
		connected: make(map[core.VertexID]bool, graph.VertexCount()),
	}
	tree := &Tree{Root: root, labels: map[core.VertexID]string{root: graph.MustLabel(root)}}
	st.connect(root)

	// 3. Select until the frontier is empty.
	var best int
	for len(st.frontier) > 0 {
		best = 0
		for i := 1; i < len(st.frontier); i++ {
			if st.frontier[i].weight < st.frontier[best].weight {
				best = i
			}
		}
		c := st.frontier[best]
		tree.Edges = append(tree.Edges, core.Step{Edge: c.edge, From: c.from, To: c.to, Weight: c.weight})
		tree.Total += c.weight
		tree.labels[c.to] = graph.MustLabel(c.to)
		st.connect(c.to)
	}

	return tree, nil
}

// connect adds v to the tree and updates the frontier.
func (st *primState) connect(v core.VertexID) {
	st.connected[v] = true

	// drop candidates that now point inside the tree, preserving order
	kept := st.frontier[:0]
	for _, c := range st.frontier {
		if c.to != v {
			kept = append(kept, c)
		}
	}
	st.frontier = kept

	nbs, err := st.graph.Neighbors(v)
	if err != nil {
		panic(fmt.Sprintf("prim_kruskal: Neighbors(%d): %v", v, err))
	}
	for _, nb := range nbs {
		if !st.connected[nb.Vertex] {
			st.frontier = append(st.frontier, candidate{edge: nb.Edge, from: v, to: nb.Vertex, weight: nb.Weight})
		}
	}
}
