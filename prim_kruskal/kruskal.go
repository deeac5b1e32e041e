package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/graphwalk/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the whole graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph      : if graph is nil.
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate graph != nil.
//  2. Retrieve vertices; if none → ErrDisconnected; if one → trivial MST.
//  3. Collect all edges via graph.Edges() (ID order).
//  4. Sort edges by ascending Weight (stable, so ties keep ID order).
//  5. Initialize DSU maps parent[] and rank[] for each vertex.
//  6. Loop over sorted edges: if find(u) != find(v), union and include the edge.
//  7. If MST edge count < |V|-1 → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}

	// 2. Trivial cases.
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3-4. Collect and sort edges.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 5. Initialize disjoint-set (union-find) structures.
	parent := make(map[core.VertexID]core.VertexID, len(vertices))
	rank := make(map[core.VertexID]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}

	// Iterative find with path compression.
	find := func(u core.VertexID) core.VertexID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v core.VertexID) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 6. Build MST by iterating over sorted edges.
	var (
		mst         []core.Edge
		totalWeight int64
		numVerts    = len(vertices)
	)
	for _, e := range edges {
		if find(e.From) != find(e.To) {
			union(e.From, e.To)
			mst = append(mst, e)
			totalWeight += e.Weight
			if len(mst) == numVerts-1 {
				break
			}
		}
	}

	// 7. Spanning requires exactly |V|-1 edges.
	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
