// File: view.go
// Role: Non-mutating, value-typed views of the store for the rendering layer.
// Determinism:
//   - Vertices in insertion order, edges by EdgeID asc.
// Concurrency:
//   - Taken under a single read lock, so a snapshot is internally consistent
//     even while playback is flipping flags.

package core

import "sort"

// VertexState is a rendering view of one vertex.
type VertexState struct {
	ID       VertexID
	Label    string
	Visited  bool
	Selected bool
}

// EdgeState is a rendering view of one edge.
type EdgeState struct {
	Edge
	Selected bool
}

// Snapshot is a consistent copy of the store's topology and run flags.
type Snapshot struct {
	Vertices []VertexState
	Edges    []EdgeState
}

// Snapshot copies the current topology and flags.
// Complexity: O(V + E log E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := Snapshot{
		Vertices: make([]VertexState, 0, len(g.order)),
		Edges:    make([]EdgeState, 0, len(g.edges)),
	}
	var id VertexID
	for _, id = range g.order {
		rec := g.vertices[id]
		out.Vertices = append(out.Vertices, VertexState{
			ID:       rec.id,
			Label:    rec.label,
			Visited:  rec.visited,
			Selected: rec.selected,
		})
	}
	var e *edgeRecord
	for _, e = range g.edges {
		out.Edges = append(out.Edges, EdgeState{Edge: e.value(), Selected: e.selected})
	}
	sort.Slice(out.Edges, func(i, j int) bool { return out.Edges[i].ID < out.Edges[j].ID })

	return out
}

// Label returns the label of v inside the snapshot, or "" if absent.
func (s Snapshot) Label(v VertexID) string {
	for _, vs := range s.Vertices {
		if vs.ID == v {
			return vs.Label
		}
	}

	return ""
}
