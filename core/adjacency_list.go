// File: adjacency_list.go
// Role: Private adjacency primitives: linking/unlinking reciprocal half-edges
//       and record lookups. Callers must hold g.mu.
// Determinism:
//   - Half-edges are appended to the back of the origin's list, so adjacency
//     iteration order equals edge insertion order.

package core

import (
	"container/list"
	"fmt"
)

// newVertexRecord allocates a vertex with an empty adjacency list.
func newVertexRecord(id VertexID, label string) *vertexRecord {
	return &vertexRecord{id: id, label: label, adjacency: list.New()}
}

// vertexLocked returns the record for v or ErrUnknownVertex.
// Caller holds g.mu (read or write).
func (g *Graph) vertexLocked(v VertexID) (*vertexRecord, error) {
	rec, ok := g.vertices[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}

	return rec, nil
}

// linkEdge wires both half-edges of e into their origin adjacency lists.
// Caller holds g.mu for writing and has validated both endpoints.
func (g *Graph) linkEdge(e *edgeRecord) {
	// 1) forward half lives in v1's list, backward half in v2's list
	from := g.vertices[e.forward.origin]
	to := g.vertices[e.backward.origin]

	// 2) append at the back to keep insertion order
	e.forward.elem = from.adjacency.PushBack(e.forward)
	e.backward.elem = to.adjacency.PushBack(e.backward)

	g.edges[e.id] = e
}

// unlinkEdge removes both half-edges of e and drops it from the catalog.
// The back-pointers make this O(1) regardless of vertex degree.
// Caller holds g.mu for writing.
func (g *Graph) unlinkEdge(e *edgeRecord) {
	g.unlinkHalf(e.forward)
	g.unlinkHalf(e.forward.twin)
	delete(g.edges, e.id)
}

// unlinkHalf detaches a single half-edge from its origin's list.
func (g *Graph) unlinkHalf(half *halfEdge) {
	if owner, ok := g.vertices[half.origin]; ok && half.elem != nil {
		owner.adjacency.Remove(half.elem)
	}
	half.elem = nil
}

// halfEdges returns the adjacency of rec as a slice, in insertion order.
// Caller holds g.mu.
func halfEdges(rec *vertexRecord) []*halfEdge {
	out := make([]*halfEdge, 0, rec.adjacency.Len())
	for el := rec.adjacency.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*halfEdge))
	}

	return out
}
