// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount
//       and Neighbors.
// Determinism:
//   - Edges() returns edges sorted by EdgeID asc (= creation order).
//   - Neighbors() returns the adjacency list in insertion order.
// Concurrency:
//   - Mutations under g.mu write lock, queries under g.mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts an undirected edge v1–v2 with the given weight, stored as
// two reciprocal half-edge records.
//
// Steps:
//  1. Reject self-loops and negative weights.
//  2. Lock, resolve both endpoints.
//  3. Allocate the edge identity and both half-edges, cross-link the twins.
//  4. Append each half-edge to its origin's adjacency list.
//
// Every failure wraps ErrInvalidEdge and leaves the graph untouched.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v1, v2 VertexID, weight int64) (EdgeID, error) {
	// 1) Input validation
	if v1 == v2 {
		return 0, fmt.Errorf("%w: self-loop on vertex %d", ErrInvalidEdge, v1)
	}
	if weight < 0 {
		return 0, fmt.Errorf("%w: negative weight %d", ErrInvalidEdge, weight)
	}

	// 2) Endpoints must exist
	g.mu.Lock()
	defer g.mu.Unlock()
	var v VertexID
	for _, v = range [2]VertexID{v1, v2} {
		if _, ok := g.vertices[v]; !ok {
			return 0, fmt.Errorf("%w: unknown endpoint %d", ErrInvalidEdge, v)
		}
	}

	// 3) Build the record pair
	g.nextEdgeID++
	e := &edgeRecord{id: g.nextEdgeID, weight: weight}
	e.forward = &halfEdge{edge: e, origin: v1, dest: v2}
	e.backward = &halfEdge{edge: e, origin: v2, dest: v1}
	e.forward.twin = e.backward
	e.backward.twin = e.forward

	// 4) Link into both adjacency lists
	g.linkEdge(e)

	return e.id, nil
}

// RemoveEdge deletes the edge and its reciprocal record. Removing an edge that
// no longer exists is a no-op.
// Complexity: O(1).
func (g *Graph) RemoveEdge(e EdgeID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	rec, ok := g.edges[e]
	if !ok {
		return
	}
	g.unlinkEdge(rec)
}

// HasEdge reports whether e exists.
// Complexity: O(1).
func (g *Graph) HasEdge(e EdgeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[e]

	return ok
}

// Edge returns a value copy of edge e, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(e EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec, ok := g.edges[e]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, e)
	}

	return rec.value(), nil
}

// Edges returns all edges sorted by EdgeID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	var rec *edgeRecord
	for _, rec = range g.edges {
		out = append(out, rec.value())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns v's adjacency list in insertion order. The order is
// significant: DFS/BFS discovery and Prim tie-breaking depend on it.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v VertexID) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec, err := g.vertexLocked(v)
	if err != nil {
		return nil, err
	}
	out := make([]Neighbor, 0, rec.adjacency.Len())
	for el := rec.adjacency.Front(); el != nil; el = el.Next() {
		half := el.Value.(*halfEdge)
		out = append(out, Neighbor{Edge: half.edge.id, Weight: half.edge.weight, Vertex: half.dest})
	}

	return out, nil
}

// value converts the record into its exported form.
func (e *edgeRecord) value() Edge {
	return Edge{ID: e.id, From: e.forward.origin, To: e.forward.dest, Weight: e.weight}
}
