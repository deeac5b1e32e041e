// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns identities in insertion order.
//   - RemoveVertex() reports removed edges in the vertex's adjacency order.
//
// Concurrency:
//   - Mutations under g.mu write lock, queries under g.mu read lock.
package core

// AddVertex creates a vertex with a fresh identity and the given display label.
// Labels are not required to be unique; identity is what distinguishes vertices.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(label string) VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextVertexID++
	id := g.nextVertexID
	g.vertices[id] = newVertexRecord(id, label)
	g.order = append(g.order, id)

	return id
}

// HasVertex reports whether v exists.
// Complexity: O(1).
func (g *Graph) HasVertex(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[v]

	return ok
}

// Label returns the display label of v, or ErrUnknownVertex.
// Complexity: O(1).
func (g *Graph) Label(v VertexID) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec, err := g.vertexLocked(v)
	if err != nil {
		return "", err
	}

	return rec.label, nil
}

// MustLabel is Label for callers that already validated v. A missing vertex
// here means the store changed under a running algorithm, which is a
// programming error, so it panics.
func (g *Graph) MustLabel(v VertexID) string {
	label, err := g.Label(v)
	if err != nil {
		panic(err)
	}

	return label
}

// RemoveVertex deletes v and every edge touching it, on both sides.
//
// Implementation:
//   - Stage 1: Resolve v (ErrUnknownVertex if stale).
//   - Stage 2: Walk v's adjacency once; unlink each edge through its
//     back-pointers, which also drops the reciprocal record from the neighbor.
//   - Stage 3: Drop v from the catalog and the insertion order.
//
// Returns the identities of the removed edges so a renderer can retire them.
//
// Complexity: O(deg(v) + V) (the order slice is compacted).
func (g *Graph) RemoveVertex(v VertexID) ([]EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Stage 1
	rec, err := g.vertexLocked(v)
	if err != nil {
		return nil, err
	}

	// Stage 2
	halves := halfEdges(rec)
	removed := make([]EdgeID, 0, len(halves))
	var half *halfEdge
	for _, half = range halves {
		removed = append(removed, half.edge.id)
		g.unlinkEdge(half.edge)
	}

	// Stage 3
	delete(g.vertices, v)
	for i, id := range g.order {
		if id == v {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return removed, nil
}

// Vertices returns all vertex identities in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]VertexID, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
