// File: methods.go
// Role: Whole-graph maintenance (Clear) and the transient per-run flags
//       (visited/selected) used by algorithms and the renderer.
// Concurrency:
//   - Flag writes take the write lock; the playback goroutine flips flags while
//     other goroutines read snapshots.

package core

// Clear removes every vertex and edge. Identity counters are kept, so
// identities issued before Clear are never handed out again.
// Complexity: O(1) (maps are reallocated).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices = make(map[VertexID]*vertexRecord)
	g.edges = make(map[EdgeID]*edgeRecord)
	g.order = nil
}

// ResetRunState clears visited and selected on every vertex and edge.
// Called once at the start of every algorithm run.
// Complexity: O(V + E).
func (g *Graph) ResetRunState() {
	g.mu.Lock()
	defer g.mu.Unlock()
	var v *vertexRecord
	for _, v = range g.vertices {
		v.visited = false
		v.selected = false
	}
	var e *edgeRecord
	for _, e = range g.edges {
		e.selected = false
	}
}

// MarkVisited sets the visited flag on v.
func (g *Graph) MarkVisited(v VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	rec, err := g.vertexLocked(v)
	if err != nil {
		return err
	}
	rec.visited = true

	return nil
}

// Visited reports the visited flag of v; unknown vertices report false.
func (g *Graph) Visited(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec, ok := g.vertices[v]

	return ok && rec.visited
}

// SelectVertex sets the selected flag on v.
func (g *Graph) SelectVertex(v VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	rec, err := g.vertexLocked(v)
	if err != nil {
		return err
	}
	rec.selected = true

	return nil
}

// Selected reports the selected flag of v; unknown vertices report false.
func (g *Graph) Selected(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec, ok := g.vertices[v]

	return ok && rec.selected
}

// SelectEdge sets the selected flag on e.
func (g *Graph) SelectEdge(e EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	rec, ok := g.edges[e]
	if !ok {
		return ErrEdgeNotFound
	}
	rec.selected = true

	return nil
}

// EdgeSelected reports the selected flag of e; unknown edges report false.
func (g *Graph) EdgeSelected(e EdgeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec, ok := g.edges[e]

	return ok && rec.selected
}

// Visit marks v both visited and selected in one locked step. This is what a
// traversal does on discovery and what playback does when a step lands.
func (g *Graph) Visit(v VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	rec, err := g.vertexLocked(v)
	if err != nil {
		return err
	}
	rec.visited = true
	rec.selected = true

	return nil
}
