// Package bfs provides a level-synchronous breadth-first walk over a
// core.Graph that yields discovery steps lazily.
//
// What
//
//   - Expand the start vertex level by level: for each vertex of the current
//     frontier (in frontier order), scan its neighbors in adjacency order and
//     admit every edge leading to a still unvisited vertex. Admission marks
//     the vertex visited, so it is admitted once per walk.
//   - The admitted steps of a level are emitted in admission order; the
//     vertices they reach form the next frontier.
//   - The walker is finite and non-restartable: Next returns false for good
//     once the frontier is exhausted, the context is done, or a hook failed.
//
// Determinism
//
//	Neighbors come back in adjacency insertion order, so the step sequence is
//	fully reproducible for a given edit history.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for frontier, depth and parent maps, plus one level of steps.
//
// Usage
//
//	w, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound
//	}
//	steps, err := w.Collect()
//	fmt.Println(bfs.Result(g, start, steps)) // "BFS : A -> B -> C -> D"
//
// Options
//
//   - WithContext(ctx):        cancellation; Err reports ctx.Err().
//   - WithMaxDepth(d):         stop after depth d (>0).
//   - WithFilterNeighbor(fn):  skip half-edges for which fn(curr, nb)==false.
//   - WithOnVisit(fn):         hook on admission; returning error aborts.
package bfs
