// Package dfs implements depth-first search over a core.Graph as a lazy stream
// of discovery steps.
//
// What:
//
//   - DFS(g, start, opts...) marks start visited+selected and returns a Walker.
//   - Walker.Next() yields one discovery step per newly reached vertex, in
//     classic pre-order: at each vertex the first unvisited neighbor (in
//     adjacency insertion order) is marked visited, emitted and descended into
//     before the next neighbor of the current vertex is considered.
//   - The recursion is replaced by an explicit stack of (vertex, cursor)
//     frames, so stack depth does not depend on graph size.
//   - A Walker is finite and non-restartable; once Next reports false it stays
//     exhausted.
//
// Visited state lives on the graph itself (core.Graph.Visited), so callers
// must call g.ResetRunState() before starting a new traversal on a graph that
// has already been walked.
//
// Complexity:
//
//   - Time:   O(V + E) over the whole walk.
//   - Memory: O(V + E) for the frame stack (each frame holds its adjacency snapshot).
//
// Options:
//
//   - WithContext(ctx)  cancellation; Next returns false and Err reports ctx.Err().
//   - WithOnVisit(fn)   hook on each discovered vertex; an error aborts the walk.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph (wraps core.ErrUnknownVertex)
//
// Result strings:
//
//	Result(g, start, steps) → "DFS : A -> B -> C"
package dfs
