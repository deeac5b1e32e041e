// Package prim_kruskal computes minimum spanning trees on the undirected,
// non-negatively weighted graphs of package core.
//
// What
//
//   - An MST of a connected weighted graph G = (V, E) is a subset T ⊆ E that
//     connects every vertex and minimizes the sum of weights.
//
// Algorithms Provided
//
//   - Prim(g, root) (*Tree, error)
//
//   - Strategy: grow one tree from root. The frontier holds candidate edges
//     from the tree to outside vertices in insertion order; each round takes
//     the first minimum-weight candidate, connects its far endpoint, drops
//     every candidate pointing at that endpoint and appends the endpoint's
//     edges to unconnected vertices.
//
//   - Prim spans root's component only. A disconnected graph is not an error.
//
//   - The result renders as "B=A, C=B, D=C" (dest=src, sorted, ", ").
//
//   - Complexity: O(V·E) time, O(V + E) memory.
//
//   - Kruskal(g) ([]core.Edge, int64, error)
//
//   - Strategy: stable-sort all edges by weight (ID order breaks ties) and
//     merge components with a disjoint-set forest.
//
//   - Complexity: O(E log E + α(V)·E).
//
//   - Compute(g, opts...) dispatches on WithMethod(MethodPrim|MethodKruskal).
//
// Error Conditions
//
//   - ErrNilGraph      graph is nil.
//   - ErrRootNotFound  Prim root is absent (wraps core.ErrUnknownVertex).
//   - ErrDisconnected  Kruskal on an empty or disconnected graph.
//   - ErrUnknownMethod Compute with an unrecognized method.
package prim_kruskal
