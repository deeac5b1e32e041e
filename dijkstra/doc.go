// Package dijkstra provides Dijkstra's shortest-path algorithm on the
// undirected, non-negatively weighted graphs of package core.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (container/heap) to always expand the next-closest vertex.
//     Decrease-key is lazy: improved distances are pushed again and stale entries
//     are skipped when popped.
//   - Relaxation only targets unprocessed neighbors and requires a strict improvement.
//   - Supports optional path reconstruction, distance caps, and "impassable" edge thresholds.
//
// Result:
//
//   - Result.Distances holds every reached vertex; unreachable ones are absent.
//   - Result.String renders "B=1, C=3, D=4": vertices at distance > 0, formatted
//     label=distance, sorted, joined by ", ". A lone source renders as "".
//
// The engine emits no discovery steps and does not touch the graph's run flags.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  the source vertex does not exist (wraps core.ErrUnknownVertex).
//   - ErrNegativeWeight:  any edge has a negative weight.
//   - ErrBadMaxDistance:  panic value for a negative MaxDistance.
//   - ErrBadInfThreshold: panic value for a non-positive InfEdgeThreshold.
package dijkstra
