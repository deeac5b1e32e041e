// Package core provides the graph store every graphwalk engine reads from: an
// arena of vertex and edge records addressed by small integer identities.
//
// The Graph G = (V,E) is logically undirected and weighted:
//
//   - Every edge is stored as two reciprocal half-edge records, one in each
//     endpoint's adjacency list, sharing a single weight value.
//   - Each half-edge keeps a back-pointer to its twin, so removing either side
//     removes both in O(1).
//   - Adjacency lists keep insertion order. That order is algorithmically
//     significant: it drives DFS/BFS discovery order and Prim's tie-breaking.
//   - Self-loops and negative weights are rejected at the boundary
//     (ErrInvalidEdge); nothing is partially applied.
//   - Vertex and edge identities come from monotonically increasing counters
//     and are never reused, not even after Clear.
//
// Every vertex carries two transient per-run flags, visited and selected; edges
// carry a selected flag. They belong to the currently running algorithm and the
// renderer, and ResetRunState clears them before each run.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(label string) VertexID                       // O(1)
//	RemoveVertex(v VertexID) ([]EdgeID, error)             // O(deg(v))
//	HasVertex(v VertexID) bool                             // O(1)
//	Label(v VertexID) (string, error)                      // O(1)
//
//	// Edge lifecycle
//	AddEdge(v1, v2 VertexID, weight int64) (EdgeID, error) // O(1)
//	RemoveEdge(e EdgeID)                                   // O(1), idempotent
//	HasEdge(e EdgeID) bool                                 // O(1)
//
//	// Query
//	Neighbors(v VertexID) ([]Neighbor, error)              // O(deg(v)), insertion order
//	Vertices() []VertexID                                  // O(V), insertion order
//	Edges() []Edge                                         // O(E log E), by EdgeID
//
//	// Run state
//	ResetRunState()                                        // O(V+E)
//	MarkVisited / SelectVertex / SelectEdge                // O(1)
//	Snapshot() Snapshot                                    // O(V+E)
//
// Errors:
//
//	ErrInvalidEdge   – self-loop, unknown endpoint or negative weight
//	ErrUnknownVertex – stale or never-issued VertexID
//	ErrEdgeNotFound  – stale or never-issued EdgeID (lookups only)
//
// All methods are safe for concurrent use; a single sync.RWMutex guards the
// store so the playback goroutine can flip flags while a renderer reads.
package core
