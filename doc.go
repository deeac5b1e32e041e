// Package graphwalk is an in-memory playground for watching graph algorithms
// work, one discovery step at a time.
//
// What is inside?
//
//	core/          - undirected weighted graph store with run flags and snapshots
//	dfs/, bfs/     - lazy traversal walkers producing discovery steps
//	dijkstra/      - single-source shortest distances (non-negative weights)
//	prim_kruskal/  - minimum spanning trees; Prim drives playback, Kruskal cross-checks
//	playback/      - tick-driven step playback on an injectable clock
//	session/       - edit modes and the run-state machine tying it all together
//	builder/       - deterministic graph fixtures (cycle, grid, random, ...)
//	cmd/graphwalk  - CLI replaying YAML/HCL scripts and generated demos
//
// Quick ASCII example:
//
//	A ──1── B
//	  ╲     │
//	   4    2
//	     ╲  │
//	        C ──1── D
//
// DFS from A plays "A -> B", "B -> C", "C -> D" and ends with
// "DFS : A -> B -> C -> D".
package graphwalk
