// Package core defines the central Graph, vertex and edge records, public
// value types and sentinel errors.
//
// This file declares VertexID, EdgeID, the internal arena records, the
// exported snapshot/value types and the NewGraph constructor.
package core

import (
	"container/list"
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge indicates a rejected edge request: a self-loop, an unknown
	// endpoint, or a negative weight.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrUnknownVertex indicates an operation referenced a vertex identity that
	// does not exist (never issued, or removed).
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrEdgeNotFound indicates a lookup referenced an edge identity that does
	// not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// VertexID identifies a vertex within its Graph. Zero is never issued.
type VertexID uint64

// EdgeID identifies an undirected edge within its Graph. Zero is never issued.
type EdgeID uint64

// vertexRecord is the arena entry for one vertex.
type vertexRecord struct {
	id    VertexID
	label string

	// adjacency holds *halfEdge values in insertion order.
	adjacency *list.List

	visited  bool
	selected bool
}

// halfEdge is one directed view of an undirected edge, living in the
// adjacency list of its origin vertex.
type halfEdge struct {
	edge   *edgeRecord
	origin VertexID
	dest   VertexID

	// twin is the reciprocal record in dest's adjacency list.
	twin *halfEdge

	// elem is this record's position in origin's adjacency list.
	elem *list.Element
}

// edgeRecord owns both half-edges and the shared weight.
type edgeRecord struct {
	id       EdgeID
	weight   int64
	forward  *halfEdge // v1 → v2, as requested by AddEdge
	backward *halfEdge // v2 → v1
	selected bool
}

// Neighbor is one entry of a vertex's adjacency list as seen from the outside.
type Neighbor struct {
	// Edge is the identity of the undirected edge.
	Edge EdgeID

	// Weight is the shared edge weight.
	Weight int64

	// Vertex is the neighbor at the far end of the edge.
	Vertex VertexID
}

// Edge is a read-only value describing an undirected edge. From and To keep
// the endpoint order of the AddEdge call that created it.
type Edge struct {
	ID     EdgeID
	From   VertexID
	To     VertexID
	Weight int64
}

// Graph is the in-memory arena of vertices and edges.
//
// vertices and edges are keyed by identity; order records vertex insertion
// order so Vertices() is deterministic.
type Graph struct {
	mu sync.RWMutex

	nextVertexID VertexID
	nextEdgeID   EdgeID

	vertices map[VertexID]*vertexRecord
	edges    map[EdgeID]*edgeRecord
	order    []VertexID
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[VertexID]*vertexRecord),
		edges:    make(map[EdgeID]*edgeRecord),
	}
}
