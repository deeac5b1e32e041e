// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"sort"
	"strings"

	"github.com/katalvlaran/graphwalk/core"
)

// ErrNilGraph is returned when a nil *core.Graph is passed in.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrRootNotFound indicates that the Prim root vertex does not exist.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Only Kruskal reports it: Prim
// spans the component of its root.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod is returned by Compute for an unrecognized Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root over an ordered frontier).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Tree is a spanning tree grown by Prim.
type Tree struct {
	// Root is the vertex the tree was grown from.
	Root core.VertexID

	// Edges lists the selected edges in selection order. Each step goes from
	// the already connected endpoint to the newly connected one.
	Edges []core.Step

	// Total is the sum of the selected edge weights.
	Total int64

	labels map[core.VertexID]string
}

// String renders "dest=src" for every selected edge, sorted lexicographically
// and joined by ", ". A tree without edges renders as "".
func (t *Tree) String() string {
	parts := make([]string, 0, len(t.Edges))
	for _, s := range t.Edges {
		parts = append(parts, t.labels[s.To]+"="+t.labels[s.From])
	}
	sort.Strings(parts)

	return strings.Join(parts, ", ")
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Complexity: O(V·E) for Prim's ordered frontier, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root core.VertexID
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root core.VertexID) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm based on the options and
// returns the selected edges with their total weight.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		tree, err := Prim(graph, o.Root)
		if err != nil {
			return nil, 0, err
		}
		edges := make([]core.Edge, 0, len(tree.Edges))
		for _, s := range tree.Edges {
			edges = append(edges, core.Edge{ID: s.Edge, From: s.From, To: s.To, Weight: s.Weight})
		}

		return edges, tree.Total, nil
	default:
		return nil, 0, ErrUnknownMethod
	}
}
