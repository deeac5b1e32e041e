// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// The algorithm maintains a priority queue of vertices to explore and
// relaxes edges in increasing order of distance from the source vertex.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Each vertex is extracted from the priority queue at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) to store distance and predecessor maps.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– ReturnPath:       if true, keep the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable
//	                    (0, the default, disables the check).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is met during relaxation.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, a, dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res) // "B=1, C=3, D=4"
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was met during
	// relaxation. The store rejects such weights, so this marks a broken invariant.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, Result.Prev is populated; otherwise it is nil.
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Zero (the default) disables the check; WithInfEdgeThreshold requires > 0.
type Options struct {
	ReturnPath       bool  // Whether to keep the predecessor map
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: 0 (disabled; every edge is traversable).
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: 0,
	}
}
