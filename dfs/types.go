// Package dfs defines options and sentinel errors for depth-first traversal.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphwalk/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Name is the algorithm tag used in result strings.
const Name = "DFS"

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order),
	// after it has been marked visited. Returning an error aborts the walk.
	OnVisit func(v core.VertexID) error
}

// DefaultOptions returns DFSOptions with a background context and no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for the walk.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a discovery hook.
func WithOnVisit(fn func(v core.VertexID) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}
