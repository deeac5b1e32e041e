// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// api.go - BuildGraph orchestrator and the Constructor type.
//
// Contract:
//   • Constructors validate early and return sentinel errors; never panic.
//   • Same options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves bopts and applies cons in
// order. The first constructor error is wrapped as "BuildGraph: %w"; the
// partial graph is discarded.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices adds n vertices labelled by cfg.idFn and returns their
// identities in index order.
func addVertices(g *core.Graph, cfg builderConfig, n int) []core.VertexID {
	ids := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddVertex(cfg.idFn(i))
	}

	return ids
}

// link adds u–v with the next configured weight.
func link(g *core.Graph, cfg builderConfig, method string, u, v core.VertexID) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d–%d, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
