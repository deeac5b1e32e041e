// SPDX-License-Identifier: MIT
// Package core_test shared fixtures and assertion helpers.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/graphwalk/core"
)

// diamond holds the A,B,C,D fixture used across tests:
//
//	A─1─B
//	 \  │
//	  4 2
//	   \│
//	    C─1─D
type diamond struct {
	g          *core.Graph
	a, b, c, d core.VertexID
	ab, bc, ac core.EdgeID
	cd         core.EdgeID
}

// newDiamond builds the fixture with adjacency insertion order A→B, A→C.
func newDiamond(t *testing.T) diamond {
	t.Helper()
	g := core.NewGraph()
	f := diamond{g: g}
	f.a = g.AddVertex("A")
	f.b = g.AddVertex("B")
	f.c = g.AddVertex("C")
	f.d = g.AddVertex("D")
	f.ab = MustEdge(t, g, f.a, f.b, 1)
	f.bc = MustEdge(t, g, f.b, f.c, 2)
	f.ac = MustEdge(t, g, f.a, f.c, 4)
	f.cd = MustEdge(t, g, f.c, f.d, 1)

	return f
}

// MustEdge adds an edge or fails the test.
func MustEdge(t *testing.T, g *core.Graph, v1, v2 core.VertexID, w int64) core.EdgeID {
	t.Helper()
	id, err := g.AddEdge(v1, v2, w)
	if err != nil {
		t.Fatalf("AddEdge(%d,%d,%d): %v", v1, v2, w, err)
	}

	return id
}

// MustErrorIs fails the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, ctx string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want %v, got %v", ctx, target, err)
	}
}

// MustNeighbors returns Neighbors(v) or fails the test.
func MustNeighbors(t *testing.T, g *core.Graph, v core.VertexID) []core.Neighbor {
	t.Helper()
	nbs, err := g.Neighbors(v)
	if err != nil {
		t.Fatalf("Neighbors(%d): %v", v, err)
	}

	return nbs
}

// hasNeighbor reports whether nbs contains (edge, weight, vertex).
func hasNeighbor(nbs []core.Neighbor, e core.EdgeID, w int64, v core.VertexID) bool {
	for _, n := range nbs {
		if n.Edge == e && n.Weight == w && n.Vertex == v {
			return true
		}
	}

	return false
}
