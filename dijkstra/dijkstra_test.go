// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dijkstra"
)

func mustEdge(t *testing.T, g *core.Graph, u, v core.VertexID, w int64) {
	t.Helper()
	if _, err := g.AddEdge(u, v, w); err != nil {
		t.Fatalf("AddEdge(%d,%d,%d): %v", u, v, w, err)
	}
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	if _, err := dijkstra.Dijkstra(nil, 1); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_VertexNotFound(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	_, err := dijkstra.Dijkstra(g, 77)
	if !errors.Is(err, dijkstra.ErrVertexNotFound) || !errors.Is(err, core.ErrUnknownVertex) {
		t.Fatalf("Expected ErrVertexNotFound wrapping core.ErrUnknownVertex, got %v", err)
	}
}

func TestDijkstra_BadOptionsPanic(t *testing.T) {
	for name, opt := range map[string]func() dijkstra.Option{
		"max distance":  func() dijkstra.Option { return dijkstra.WithMaxDistance(-1) },
		"inf threshold": func() dijkstra.Option { return dijkstra.WithInfEdgeThreshold(0) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			o := dijkstra.DefaultOptions()
			opt()(&o)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Scenario Tests
// ------------------------------------------------------------------------

func TestDijkstra_Diamond(t *testing.T) {
	g := core.NewGraph()
	a, b, c, d := g.AddVertex("A"), g.AddVertex("B"), g.AddVertex("C"), g.AddVertex("D")
	mustEdge(t, g, a, b, 1)
	mustEdge(t, g, b, c, 2)
	mustEdge(t, g, a, c, 4)
	mustEdge(t, g, c, d, 1)

	res, err := dijkstra.Dijkstra(g, a)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.String(); got != "B=1, C=3, D=4" {
		t.Fatalf("String = %q", got)
	}
	if d0, ok := res.Distance(a); !ok || d0 != 0 {
		t.Errorf("Distance(A) = %d,%v; want 0,true", d0, ok)
	}
	if g.Visited(b) || g.Selected(a) {
		t.Errorf("Dijkstra must not touch run flags")
	}
}

func TestDijkstra_FourCycle(t *testing.T) {
	// A–B(1), B–C(2), C–D(3), D–A(4)
	g := core.NewGraph()
	a, b, c, d := g.AddVertex("A"), g.AddVertex("B"), g.AddVertex("C"), g.AddVertex("D")
	mustEdge(t, g, a, b, 1)
	mustEdge(t, g, b, c, 2)
	mustEdge(t, g, c, d, 3)
	mustEdge(t, g, d, a, 4)

	res, err := dijkstra.Dijkstra(g, a)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.String(); got != "B=1, C=3, D=4" {
		t.Fatalf("String = %q", got)
	}
}

func TestDijkstra_UnreachableAndSingle(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex("A")
	z := g.AddVertex("Z")

	res, err := dijkstra.Dijkstra(g, a)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.String(); got != "" {
		t.Errorf("String = %q; want empty", got)
	}
	if _, ok := res.Distance(z); ok {
		t.Errorf("unreachable vertex reported")
	}
}

func TestDijkstra_ZeroWeightOmitted(t *testing.T) {
	g := core.NewGraph()
	a, b, c := g.AddVertex("A"), g.AddVertex("B"), g.AddVertex("C")
	mustEdge(t, g, a, b, 0)
	mustEdge(t, g, b, c, 5)

	res, _ := dijkstra.Dijkstra(g, a)
	if got := res.String(); got != "C=5" {
		t.Fatalf("String = %q; want %q", got, "C=5")
	}
}

func TestDijkstra_MaxDistanceAndThreshold(t *testing.T) {
	g := core.NewGraph()
	a, b, c := g.AddVertex("A"), g.AddVertex("B"), g.AddVertex("C")
	mustEdge(t, g, a, b, 3)
	mustEdge(t, g, b, c, 3)
	mustEdge(t, g, a, c, 100)

	res, _ := dijkstra.Dijkstra(g, a, dijkstra.WithMaxDistance(4))
	if _, ok := res.Distance(c); ok {
		t.Errorf("C beyond MaxDistance must be absent")
	}
	res, _ = dijkstra.Dijkstra(g, a, dijkstra.WithInfEdgeThreshold(3))
	if got := res.String(); got != "" {
		t.Errorf("every edge is a wall; got %q", got)
	}
}

// TestDijkstra_ExtremeWeights: a MaxInt64 edge is still an ordinary edge,
// and a path whose sum would overflow is treated as unreachable rather than
// wrapping to a negative distance.
func TestDijkstra_ExtremeWeights(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddVertex("A"), g.AddVertex("B")
	mustEdge(t, g, a, b, math.MaxInt64)
	res, err := dijkstra.Dijkstra(g, a)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.String(), "B=9223372036854775807"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}

	g = core.NewGraph()
	a, b = g.AddVertex("A"), g.AddVertex("B")
	c := g.AddVertex("C")
	mustEdge(t, g, a, b, math.MaxInt64-1)
	mustEdge(t, g, b, c, 5)
	res, err = dijkstra.Dijkstra(g, a)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Distance(c); ok {
		t.Errorf("C must be unreachable when its distance overflows int64")
	}
	for v, d := range res.Distances {
		if d < 0 {
			t.Errorf("vertex %d has negative distance %d", v, d)
		}
	}
	if got, want := res.String(), "B=9223372036854775806"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

// TestDijkstra_ThresholdDisabledByDefault checks the zero threshold.
func TestDijkstra_ThresholdDisabledByDefault(t *testing.T) {
	if got := dijkstra.DefaultOptions().InfEdgeThreshold; got != 0 {
		t.Fatalf("default InfEdgeThreshold = %d; want 0", got)
	}
	g := core.NewGraph()
	a, b := g.AddVertex("A"), g.AddVertex("B")
	mustEdge(t, g, a, b, 50)
	res, _ := dijkstra.Dijkstra(g, a, dijkstra.WithInfEdgeThreshold(51))
	if got := res.String(); got != "B=50" {
		t.Errorf("edge below threshold must be walkable; got %q", got)
	}
}

// ------------------------------------------------------------------------
// 3. Property: agree with Floyd–Warshall on random graphs.
// ------------------------------------------------------------------------

func TestDijkstra_MatchesFloydWarshall(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	const n = 9
	for round := 0; round < 40; round++ {
		g := core.NewGraph()
		vs := make([]core.VertexID, n)
		for i := range vs {
			vs[i] = g.AddVertex(string(rune('A' + i)))
		}
		fw := make([][]int64, n)
		for i := range fw {
			fw[i] = make([]int64, n)
			for j := range fw[i] {
				if i != j {
					fw[i][j] = math.MaxInt64
				}
			}
		}
		for k := 0; k < 14; k++ {
			i, j := r.Intn(n), r.Intn(n)
			if i == j {
				continue
			}
			w := int64(r.Intn(10))
			mustEdge(t, g, vs[i], vs[j], w)
			if w < fw[i][j] {
				fw[i][j], fw[j][i] = w, w
			}
		}
		for k := 0; k < n; k++ {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if fw[i][k] == math.MaxInt64 || fw[k][j] == math.MaxInt64 {
						continue
					}
					if s := fw[i][k] + fw[k][j]; s < fw[i][j] {
						fw[i][j] = s
					}
				}
			}
		}

		src := r.Intn(n)
		res, err := dijkstra.Dijkstra(g, vs[src], dijkstra.WithReturnPath())
		if err != nil {
			t.Fatal(err)
		}
		for j := 0; j < n; j++ {
			got, ok := res.Distance(vs[j])
			if fw[src][j] == math.MaxInt64 {
				if ok {
					t.Fatalf("round %d: %d reported reachable", round, j)
				}
				continue
			}
			if !ok || got != fw[src][j] {
				t.Fatalf("round %d: dist(%d) = %d,%v; want %d", round, j, got, ok, fw[src][j])
			}
			path, err := res.PathTo(vs[j])
			if err != nil || path[0] != vs[src] || path[len(path)-1] != vs[j] {
				t.Fatalf("round %d: bad path %v (%v)", round, path, err)
			}
		}
	}
}
