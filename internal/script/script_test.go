package script_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/internal/input"
	"github.com/katalvlaran/graphwalk/internal/script"
	"github.com/katalvlaran/graphwalk/session"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s := session.New(core.NewGraph(), session.WithInterval(time.Millisecond))
	t.Cleanup(s.Close)

	return s
}

func collect(evs *[]session.Event) script.Observer {
	return func(ev session.Event) { *evs = append(*evs, ev) }
}

func lastText(evs []session.Event) string {
	if len(evs) == 0 {
		return ""
	}

	return evs[len(evs)-1].Text
}

func TestLoad_YAML(t *testing.T) {
	sc, err := script.Load("testdata/diamond.yaml")
	require.NoError(t, err)
	require.Len(t, sc.Steps, 10)
	assert.Equal(t, script.KindEdge, sc.Steps[4].Kind)
	assert.Equal(t, "1", sc.Steps[4].Weight)
	assert.True(t, sc.Steps[9].Waits())
}

func TestLoad_HCL(t *testing.T) {
	sc, err := script.Load("testdata/diamond.hcl")
	require.NoError(t, err)
	require.Len(t, sc.Steps, 10)
	assert.Equal(t, script.KindVertex, sc.Steps[0].Kind)
	assert.Equal(t, "A", sc.Steps[0].Label)
	assert.Equal(t, "ac", sc.Steps[6].Key)
	assert.Equal(t, "4", sc.Steps[6].Weight)
	assert.Equal(t, "dijkstra", sc.Steps[8].Value)
}

func TestLoad_Errors(t *testing.T) {
	_, err := script.Load("testdata/missing.yaml")
	assert.Error(t, err)

	_, err = script.Load("testdata/diamond.txt")
	assert.ErrorIs(t, err, script.ErrInvalidScript)
}

func TestDecode_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"unknown kind", "steps:\n  - {kind: jump}\n", script.ErrInvalidScript},
		{"long label", "steps:\n  - {kind: vertex, key: a, label: AB}\n", input.ErrInvalidLabel},
		{"bad weight", "steps:\n  - {kind: edge, from: a, to: b, weight: x}\n", input.ErrInvalidWeight},
		{"missing key", "steps:\n  - {kind: start}\n", script.ErrInvalidScript},
		{"unknown field", "steps:\n  - {kind: stop, colour: red}\n", script.ErrInvalidScript},
		{"bad algorithm", "steps:\n  - {kind: algorithm, value: astar}\n", session.ErrUnknownAlgorithm},
		{"bad mode", "steps:\n  - {kind: mode, value: paint}\n", session.ErrUnknownMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := script.DecodeYAML([]byte(tc.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, script.ErrInvalidScript)
		})
	}
}

func TestDecodeHCL_Invalid(t *testing.T) {
	_, err := script.DecodeHCL([]byte(`step "vertex" {`), "broken.hcl")
	assert.ErrorIs(t, err, script.ErrInvalidScript)

	_, err = script.DecodeHCL([]byte(`step "vertex" { colour = "red" }`), "extra.hcl")
	assert.ErrorIs(t, err, script.ErrInvalidScript)

	_, err = script.DecodeHCL([]byte("step \"edge\" {\n from = \"a\"\n to = \"b\"\n weight = 1.5\n}\n"), "frac.hcl")
	assert.ErrorIs(t, err, input.ErrInvalidWeight)
}

// Negative weights pass input parsing and are rejected by the graph.
func TestApply_NegativeWeight(t *testing.T) {
	sc, err := script.DecodeHCL([]byte(`
step "vertex" {
  key   = "a"
  label = "A"
}
step "vertex" {
  key   = "b"
  label = "B"
}
step "edge" {
  from   = "a"
  to     = "b"
  weight = -3
}
`), "neg.hcl")
	require.NoError(t, err)
	s := newSession(t)
	err = script.Apply(context.Background(), s, sc, nil)
	assert.ErrorIs(t, err, core.ErrInvalidEdge)
	assert.Equal(t, 0, s.Graph().EdgeCount())
}

func TestApply_DepthFirst(t *testing.T) {
	sc, err := script.Load("testdata/diamond.yaml")
	require.NoError(t, err)
	s := newSession(t)

	var evs []session.Event
	require.NoError(t, script.Apply(context.Background(), s, sc, collect(&evs)))

	assert.Equal(t, "DFS : A -> B -> C -> D", lastText(evs))
	assert.Equal(t, session.StateTerminated, s.Current().State())
	assert.Equal(t, 4, s.Graph().VertexCount())
	assert.Equal(t, 4, s.Graph().EdgeCount())

	var played []string
	for _, ev := range evs {
		if ev.Kind == session.StepPlayed {
			played = append(played, ev.Text)
		}
	}
	assert.Equal(t, []string{"A -> B", "B -> C", "C -> D"}, played)
}

func TestApply_HCLShortestPath(t *testing.T) {
	sc, err := script.Load("testdata/diamond.hcl")
	require.NoError(t, err)
	s := newSession(t)

	var evs []session.Event
	require.NoError(t, script.Apply(context.Background(), s, sc, collect(&evs)))
	assert.Equal(t, "B=1, C=3, D=4", lastText(evs))
}

func TestApply_RemoveAndReset(t *testing.T) {
	sc, err := script.DecodeYAML([]byte(`
steps:
  - {kind: vertex, key: a, label: A}
  - {kind: vertex, key: b, label: B}
  - {kind: vertex, key: c, label: C}
  - {kind: edge, key: ab, from: a, to: b, weight: 1}
  - {kind: edge, key: bc, from: b, to: c, weight: 1}
  - {kind: remove_edge, key: ab}
  - {kind: remove_vertex, key: c}
`))
	require.NoError(t, err)
	s := newSession(t)
	require.NoError(t, script.Apply(context.Background(), s, sc, nil))
	assert.Equal(t, 2, s.Graph().VertexCount())
	assert.Equal(t, 0, s.Graph().EdgeCount())
	assert.Equal(t, session.ModeRemoveVertex, s.Mode())

	reset, err := script.DecodeYAML([]byte("steps:\n  - {kind: reset}\n"))
	require.NoError(t, err)
	var evs []session.Event
	require.NoError(t, script.Apply(context.Background(), s, reset, collect(&evs)))
	assert.Equal(t, 0, s.Graph().VertexCount())
	assert.Equal(t, session.StartMode, s.Mode())
	require.NotEmpty(t, evs)
	assert.Equal(t, session.GraphCleared, evs[0].Kind)
}

func TestApply_NoWaitThenStop(t *testing.T) {
	sc, err := script.DecodeYAML([]byte(`
steps:
  - {kind: vertex, key: a, label: A}
  - {kind: vertex, key: b, label: B}
  - {kind: edge, from: a, to: b, weight: 1}
  - {kind: algorithm, value: bfs}
  - {kind: start, key: a, wait: false}
  - {kind: stop}
`))
	require.NoError(t, err)
	require.False(t, sc.Steps[4].Waits())

	s := session.New(core.NewGraph(), session.WithInterval(time.Hour))
	t.Cleanup(s.Close)
	require.NoError(t, script.Apply(context.Background(), s, sc, nil))
	assert.Equal(t, session.StateStopped, s.Current().State())
}

func TestApply_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown vertex":  "steps:\n  - {kind: edge, from: a, to: b, weight: 1}\n",
		"duplicate key":   "steps:\n  - {kind: vertex, key: a, label: A}\n  - {kind: vertex, key: a, label: B}\n",
		"unknown edge":    "steps:\n  - {kind: remove_edge, key: ab}\n",
		"start, no run":   "steps:\n  - {kind: vertex, key: a, label: A}\n  - {kind: start, key: a}\n",
		"start, no vertex": "steps:\n  - {kind: algorithm, value: prim}\n  - {kind: start, key: z}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			sc, err := script.DecodeYAML([]byte(doc))
			require.NoError(t, err)
			err = script.Apply(context.Background(), newSession(t), sc, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "script: step")
		})
	}
}

func TestApply_Cancelled(t *testing.T) {
	sc, err := script.DecodeYAML([]byte("steps:\n  - {kind: vertex, key: a, label: A}\n"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = script.Apply(ctx, newSession(t), sc, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
