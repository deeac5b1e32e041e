package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := execute(context.Background(), cmd)

	return out.String(), errOut.String(), err
}

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

const triangle = `
steps:
  - {kind: vertex, key: a, label: A}
  - {kind: vertex, key: b, label: B}
  - {kind: vertex, key: c, label: C}
  - {kind: edge, from: a, to: b, weight: 1}
  - {kind: edge, from: b, to: c, weight: 2}
  - {kind: edge, from: a, to: c, weight: 5}
  - {kind: algorithm, value: prim}
  - {kind: start, key: a}
`

func TestAlgorithmsCommand(t *testing.T) {
	out, _, err := run(t, "algorithms")
	require.NoError(t, err)
	assert.Contains(t, out, "DFS")
	assert.Contains(t, out, "BFS")
	assert.Contains(t, out, "DIJKSTRA")
	assert.Contains(t, out, "PRIM")
}

func TestRunCommand(t *testing.T) {
	path := writeScript(t, "triangle.yaml", triangle)
	out, _, err := run(t, "run", path, "--interval", "1ms", "--no-color", "--log-level", "warn")
	require.NoError(t, err)

	assert.Contains(t, out, "[PRIM] Please choose a starting vertex")
	assert.Contains(t, out, "  step A -> B")
	assert.Contains(t, out, "  step B -> C")
	assert.Contains(t, out, "[PRIM] B=A, C=B")
	assert.Contains(t, out, "A* : B(1)* C(5)")
}

func TestRunCommand_DebugLogs(t *testing.T) {
	path := writeScript(t, "triangle.yaml", triangle)
	_, logs, err := run(t, "run", path, "--interval", "1ms", "--no-color", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"switching run state"`)
	assert.Contains(t, logs, `"service":"graphwalk"`)
}

func TestRunCommand_Errors(t *testing.T) {
	_, stderr, err := run(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, stderr, "error: script:")
	assert.Contains(t, stderr, "missing.yaml")

	bad := writeScript(t, "bad.yaml", "steps:\n  - {kind: vertex, key: a, label: AB}\n")
	_, stderr, err = run(t, "run", bad)
	require.Error(t, err)
	assert.Contains(t, stderr, "label must be exactly one non-blank character")

	path := writeScript(t, "triangle.yaml", triangle)
	_, stderr, err = run(t, "run", path, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, stderr, `invalid level "loud"`)

	_, stderr, err = run(t, "run")
	require.Error(t, err)
	assert.Contains(t, stderr, "accepts 1 arg(s)")

	// Failures during apply are reported once.
	dup := writeScript(t, "dup.yaml", "steps:\n  - {kind: vertex, key: a, label: A}\n  - {kind: vertex, key: a, label: B}\n")
	out, stderr, err := run(t, "run", dup, "--no-color")
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(stderr, "already used"))
	assert.NotContains(t, out, "error:")
}

func TestDemoCommand(t *testing.T) {
	out, _, err := run(t, "demo", "path", "-n", "3", "-a", "bfs", "--interval", "1ms", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "  step A -> B")
	assert.Contains(t, out, "  step B -> C")
	assert.Contains(t, out, "[BFS] BFS : A -> B -> C")
}

func TestDemoCommand_SpanningTreeCheck(t *testing.T) {
	out, _, err := run(t, "demo", "cycle", "-n", "4", "-a", "prim", "--max-weight", "1", "--interval", "1ms", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "[PRIM] B=A, C=B, D=A")
	assert.Contains(t, out, "mst check: prim total 3, kruskal total 3")
}

func TestDemoCommand_MaxDistance(t *testing.T) {
	out, _, err := run(t, "demo", "path", "-n", "4", "-a", "dijkstra", "--max-weight", "1", "--max-distance", "2", "--interval", "1ms", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "[DIJKSTRA] B=1, C=2\n")

	_, stderr, err := run(t, "demo", "path", "--max-distance", "-1")
	require.Error(t, err)
	assert.Contains(t, stderr, "--max-distance must not be negative")
}

func TestDemoCommand_Errors(t *testing.T) {
	_, stderr, err := run(t, "demo", "hexagon")
	assert.ErrorContains(t, err, "unknown shape")
	assert.Contains(t, stderr, `error: unknown shape "hexagon"`)

	_, _, err = run(t, "demo", "cycle", "-n", "2")
	assert.Error(t, err)

	_, _, err = run(t, "demo", "grid", "-a", "astar")
	assert.Error(t, err)
}
