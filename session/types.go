package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
)

var (
	// ErrWrongMode is returned by an edit operation outside its mode.
	ErrWrongMode = errors.New("session: operation not allowed in current mode")

	// ErrNoPendingRun is returned by PickStart when no run awaits a start vertex.
	ErrNoPendingRun = errors.New("session: no run is waiting for a start vertex")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm.
	ErrUnknownAlgorithm = errors.New("session: unknown algorithm")

	// ErrUnknownMode is returned for an unrecognized mode.
	ErrUnknownMode = errors.New("session: unknown mode")
)

// Algorithm selects an engine.
type Algorithm int

const (
	// DepthFirst plays a pre-order DFS from the start vertex.
	DepthFirst Algorithm = iota + 1
	// BreadthFirst plays a level-synchronous BFS.
	BreadthFirst
	// ShortestPath runs Dijkstra and reports distances without steps.
	ShortestPath
	// SpanningTree plays Prim's tree edges in selection order.
	SpanningTree
)

var algorithmNames = map[Algorithm]string{
	DepthFirst:   "Depth-First Search",
	BreadthFirst: "Breadth-First Search",
	ShortestPath: "Dijkstra's Algorithm",
	SpanningTree: "Prim's Algorithm",
}

// Algorithms lists every algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{DepthFirst, BreadthFirst, ShortestPath, SpanningTree}
}

func (a Algorithm) String() string {
	if n, ok := algorithmNames[a]; ok {
		return n
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Tag is the short name used in logs, metrics and traversal results.
func (a Algorithm) Tag() string {
	switch a {
	case DepthFirst:
		return dfs.Name
	case BreadthFirst:
		return bfs.Name
	case ShortestPath:
		return "DIJKSTRA"
	case SpanningTree:
		return "PRIM"
	}

	return "UNKNOWN"
}

// ParseAlgorithm accepts dfs, bfs, dijkstra, prim or a display name,
// case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "dfs":
		return DepthFirst, nil
	case "bfs":
		return BreadthFirst, nil
	case "dijkstra":
		return ShortestPath, nil
	case "prim":
		return SpanningTree, nil
	}
	for a, n := range algorithmNames {
		if strings.ToLower(n) == key {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Mode is the current edit mode.
type Mode int

const (
	// ModeNone allows no edits; choosing an algorithm switches to it.
	ModeNone Mode = iota
	// ModeAddVertex allows AddVertex.
	ModeAddVertex
	// ModeAddEdge allows AddEdge.
	ModeAddEdge
	// ModeRemoveVertex allows RemoveVertex.
	ModeRemoveVertex
	// ModeRemoveEdge allows RemoveEdge.
	ModeRemoveEdge
	// ModeReset clears the graph and lands in StartMode.
	ModeReset
)

// StartMode is the mode of a fresh session and the mode Reset returns to.
const StartMode = ModeAddVertex

var modeNames = map[Mode]string{
	ModeNone:         "None",
	ModeAddVertex:    "Add a Vertex",
	ModeAddEdge:      "Add an Edge",
	ModeRemoveVertex: "Remove a Vertex",
	ModeRemoveEdge:   "Remove an Edge",
	ModeReset:        "Reset",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// Status renders the mode status line.
func (m Mode) Status() string {
	return "Current Mode -> " + m.String()
}

// ParseMode accepts none, add_vertex, add_edge, remove_vertex, remove_edge,
// reset or a display name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch strings.NewReplacer("-", "_", " ", "_").Replace(key) {
	case "none":
		return ModeNone, nil
	case "add_vertex", "add_a_vertex":
		return ModeAddVertex, nil
	case "add_edge", "add_an_edge":
		return ModeAddEdge, nil
	case "remove_vertex", "remove_a_vertex":
		return ModeRemoveVertex, nil
	case "remove_edge", "remove_an_edge":
		return ModeRemoveEdge, nil
	case "reset":
		return ModeReset, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// State is the lifecycle state of a Run.
type State int

const (
	// StateSelectStart waits for PickStart.
	StateSelectStart State = iota
	// StateRunning is playing steps.
	StateRunning
	// StateStopped was cancelled; terminal.
	StateStopped
	// StateTerminated played every step and shows the result; terminal.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateSelectStart:
		return "SelectStart"
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	case StateTerminated:
		return "Terminated"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Active reports whether a run in this state can still be stopped.
func (s State) Active() bool {
	return s == StateSelectStart || s == StateRunning
}

const (
	selectStartText = "Please choose a starting vertex"
	runningText     = "Please wait..."
)

// EventKind classifies an Event.
type EventKind int

const (
	// ModeChanged carries the new Mode and its status line.
	ModeChanged EventKind = iota + 1
	// StateChanged carries the run's new State and display text.
	StateChanged
	// StepPlayed carries one discovery step and its "A -> B" text.
	StepPlayed
	// GraphCleared follows a Reset.
	GraphCleared
)

func (k EventKind) String() string {
	switch k {
	case ModeChanged:
		return "ModeChanged"
	case StateChanged:
		return "StateChanged"
	case StepPlayed:
		return "StepPlayed"
	case GraphCleared:
		return "GraphCleared"
	}

	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one observable transition.
//
//	ModeChanged:  Mode set, Text is the mode status line.
//	StateChanged: Run and State set, Text is the run's display text.
//	StepPlayed:   Run and Step set, Text is "<from> -> <to>".
//	GraphCleared: no payload.
type Event struct {
	Kind  EventKind
	Run   *Run
	State State
	Mode  Mode
	Step  core.Step
	Text  string
}
