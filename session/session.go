package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
	"github.com/katalvlaran/graphwalk/dijkstra"
	"github.com/katalvlaran/graphwalk/internal/logging"
	"github.com/katalvlaran/graphwalk/internal/telemetry"
	"github.com/katalvlaran/graphwalk/playback"
	"github.com/katalvlaran/graphwalk/prim_kruskal"
)

// Option configures a Session.
type Option func(*Options)

// Options holds Session configuration.
type Options struct {
	Clock     clock.WithTicker
	Interval  time.Duration
	Logger    *slog.Logger
	Telemetry *telemetry.Recorder
	// Dijkstra options applied to ShortestPath runs.
	Dijkstra []dijkstra.Option
}

// DefaultOptions returns the real clock, the default playback interval, a
// discarding logger and no-op telemetry.
func DefaultOptions() Options {
	return Options{
		Clock:     clock.RealClock{},
		Interval:  playback.DefaultInterval,
		Logger:    logging.Discard(),
		Telemetry: telemetry.Noop(),
	}
}

// WithClock injects the playback time source.
func WithClock(c clock.WithTicker) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithInterval sets the playback cadence.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Interval = d
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTelemetry sets the trace and metric recorder.
func WithTelemetry(r *telemetry.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Telemetry = r
		}
	}
}

// WithDijkstraOptions configures ShortestPath runs, e.g. a distance cap.
func WithDijkstraOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.Dijkstra = append(o.Dijkstra, opts...)
	}
}

// Session is the run-state machine bound to one graph.
type Session struct {
	mu    sync.Mutex
	graph *core.Graph
	mode  Mode
	run   *Run
	opts  Options
	wg    sync.WaitGroup
}

// New creates a Session over g in StartMode.
func New(g *core.Graph, opts ...Option) *Session {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Session{graph: g, mode: StartMode, opts: o}
}

// Graph returns the underlying graph.
func (s *Session) Graph() *core.Graph { return s.graph }

// Mode returns the current edit mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode
}

// Current returns the latest run, which may have ended, or nil.
func (s *Session) Current() *Run {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.run
}

// SetMode stops an active run, then applies m. Reset clears the graph and
// lands in StartMode.
func (s *Session) SetMode(m Mode) []Event {
	s.mu.Lock()
	events, stopped := s.stopActiveLocked()
	if m == ModeReset {
		s.graph.Clear()
		events = append(events, Event{Kind: GraphCleared})
		s.opts.Logger.Debug("graph cleared")
		m = StartMode
	}
	events = append(events, s.setModeLocked(m))
	s.mu.Unlock()

	s.finish(stopped)

	return events
}

// StartAlgorithm stops any active run, switches the mode to None and opens a
// new run waiting for its start vertex.
func (s *Session) StartAlgorithm(a Algorithm) ([]Event, error) {
	if _, ok := algorithmNames[a]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	s.mu.Lock()
	events, stopped := s.stopActiveLocked()
	events = append(events, s.setModeLocked(ModeNone))

	run := newRun(a)
	s.run = run
	run.mu.Lock()
	events = append(events, Event{Kind: StateChanged, Run: run, State: StateSelectStart, Text: run.displayTextLocked()})
	run.mu.Unlock()
	s.logTransition(run, StateSelectStart)
	s.mu.Unlock()

	s.finish(stopped)

	return events, nil
}

// PickStart supplies the start vertex of the pending run. It clears the
// graph's run flags, computes the engine result, moves the run to Running
// and starts playback. Playback stops early if ctx is cancelled.
func (s *Session) PickStart(ctx context.Context, v core.VertexID) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run := s.run
	if run == nil || run.State() != StateSelectStart {
		return nil, ErrNoPendingRun
	}
	if !s.graph.HasVertex(v) {
		return nil, fmt.Errorf("session: start vertex: %w: %d", core.ErrUnknownVertex, v)
	}

	// 1. Fresh flags, then compute.
	s.graph.ResetRunState()
	spanCtx, span := s.opts.Telemetry.StartRun(ctx, run.ID.String(), run.Algorithm.Tag())
	steps, result := s.compute(run.Algorithm, v)
	s.opts.Telemetry.EndRun(spanCtx, span, run.Algorithm.Tag(), len(steps), nil)

	// 2. Running.
	player := playback.New(playback.Steps(steps), result,
		playback.WithClock(s.opts.Clock),
		playback.WithInterval(s.opts.Interval),
		playback.OnStep(s.onStep(ctx, run)),
		playback.OnComplete(s.onComplete(run)),
	)
	run.mu.Lock()
	run.start = v
	run.result = result
	run.player = player
	run.events = make(chan Event, len(steps)+1)
	ev := run.transitionLocked(StateRunning)
	run.mu.Unlock()
	s.logTransition(run, StateRunning, "start", v, "steps", len(steps))

	// 3. Play.
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := player.Run(ctx); err != nil {
			s.opts.Logger.Debug("playback interrupted", "run_id", run.ID, "error", err)
			s.abort(run)
		}
	}()

	return []Event{ev}, nil
}

// Stop stops the active run, if any.
func (s *Session) Stop() []Event {
	s.mu.Lock()
	events, stopped := s.stopActiveLocked()
	s.mu.Unlock()

	s.finish(stopped)

	return events
}

// Close stops the active run and waits for playback goroutines to exit.
func (s *Session) Close() {
	s.Stop()
	s.wg.Wait()
}

// AddVertex adds a vertex. Requires ModeAddVertex.
func (s *Session) AddVertex(label string) (core.VertexID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeAddVertex {
		return 0, s.wrongMode("AddVertex")
	}

	return s.graph.AddVertex(label), nil
}

// AddEdge adds an edge. Requires ModeAddEdge.
func (s *Session) AddEdge(v1, v2 core.VertexID, weight int64) (core.EdgeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeAddEdge {
		return 0, s.wrongMode("AddEdge")
	}

	return s.graph.AddEdge(v1, v2, weight)
}

// RemoveVertex removes a vertex and its edges. Requires ModeRemoveVertex.
func (s *Session) RemoveVertex(v core.VertexID) ([]core.EdgeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeRemoveVertex {
		return nil, s.wrongMode("RemoveVertex")
	}

	return s.graph.RemoveVertex(v)
}

// RemoveEdge removes an edge. Requires ModeRemoveEdge.
func (s *Session) RemoveEdge(e core.EdgeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeRemoveEdge {
		return s.wrongMode("RemoveEdge")
	}
	s.graph.RemoveEdge(e)

	return nil
}

func (s *Session) wrongMode(op string) error {
	return fmt.Errorf("%w: %s in mode %q", ErrWrongMode, op, s.mode)
}

func (s *Session) setModeLocked(m Mode) Event {
	s.mode = m
	s.opts.Logger.Debug("switching mode", "mode", m.String())

	return Event{Kind: ModeChanged, Mode: m, Text: m.Status()}
}

// stopActiveLocked marks the active run Stopped and returns it for finish.
// The player is not touched here: its handlers take s.mu.
func (s *Session) stopActiveLocked() ([]Event, *Run) {
	run := s.run
	if run == nil {
		return nil, nil
	}
	run.mu.Lock()
	if !run.state.Active() {
		run.mu.Unlock()
		return nil, nil
	}
	ev := run.transitionLocked(StateStopped)
	run.mu.Unlock()
	s.logTransition(run, StateStopped)

	return []Event{ev}, run
}

// finish stops the player of a run marked Stopped, then publishes the final
// event and closes the channel. Must be called without s.mu.
func (s *Session) finish(run *Run) {
	if run == nil {
		return
	}
	run.mu.Lock()
	player := run.player
	run.mu.Unlock()
	if player != nil {
		player.Stop()
	}
	run.publish(Event{Kind: StateChanged, Run: run, State: StateStopped})
	run.closeEvents()
}

// abort ends a run whose playback was cancelled through its context.
func (s *Session) abort(run *Run) {
	s.mu.Lock()
	stopped := false
	if s.run == run {
		run.mu.Lock()
		if run.state == StateRunning {
			run.transitionLocked(StateStopped)
			stopped = true
		}
		run.mu.Unlock()
	}
	s.mu.Unlock()
	if stopped {
		s.logTransition(run, StateStopped)
		s.finish(run)
	}
}

func (s *Session) onStep(ctx context.Context, run *Run) func(core.Step) {
	return func(st core.Step) {
		// A tick can race a stop that was already reported.
		if run.State() != StateRunning {
			return
		}
		// Flags may already be gone if the graph changed under a stopped run.
		if err := s.graph.SelectEdge(st.Edge); err != nil {
			s.opts.Logger.Debug("step edge missing", "run_id", run.ID, "edge", st.Edge)
		}
		if err := s.graph.Visit(st.To); err != nil {
			s.opts.Logger.Debug("step vertex missing", "run_id", run.ID, "vertex", st.To)
		}
		text := s.stepText(st)
		s.opts.Telemetry.StepPlayed(ctx, run.Algorithm.Tag())
		run.publish(Event{Kind: StepPlayed, Run: run, Step: st, Text: text})
	}
}

func (s *Session) onComplete(run *Run) func(string) {
	return func(string) {
		s.mu.Lock()
		run.mu.Lock()
		if run.state != StateRunning {
			run.mu.Unlock()
			s.mu.Unlock()
			return
		}
		ev := run.transitionLocked(StateTerminated)
		run.mu.Unlock()
		s.mu.Unlock()

		s.logTransition(run, StateTerminated, "result", ev.Text)
		run.publish(ev)
		run.closeEvents()
	}
}

func (s *Session) stepText(st core.Step) string {
	from, err := s.graph.Label(st.From)
	if err != nil {
		from = "?"
	}
	to, err := s.graph.Label(st.To)
	if err != nil {
		to = "?"
	}

	return from + " -> " + to
}

// compute runs the engine for a and returns the steps to play and the
// result string. The start vertex has been validated, so any engine error
// is a broken invariant.
func (s *Session) compute(a Algorithm, start core.VertexID) ([]core.Step, string) {
	switch a {
	case DepthFirst:
		w, err := dfs.DFS(s.graph, start)
		if err != nil {
			panic(fmt.Sprintf("session: dfs: %v", err))
		}
		steps, err := w.Collect()
		if err != nil {
			panic(fmt.Sprintf("session: dfs: %v", err))
		}

		return steps, dfs.Result(s.graph, start, steps)
	case BreadthFirst:
		w, err := bfs.BFS(s.graph, start)
		if err != nil {
			panic(fmt.Sprintf("session: bfs: %v", err))
		}
		steps, err := w.Collect()
		if err != nil {
			panic(fmt.Sprintf("session: bfs: %v", err))
		}

		return steps, bfs.Result(s.graph, start, steps)
	case ShortestPath:
		if err := s.graph.SelectVertex(start); err != nil {
			panic(fmt.Sprintf("session: dijkstra: %v", err))
		}
		res, err := dijkstra.Dijkstra(s.graph, start, s.opts.Dijkstra...)
		if err != nil {
			panic(fmt.Sprintf("session: dijkstra: %v", err))
		}

		return nil, res.String()
	case SpanningTree:
		tree, err := prim_kruskal.Prim(s.graph, start)
		if err != nil {
			panic(fmt.Sprintf("session: prim: %v", err))
		}

		return tree.Edges, tree.String()
	}
	panic(fmt.Sprintf("session: unknown algorithm %d", int(a)))
}

func (s *Session) logTransition(run *Run, st State, attrs ...any) {
	args := append([]any{"run_id", run.ID, "algorithm", run.Algorithm.Tag(), "state", st.String()}, attrs...)
	s.opts.Logger.Debug("switching run state", args...)
}
