package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/graphwalk/core"
)

// frame is one level of the explicit DFS stack: a vertex, its adjacency at the
// time it was entered, and the index of the next neighbor to consider.
type frame struct {
	vertex core.VertexID
	nbs    []core.Neighbor
	next   int
}

// Walker is a lazy, finite, non-restartable depth-first traversal.
type Walker struct {
	graph *core.Graph
	start core.VertexID
	opts  DFSOptions
	stack []frame
	err   error
	done  bool
}

// DFS prepares a depth-first walk from start. The start vertex is marked
// visited and selected immediately; discovery steps are produced by Next.
func DFS(g *core.Graph, start core.VertexID, opts ...Option) (*Walker, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Mark the start vertex; this doubles as the existence check
	if err := g.Visit(start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, err)
	}

	w := &Walker{graph: g, start: start, opts: dopts}
	w.push(start)

	return w, nil
}

// Start returns the vertex the walk began at.
func (w *Walker) Start() core.VertexID { return w.start }

// Next advances the walk to the next discovery step. It returns false once
// every reachable vertex has been discovered, the context is done, or the
// OnVisit hook failed; Err distinguishes the latter two.
func (w *Walker) Next() (core.Step, bool) {
	if w.done {
		return core.Step{}, false
	}
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.fail(w.opts.Ctx.Err())
		default:
		}

		// 2. Backtrack when the top frame has no neighbors left
		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.nbs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		nb := top.nbs[top.next]
		top.next++
		if w.graph.Visited(nb.Vertex) {
			continue
		}

		// 3. Discover: mark, hook, descend
		from := top.vertex
		if err := w.graph.MarkVisited(nb.Vertex); err != nil {
			panic(fmt.Sprintf("dfs: neighbor vanished during walk: %v", err))
		}
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(nb.Vertex); err != nil {
				return w.fail(fmt.Errorf("dfs: OnVisit hook for %d: %w", nb.Vertex, err))
			}
		}
		w.push(nb.Vertex)

		return core.Step{Edge: nb.Edge, From: from, To: nb.Vertex, Weight: nb.Weight}, true
	}
	w.done = true

	return core.Step{}, false
}

// Err reports why the walk stopped early, or nil if it ran to completion.
func (w *Walker) Err() error { return w.err }

// All exposes the remaining steps as a single-use iterator.
func (w *Walker) All() iter.Seq[core.Step] {
	return func(yield func(core.Step) bool) {
		for {
			s, ok := w.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Collect drains the walker into a slice.
func (w *Walker) Collect() ([]core.Step, error) {
	var steps []core.Step
	for s := range w.All() {
		steps = append(steps, s)
	}

	return steps, w.err
}

// push enters v: its adjacency is read once, when the frame is created.
func (w *Walker) push(v core.VertexID) {
	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		panic(fmt.Sprintf("dfs: Neighbors(%d): %v", v, err))
	}
	w.stack = append(w.stack, frame{vertex: v, nbs: nbs})
}

func (w *Walker) fail(err error) (core.Step, bool) {
	w.err = err
	w.done = true
	w.stack = nil

	return core.Step{}, false
}

// Result formats a finished walk as "DFS : <start> -> l1 -> l2 ...".
func Result(g *core.Graph, start core.VertexID, steps []core.Step) string {
	return core.FormatTrace(Name, g.MustLabel(start), g.DestinationLabels(steps))
}
