package bfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/graphwalk/core"
)

// Walker is a lazy, finite, non-restartable breadth-first traversal.
// Steps are produced one level at a time: a level is computed only when the
// previous one has been fully consumed.
type Walker struct {
	graph    *core.Graph
	start    core.VertexID
	opts     BFSOptions
	frontier []core.VertexID
	level    int
	buffer   []core.Step
	pos      int
	depth    map[core.VertexID]int
	parent   map[core.VertexID]core.VertexID
	err      error
	done     bool
}

// BFS prepares a breadth-first walk from start, applying any number of
// functional Options. The start vertex is marked visited and selected at once.
// Returns ErrGraphNil, ErrOptionViolation, or ErrStartVertexNotFound.
func BFS(g *core.Graph, start core.VertexID, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := g.Visit(start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, err)
	}

	return &Walker{
		graph:    g,
		start:    start,
		opts:     o,
		frontier: []core.VertexID{start},
		depth:    map[core.VertexID]int{start: 0},
		parent:   make(map[core.VertexID]core.VertexID),
	}, nil
}

// Start returns the vertex the walk began at.
func (w *Walker) Start() core.VertexID { return w.start }

// Next returns the next admitted step in level order.
func (w *Walker) Next() (core.Step, bool) {
	for !w.done && w.pos >= len(w.buffer) {
		w.expand()
	}
	if w.done && w.pos >= len(w.buffer) {
		return core.Step{}, false
	}
	s := w.buffer[w.pos]
	w.pos++

	return s, true
}

// expand computes the next level from the current frontier, or finishes the
// walk when the frontier is empty or the depth limit is reached.
func (w *Walker) expand() {
	w.buffer, w.pos = w.buffer[:0], 0
	if len(w.frontier) == 0 || (w.opts.MaxDepth > 0 && w.level >= w.opts.MaxDepth) {
		w.done = true
		return
	}
	nextDepth := w.level + 1
	var next []core.VertexID
	var nb core.Neighbor
	for _, u := range w.frontier {
		nbs, err := w.graph.Neighbors(u)
		if err != nil {
			panic(fmt.Sprintf("bfs: Neighbors(%d): %v", u, err))
		}
		for _, nb = range nbs {
			// cancellation check inside neighbor iteration
			select {
			case <-w.opts.Ctx.Done():
				w.fail(w.opts.Ctx.Err())
				return
			default:
			}
			if !w.opts.FilterNeighbor(u, nb.Vertex) || w.graph.Visited(nb.Vertex) {
				continue
			}
			if err = w.graph.MarkVisited(nb.Vertex); err != nil {
				panic(fmt.Sprintf("bfs: neighbor vanished during walk: %v", err))
			}
			w.depth[nb.Vertex] = nextDepth
			w.parent[nb.Vertex] = u
			if err = w.opts.OnVisit(nb.Vertex, nextDepth); err != nil {
				w.fail(fmt.Errorf("bfs: OnVisit error at %d: %w", nb.Vertex, err))
				return
			}
			w.buffer = append(w.buffer, core.Step{Edge: nb.Edge, From: u, To: nb.Vertex, Weight: nb.Weight})
			next = append(next, nb.Vertex)
		}
	}
	w.frontier = next
	w.level = nextDepth
}

func (w *Walker) fail(err error) {
	w.err = err
	w.done = true
	w.buffer, w.pos = nil, 0
	w.frontier = nil
}

// Err reports why the walk stopped early, or nil.
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

// Depth returns the edge distance of v from the start, if v has been reached.
func (w *Walker) Depth(v core.VertexID) (int, bool) {
	d, ok := w.depth[v]

	return d, ok
}

// PathTo reconstructs the path from the start vertex to dest along the
// BFS tree built so far. Returns an error if dest was not reached.
func (w *Walker) PathTo(dest core.VertexID) ([]core.VertexID, error) {
	if _, ok := w.depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := []core.VertexID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Result formats a finished walk as "BFS : <start> -> l1 -> l2 ...".
func Result(g *core.Graph, start core.VertexID, steps []core.Step) string {
	return core.FormatTrace(Name, g.MustLabel(start), g.DestinationLabels(steps))
}
