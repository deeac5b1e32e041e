package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphwalk/core"
)

// Result is the outcome of one Dijkstra run.
type Result struct {
	// Source is the start vertex.
	Source core.VertexID

	// Distances maps every reached vertex (Source included, at 0) to its
	// shortest distance. Unreachable vertices are absent.
	Distances map[core.VertexID]int64

	// Prev maps a reached vertex to its predecessor on a shortest path.
	// Nil unless WithReturnPath was given.
	Prev map[core.VertexID]core.VertexID

	labels map[core.VertexID]string
}

// Distance returns the shortest distance to v and whether v was reached.
func (r *Result) Distance(v core.VertexID) (int64, bool) {
	d, ok := r.Distances[v]

	return d, ok
}

// PathTo returns the vertices of a shortest path from Source to dest.
// Requires WithReturnPath.
func (r *Result) PathTo(dest core.VertexID) ([]core.VertexID, error) {
	if r.Prev == nil {
		return nil, fmt.Errorf("dijkstra: predecessors not recorded")
	}
	if _, ok := r.Distances[dest]; !ok {
		return nil, fmt.Errorf("dijkstra: vertex %d not reached", dest)
	}
	path := []core.VertexID{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// String renders "label=distance" for every vertex at positive distance,
// sorted lexicographically and joined by ", ". Zero-distance vertices,
// including the source, are omitted.
func (r *Result) String() string {
	parts := make([]string, 0, len(r.Distances))
	for v, d := range r.Distances {
		if d <= 0 {
			continue
		}
		parts = append(parts, r.labels[v]+"="+strconv.FormatInt(d, 10))
	}
	sort.Strings(parts)

	return strings.Join(parts, ", ")
}

// Dijkstra computes shortest distances from source to every reachable vertex
// of g. It accepts functional options to customize behavior (ReturnPath,
// MaxDistance, InfEdgeThreshold).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound, wrapping core.ErrUnknownVertex).
//
// A negative weight met while relaxing aborts the run with ErrNegativeWeight.
// Sums that would overflow int64 are treated as unreachable.
//
// The graph's run flags are not touched.
func Dijkstra(g *core.Graph, source core.VertexID, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source exists in the graph
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %w: %d", ErrVertexNotFound, core.ErrUnknownVertex, source)
	}

	// 4) Prepare data structures for the algorithm.
	V := g.VertexCount()
	r := &runner{
		g:         g,
		options:   cfg,
		dist:      make(map[core.VertexID]int64, V),
		processed: make(map[core.VertexID]bool, V),
		pq:        make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[core.VertexID]core.VertexID, V)
	}

	// 5) Initialize and run main loop.
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 6) Keep only finalized distances and capture labels for rendering.
	res := &Result{
		Source:    source,
		Distances: make(map[core.VertexID]int64, len(r.processed)),
		Prev:      r.prev,
		labels:    make(map[core.VertexID]string, len(r.processed)),
	}
	for v := range r.processed {
		res.Distances[v] = r.dist[v]
		res.labels[v] = g.MustLabel(v)
	}
	if res.Prev != nil {
		for v := range res.Prev {
			if !r.processed[v] {
				delete(res.Prev, v)
			}
		}
	}

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g         *core.Graph                     // The input graph; read-only within Dijkstra.
	options   Options                         // Configuration options (thresholds, etc.).
	dist      map[core.VertexID]int64         // Best known distance; absent means +∞.
	prev      map[core.VertexID]core.VertexID // Predecessor on the shortest path.
	processed map[core.VertexID]bool          // Vertices whose distance is final.
	pq        nodePQ                          // Min-heap of *nodeItem for lazy priority queue.
}

// init seeds the source at distance zero.
func (r *runner) init(source core.VertexID) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	var u core.VertexID
	var d int64
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		d = item.dist

		// 2) Skip stale heap entry.
		if r.processed[u] {
			continue
		}

		// 3) Stop once the cap is exceeded.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Distance d is now final.
		r.processed[u] = true

		// 5) Relax all edges of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge of u and attempts to improve distances to its
// unprocessed neighbors. Improvement must be strict.
func (r *runner) relax(u core.VertexID) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var nb core.Neighbor
	var newDist int64
	for _, nb = range neighbors {
		if r.processed[nb.Vertex] {
			continue
		}
		if nb.Weight < 0 {
			return fmt.Errorf("%w: edge %d weight=%d", ErrNegativeWeight, nb.Edge, nb.Weight)
		}
		// Edges at or above an enabled threshold are walls.
		if r.options.InfEdgeThreshold > 0 && nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// The sum would overflow int64.
		if nb.Weight > math.MaxInt64-r.dist[u] {
			continue
		}

		newDist = r.dist[u] + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.dist[nb.Vertex]; seen && newDist >= cur {
			continue
		}

		r.dist[nb.Vertex] = newDist
		if r.prev != nil {
			r.prev[nb.Vertex] = u
		}

		// Lazy decrease-key: the outdated entry stays in the heap and is
		// skipped when popped.
		heap.Push(&r.pq, &nodeItem{id: nb.Vertex, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   core.VertexID // vertex
	dist int64         // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
