package pathfinding

import (
	"sort"
	"sync"

	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/util"
)

type Algorithm string

const (
	DEPTH_FIRST       Algorithm = "depth_first"
	BREADTH_FIRST     Algorithm = "breadth_first"
	HEURISTIC         Algorithm = "heuristic"
	GREEDY_BEST_FIRST Algorithm = "greedy_best_first"
	DIJKSTRA          Algorithm = "dijkstra"
	UNIFORM_COST      Algorithm = "uniform_cost"
	ASTAR             Algorithm = "astar"
	BEAM              Algorithm = "beam"
)

// SearchFunc is one pathfinding algorithm over lattice.
type SearchFunc[C da.Coordinate[C]] func(lattice da.Lattice[C], start, goal C, graph *da.GridGraph[C],
	opts Options) Result[C]

// Registry maps algorithm tags to search functions. safe for concurrent use.
type Registry[C da.Coordinate[C]] struct {
	mu    sync.RWMutex
	funcs map[Algorithm]SearchFunc[C]
}

func NewRegistry[C da.Coordinate[C]]() *Registry[C] {
	return &Registry[C]{funcs: make(map[Algorithm]SearchFunc[C])}
}

// DefaultRegistry returns a registry holding every built-in algorithm.
func DefaultRegistry[C da.Coordinate[C]]() *Registry[C] {
	r := NewRegistry[C]()
	r.Register(DEPTH_FIRST, func(l da.Lattice[C], s, g C, gr *da.GridGraph[C], o Options) Result[C] {
		return NewDepthFirst(l, gr, o).ShortestPath(s, g)
	})
	r.Register(BREADTH_FIRST, func(l da.Lattice[C], s, g C, gr *da.GridGraph[C], o Options) Result[C] {
		return NewBreadthFirst(l, gr, o).ShortestPath(s, g)
	})
	heuristic := func(l da.Lattice[C], s, g C, gr *da.GridGraph[C], o Options) Result[C] {
		return NewHeuristic(l, gr, o).ShortestPath(s, g)
	}
	r.Register(HEURISTIC, heuristic)
	r.Register(GREEDY_BEST_FIRST, heuristic)
	dijkstra := func(l da.Lattice[C], s, g C, gr *da.GridGraph[C], o Options) Result[C] {
		return NewDijkstra(l, gr, o).ShortestPath(s, g)
	}
	r.Register(DIJKSTRA, dijkstra)
	r.Register(UNIFORM_COST, dijkstra)
	r.Register(ASTAR, func(l da.Lattice[C], s, g C, gr *da.GridGraph[C], o Options) Result[C] {
		return NewAStar(l, gr, o).ShortestPath(s, g)
	})
	r.Register(BEAM, func(l da.Lattice[C], s, g C, gr *da.GridGraph[C], o Options) Result[C] {
		return NewBeam(l, gr, o).ShortestPath(s, g)
	})
	return r
}

// Register adds or replaces the search function of algorithm.
func (r *Registry[C]) Register(algorithm Algorithm, fn SearchFunc[C]) {
	r.mu.Lock()
	r.funcs[algorithm] = fn
	r.mu.Unlock()
}

func (r *Registry[C]) Get(algorithm Algorithm) (SearchFunc[C], error) {
	r.mu.RLock()
	fn, ok := r.funcs[algorithm]
	r.mu.RUnlock()
	if !ok {
		return nil, util.NewErrorf(util.ErrBadParamInput, "unknown pathfinding algorithm %q", algorithm)
	}
	return fn, nil
}

// Algorithms returns the registered tags in lexical order.
func (r *Registry[C]) Algorithms() []Algorithm {
	r.mu.RLock()
	defer r.mu.RUnlock()
	algs := make([]Algorithm, 0, len(r.funcs))
	for a := range r.funcs {
		algs = append(algs, a)
	}
	sort.Slice(algs, func(i, j int) bool { return algs[i] < algs[j] })
	return algs
}
