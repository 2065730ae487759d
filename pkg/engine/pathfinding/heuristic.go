package pathfinding

import (
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/geo"
)

// Heuristic is greedy best-first search: the frontier is ordered by the estimated distance to the goal only.
type Heuristic[C da.Coordinate[C]] struct {
	lattice da.Lattice[C]
	graph   *da.GridGraph[C]
	opts    Options

	pq   *da.MinHeap[C]
	tree *searchTree[C]

	numSettledNodes int
}

func NewHeuristic[C da.Coordinate[C]](lattice da.Lattice[C], graph *da.GridGraph[C], opts Options) *Heuristic[C] {
	return &Heuristic[C]{
		lattice: lattice,
		graph:   graph,
		opts:    opts,
	}
}

func (s *Heuristic[C]) ShortestPath(start, goal C) Result[C] {
	if res, done := earlyResult(start, goal, s.graph); done {
		return res
	}

	s.pq = da.NewFourAryHeap[C]()
	s.tree = newSearchTree(start)
	s.numSettledNodes = 0

	s.pq.Insert(da.NewPriorityQueueNode(0, start))

	for !s.pq.IsEmpty() && s.numSettledNodes < s.opts.MaxLoops {
		node, _ := s.pq.ExtractMin()
		current := node.GetItem()
		s.numSettledNodes++

		if current == goal {
			return newResult(s.graph, s.tree.route(goal), goal, goal, s.numSettledNodes, 0)
		}

		s.graphSearchUni(current, goal)
	}

	return fallbackResult(s.graph, s.tree, goal, s.numSettledNodes)
}

func (s *Heuristic[C]) graphSearchUni(current, goal C) {
	manhattan := heuristicManhattan(s.graph)
	forEachNeighbor(s.lattice, s.graph, current, goal, func(next C, penalty float64) {
		if s.tree.discovered(next) {
			return
		}
		priority := geo.Estimate(next, goal, manhattan) + penalty
		s.pq.Insert(da.NewPriorityQueueNode(priority, next))
		s.tree.link(next, current)
	})
}

// HeuristicSearch runs a greedy best-first search from start to goal.
func HeuristicSearch[C da.Coordinate[C]](lattice da.Lattice[C], start, goal C, graph *da.GridGraph[C],
	opts ...Option) Result[C] {
	return NewHeuristic(lattice, graph, ApplyOptions(DefaultOptions(), opts...)).ShortestPath(start, goal)
}

// GreedyBestFirstSearch is HeuristicSearch.
func GreedyBestFirstSearch[C da.Coordinate[C]](lattice da.Lattice[C], start, goal C, graph *da.GridGraph[C],
	opts ...Option) Result[C] {
	return HeuristicSearch(lattice, start, goal, graph, opts...)
}
