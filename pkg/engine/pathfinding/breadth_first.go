package pathfinding

import (
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
)

type BreadthFirst[C da.Coordinate[C]] struct {
	lattice da.Lattice[C]
	graph   *da.GridGraph[C]
	opts    Options

	frontier *da.FIFO[C]
	tree     *searchTree[C]

	numSettledNodes int
}

func NewBreadthFirst[C da.Coordinate[C]](lattice da.Lattice[C], graph *da.GridGraph[C], opts Options) *BreadthFirst[C] {
	return &BreadthFirst[C]{
		lattice: lattice,
		graph:   graph,
		opts:    opts,
	}
}

// ShortestPath explores oldest-first and returns a route with the fewest steps.
func (s *BreadthFirst[C]) ShortestPath(start, goal C) Result[C] {
	if res, done := earlyResult(start, goal, s.graph); done {
		return res
	}

	s.frontier = da.NewFIFO[C]()
	s.tree = newSearchTree(start)
	s.numSettledNodes = 0

	s.frontier.Push(start)

	for s.frontier.Len() > 0 && s.numSettledNodes < s.opts.MaxLoops {
		current := s.frontier.Pop()
		s.numSettledNodes++

		if current == goal {
			return newResult(s.graph, s.tree.route(goal), goal, goal, s.numSettledNodes, 0)
		}

		s.graphSearchUni(current, goal)
	}

	return fallbackResult(s.graph, s.tree, goal, s.numSettledNodes)
}

func (s *BreadthFirst[C]) graphSearchUni(current, goal C) {
	forEachNeighbor(s.lattice, s.graph, current, goal, func(next C, _ float64) {
		if s.tree.discovered(next) {
			return
		}
		s.frontier.Push(next)
		s.tree.link(next, current)
	})
}

// BreadthFirstSearch runs a breadth-first search from start to goal.
func BreadthFirstSearch[C da.Coordinate[C]](lattice da.Lattice[C], start, goal C, graph *da.GridGraph[C],
	opts ...Option) Result[C] {
	return NewBreadthFirst(lattice, graph, ApplyOptions(DefaultOptions(), opts...)).ShortestPath(start, goal)
}
