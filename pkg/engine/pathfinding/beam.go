package pathfinding

import (
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/geo"
)

// Beam is greedy best-first search whose frontier is cut down to the BeamWidth best entries after
// every expansion. it finishes quickly but can miss routes the full frontier would find.
type Beam[C da.Coordinate[C]] struct {
	lattice da.Lattice[C]
	graph   *da.GridGraph[C]
	opts    Options

	pq   *da.MinHeap[C]
	tree *searchTree[C]

	numSettledNodes int
}

func NewBeam[C da.Coordinate[C]](lattice da.Lattice[C], graph *da.GridGraph[C], opts Options) *Beam[C] {
	return &Beam[C]{
		lattice: lattice,
		graph:   graph,
		opts:    opts,
	}
}

func (s *Beam[C]) ShortestPath(start, goal C) Result[C] {
	if res, done := earlyResult(start, goal, s.graph); done {
		return res
	}

	width := s.opts.BeamWidth
	if width < 1 {
		width = 1
	}

	s.pq = da.NewBinaryHeap[C]()
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
		s.pq.KeepBest(width)
	}

	return fallbackResult(s.graph, s.tree, goal, s.numSettledNodes)
}

func (s *Beam[C]) graphSearchUni(current, goal C) {
	manhattan := heuristicManhattan(s.graph)
	forEachNeighbor(s.lattice, s.graph, current, goal, func(next C, penalty float64) {
		if s.tree.discovered(next) {
			return
		}
		s.pq.Insert(da.NewPriorityQueueNode(geo.Estimate(next, goal, manhattan)+penalty, next))
		s.tree.link(next, current)
	})
}

// BeamSearch runs a beam search from start to goal.
func BeamSearch[C da.Coordinate[C]](lattice da.Lattice[C], start, goal C, graph *da.GridGraph[C],
	opts ...Option) Result[C] {
	return NewBeam(lattice, graph, ApplyOptions(DefaultOptions(), opts...)).ShortestPath(start, goal)
}
