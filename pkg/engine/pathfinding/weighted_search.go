package pathfinding

import (
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
)

// priorityFunc ranks a frontier entry from its cumulative cost g.
type priorityFunc[C da.Coordinate[C]] func(next C, g, penalty float64, target C) float64

// weightedSearch is the uniform-cost core shared by Dijkstra and A*. a cheaper path to a
// discovered node re-inserts it into the frontier and updates the cost map.
type weightedSearch[C da.Coordinate[C]] struct {
	lattice  da.Lattice[C]
	graph    *da.GridGraph[C]
	opts     Options
	priority priorityFunc[C]

	pq   *da.MinHeap[C]
	tree *searchTree[C]
	cost map[C]float64

	numSettledNodes int
}

// ShortestPath searches start -> goal. when the goal is not reached the search restarts toward
// the closest discovered node, at most MaxRestarts times.
func (s *weightedSearch[C]) ShortestPath(start, goal C) Result[C] {
	if res, done := earlyResult(start, goal, s.graph); done {
		return res
	}

	target := goal
	expanded := 0
	for restarts := 0; ; restarts++ {
		reached := s.run(start, target)
		expanded += s.numSettledNodes
		if reached {
			return newResult(s.graph, s.tree.route(target), goal, target, expanded, restarts)
		}

		closest := s.tree.closest(target, heuristicManhattan(s.graph))
		if closest == target || closest == start || restarts >= s.opts.MaxRestarts {
			// the partial predecessor map already leads to closest
			return newResult(s.graph, s.tree.route(closest), goal, closest, expanded, restarts)
		}
		target = closest
	}
}

// run reports whether target was popped within the loop budget.
func (s *weightedSearch[C]) run(start, target C) bool {
	s.pq = da.NewFourAryHeap[C]()
	s.tree = newSearchTree(start)
	s.cost = map[C]float64{start: 0}
	s.numSettledNodes = 0

	s.pq.Insert(da.NewPriorityQueueNode(0, start))

	for !s.pq.IsEmpty() && s.numSettledNodes < s.opts.MaxLoops {
		node, _ := s.pq.ExtractMin()
		current := node.GetItem()
		s.numSettledNodes++

		if current == target {
			return true
		}

		s.graphSearchUni(current, target)
	}
	return false
}

func (s *weightedSearch[C]) graphSearchUni(current, target C) {
	forEachNeighbor(s.lattice, s.graph, current, target, func(next C, penalty float64) {
		newCost := s.cost[current] + s.graph.GetWeight(next)

		if s.tree.discovered(next) && newCost >= s.cost[next] {
			// newCost is not better, do nothing
			return
		}

		s.cost[next] = newCost
		s.tree.link(next, current)
		// no decrease-key: the stale entry stays in the heap
		s.pq.Insert(da.NewPriorityQueueNode(s.priority(next, newCost, penalty, target), next))
	})
}
