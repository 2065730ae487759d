package pathfinding

import (
	"math"

	"github.com/lintang-b-s/gridnav/pkg"
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/geo"
	"github.com/lintang-b-s/gridnav/pkg/util"
)

// parent is the predecessor entry of a discovered node. the start is the only entry with isStart set.
type parent[C da.Coordinate[C]] struct {
	node    C
	isStart bool
}

// searchTree is the predecessor map of one search run. key = "to" node, value = "from" node.
type searchTree[C da.Coordinate[C]] struct {
	from  map[C]parent[C]
	order []C // discovery order, keeps the closest-node choice deterministic
}

func newSearchTree[C da.Coordinate[C]](start C) *searchTree[C] {
	t := &searchTree[C]{
		from:  make(map[C]parent[C], 64),
		order: make([]C, 0, 64),
	}
	t.from[start] = parent[C]{node: start, isStart: true}
	t.order = append(t.order, start)
	return t
}

func (t *searchTree[C]) discovered(c C) bool {
	_, ok := t.from[c]
	return ok
}

// link records from as the predecessor of to. a relinked node keeps its discovery position,
// the start is never relinked.
func (t *searchTree[C]) link(to, from C) {
	if p, ok := t.from[to]; ok {
		if p.isStart {
			return
		}
	} else {
		t.order = append(t.order, to)
	}
	t.from[to] = parent[C]{node: from}
}

// closest returns the discovered node with the smallest heuristic distance to goal.
// ties go to the earliest discovered node.
func (t *searchTree[C]) closest(goal C, manhattan bool) C {
	best := t.order[0]
	bestHeuristic := math.MaxFloat64
	for _, c := range t.order {
		if h := geo.Estimate(c, goal, manhattan); h < bestHeuristic {
			best = c
			bestHeuristic = h
		}
	}
	return best
}

// route follows predecessors back from goal to the start and returns the nodes after the start in travel order.
func (t *searchTree[C]) route(goal C) []C {
	reversed := make([]C, 0, 16)
	current := goal
	for {
		p, ok := t.from[current]
		util.AssertPanic(ok, "route: node was never discovered")
		if p.isStart {
			break
		}
		reversed = append(reversed, current)
		util.AssertPanic(len(reversed) <= len(t.from), "route: predecessor cycle")
		current = p.node
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}

// forEachNeighbor calls fn for every walkable neighbor of current. penalty is the directional
// tiebreak: when diagonal moves are forbidden, steps off the dominant axis toward goal are
// pushed back by TIEBREAK_PENALTY.
func forEachNeighbor[C da.Coordinate[C]](lattice da.Lattice[C], graph *da.GridGraph[C], current, goal C,
	fn func(next C, penalty float64)) {
	dominant := -1
	if !graph.AllowDiagonal {
		dominant = geo.DominantAxis(current, goal)
	}
	for _, step := range lattice.Steps(graph.AllowOrthogonal, graph.AllowDiagonal) {
		next := current.Add(step.Delta)
		if !graph.IsWalkable(next) {
			continue
		}
		penalty := 0.0
		if dominant >= 0 && step.Delta.Axis(dominant) == 0 {
			penalty = pkg.TIEBREAK_PENALTY
		}
		fn(next, penalty)
	}
}

func heuristicManhattan[C da.Coordinate[C]](graph *da.GridGraph[C]) bool {
	return !graph.AllowDiagonal
}

// fallbackResult reconstructs the route to the closest discovered node of an unfinished search.
func fallbackResult[C da.Coordinate[C]](graph *da.GridGraph[C], tree *searchTree[C], goal C,
	expanded int) Result[C] {
	effectiveGoal := tree.closest(goal, heuristicManhattan(graph))
	return newResult(graph, tree.route(effectiveGoal), goal, effectiveGoal, expanded, 0)
}
