package pathfinding

import (
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
)

type Status uint8

const (
	// StatusFound: the route ends at the requested goal.
	StatusFound Status = iota
	// StatusUnreachable: the goal was not reached, the route ends at the closest discovered node.
	StatusUnreachable
	// StatusTrivial: start and goal are the same cell.
	StatusTrivial
	// StatusImmobile: the graph allows neither orthogonal nor diagonal moves.
	StatusImmobile
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUnreachable:
		return "unreachable"
	case StatusTrivial:
		return "trivial"
	case StatusImmobile:
		return "immobile"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result contains the outcome of a search.
type Result[C da.Coordinate[C]] struct {
	// Route excludes the start and includes Goal, in travel order.
	Route  []C
	Status Status
	// Goal is the cell the route ends at, the requested goal or its substitute.
	Goal     C
	Cost     float64
	Expanded int
	Restarts int
}

func (r Result[C]) Found() bool {
	return r.Status == StatusFound
}

// RouteCost sums the weight of every cell entered along route.
func RouteCost[C da.Coordinate[C]](graph *da.GridGraph[C], route []C) float64 {
	cost := 0.0
	for _, c := range route {
		cost += graph.GetWeight(c)
	}
	return cost
}

func newResult[C da.Coordinate[C]](graph *da.GridGraph[C], route []C, goal, effectiveGoal C,
	expanded, restarts int) Result[C] {
	status := StatusFound
	if effectiveGoal != goal {
		status = StatusUnreachable
	}
	return Result[C]{
		Route:    route,
		Status:   status,
		Goal:     effectiveGoal,
		Cost:     RouteCost(graph, route),
		Expanded: expanded,
		Restarts: restarts,
	}
}

// earlyResult handles the cases where no search is needed.
func earlyResult[C da.Coordinate[C]](start, goal C, graph *da.GridGraph[C]) (Result[C], bool) {
	if !graph.CanMove() {
		return Result[C]{Route: []C{}, Status: StatusImmobile, Goal: start}, true
	}
	if start == goal {
		return Result[C]{Route: []C{}, Status: StatusTrivial, Goal: goal}, true
	}
	return Result[C]{}, false
}
