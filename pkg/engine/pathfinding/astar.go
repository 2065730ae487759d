package pathfinding

import (
	"github.com/lintang-b-s/gridnav/pkg"
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/geo"
)

// AStar orders the frontier by cumulative weight plus the scaled distance estimate.
type AStar[C da.Coordinate[C]] struct {
	weightedSearch[C]
}

func NewAStar[C da.Coordinate[C]](lattice da.Lattice[C], graph *da.GridGraph[C], opts Options) *AStar[C] {
	manhattan := heuristicManhattan(graph)
	// the estimate is in cells, scale it to the unit of the weights
	heuristicWeight := opts.HeuristicScale * (pkg.HEURISTIC_WEIGHT_EPSILON + graph.DefaultWeight)
	return &AStar[C]{
		weightedSearch: weightedSearch[C]{
			lattice: lattice,
			graph:   graph,
			opts:    opts,
			priority: func(next C, g, penalty float64, target C) float64 {
				return g + geo.Estimate(next, target, manhattan)*heuristicWeight + penalty
			},
		},
	}
}

// AStarSearch runs A* from start to goal.
func AStarSearch[C da.Coordinate[C]](lattice da.Lattice[C], start, goal C, graph *da.GridGraph[C],
	opts ...Option) Result[C] {
	return NewAStar(lattice, graph, ApplyOptions(DefaultOptions(), opts...)).ShortestPath(start, goal)
}
