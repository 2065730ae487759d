package pathfinding

import (
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
)

// Dijkstra orders the frontier by cumulative weight and returns the least resistant route.
type Dijkstra[C da.Coordinate[C]] struct {
	weightedSearch[C]
}

func NewDijkstra[C da.Coordinate[C]](lattice da.Lattice[C], graph *da.GridGraph[C], opts Options) *Dijkstra[C] {
	return &Dijkstra[C]{
		weightedSearch: weightedSearch[C]{
			lattice: lattice,
			graph:   graph,
			opts:    opts,
			priority: func(_ C, g, penalty float64, _ C) float64 {
				return g + penalty
			},
		},
	}
}

// DijkstraSearch runs Dijkstra's algorithm from start to goal.
func DijkstraSearch[C da.Coordinate[C]](lattice da.Lattice[C], start, goal C, graph *da.GridGraph[C],
	opts ...Option) Result[C] {
	return NewDijkstra(lattice, graph, ApplyOptions(DefaultOptions(), opts...)).ShortestPath(start, goal)
}

// UniformCostSearch is DijkstraSearch.
func UniformCostSearch[C da.Coordinate[C]](lattice da.Lattice[C], start, goal C, graph *da.GridGraph[C],
	opts ...Option) Result[C] {
	return DijkstraSearch(lattice, start, goal, graph, opts...)
}
