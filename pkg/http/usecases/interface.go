package usecases

import (
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/engine/pathfinding"
	"github.com/lintang-b-s/gridnav/pkg/gridmap"
)

type RoutingEngine[C da.Coordinate[C]] interface {
	Pathfind(algorithm pathfinding.Algorithm, start, goal C, graph *da.GridGraph[C],
		opts ...pathfinding.Option) (pathfinding.Result[C], error)
	Algorithms() []pathfinding.Algorithm
	GetDefaults() pathfinding.Options
}

type MapStore interface {
	Get(name string) (*gridmap.GridMap, error)
	List() []gridmap.MapInfo
}
