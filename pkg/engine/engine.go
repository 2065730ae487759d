package engine

import (
	"github.com/lintang-b-s/gridnav/pkg"
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/engine/pathfinding"
	"github.com/lintang-b-s/gridnav/pkg/util"
	"go.uber.org/zap"
)

type Engine[C da.Coordinate[C]] struct {
	lattice  da.Lattice[C]
	registry *pathfinding.Registry[C]
	defaults pathfinding.Options
	logger   *zap.Logger
}

type (
	Engine2D = Engine[da.Coordinate2D]
	Engine3D = Engine[da.Coordinate3D]
)

func NewEngine[C da.Coordinate[C]](lattice da.Lattice[C], logger *zap.Logger,
	defaults ...pathfinding.Option) *Engine[C] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine[C]{
		lattice:  lattice,
		registry: pathfinding.DefaultRegistry[C](),
		defaults: pathfinding.ApplyOptions(pathfinding.DefaultOptions(), defaults...),
		logger:   logger,
	}
}

func NewEngine2D(logger *zap.Logger, defaults ...pathfinding.Option) *Engine2D {
	return NewEngine(da.NewLattice2D(), logger, defaults...)
}

func NewEngine3D(logger *zap.Logger, defaults ...pathfinding.Option) *Engine3D {
	return NewEngine(da.NewLattice3D(), logger, defaults...)
}

func (e *Engine[C]) GetRegistry() *pathfinding.Registry[C] {
	return e.registry
}

func (e *Engine[C]) GetDefaults() pathfinding.Options {
	return e.defaults
}

func (e *Engine[C]) Algorithms() []pathfinding.Algorithm {
	return e.registry.Algorithms()
}

// Pathfind runs algorithm from start to goal. the only error is an unknown algorithm;
// unreachable goals are reported through Result.Status.
func (e *Engine[C]) Pathfind(algorithm pathfinding.Algorithm, start, goal C, graph *da.GridGraph[C],
	opts ...pathfinding.Option) (pathfinding.Result[C], error) {
	search, err := e.registry.Get(algorithm)
	if err != nil {
		return pathfinding.Result[C]{}, err
	}

	if pkg.DEBUG {
		verr := graph.Validate()
		util.AssertPanic(verr == nil, "invalid grid graph")
	}

	res := search(e.lattice, start, goal, graph, pathfinding.ApplyOptions(e.defaults, opts...))

	e.logger.Debug("route calculated",
		zap.String("algorithm", string(algorithm)),
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Stringer("status", res.Status),
		zap.Stringer("effective_goal", res.Goal),
		zap.Int("route_length", len(res.Route)),
		zap.Float64("cost", res.Cost),
		zap.Int("expanded", res.Expanded),
		zap.Int("restarts", res.Restarts),
	)
	return res, nil
}
