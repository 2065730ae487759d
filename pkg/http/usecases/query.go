package usecases

import (
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/engine/pathfinding"
	"github.com/lintang-b-s/gridnav/pkg/spatialindex"
	"github.com/lintang-b-s/gridnav/pkg/util"
)

// Tuning holds the per-request search options. nil fields keep the engine defaults.
type Tuning struct {
	MaxLoops       *int
	HeuristicScale *float64
	MaxRestarts    *int
	BeamWidth      *int
}

func (t Tuning) apply(base pathfinding.Options) pathfinding.Options {
	if t.MaxLoops != nil {
		base.MaxLoops = *t.MaxLoops
	}
	if t.HeuristicScale != nil {
		base.HeuristicScale = *t.HeuristicScale
	}
	if t.MaxRestarts != nil {
		base.MaxRestarts = *t.MaxRestarts
	}
	if t.BeamWidth != nil {
		base.BeamWidth = *t.BeamWidth
	}
	return base
}

// Query is one route request. Map names a stored map; the remaining graph fields are
// applied on top of it, or on top of an open grid when Map is empty.
type Query[C da.Coordinate[C]] struct {
	Map       string
	Algorithm pathfinding.Algorithm
	Start     C
	Goal      C

	AllowOrthogonal *bool
	AllowDiagonal   *bool

	Occupied        []C
	InvertOccupancy bool
	IgnoreOccupancy bool

	Weights       map[C]float64
	DefaultWeight *float64
	IgnoreWeights bool

	Tuning Tuning
}

type (
	Query2D = Query[da.Coordinate2D]
	Query3D = Query[da.Coordinate3D]
)

// cacheable reports whether the answer depends only on the stored map and scalar fields.
func (q Query[C]) cacheable() bool {
	return q.Map != "" && len(q.Occupied) == 0 && len(q.Weights) == 0
}

// overlay applies the request fields to base. base is never modified.
func (q Query[C]) overlay(base *da.GridGraph[C]) (*da.GridGraph[C], error) {
	g := base.Clone()

	if q.AllowOrthogonal != nil {
		g.AllowOrthogonal = *q.AllowOrthogonal
	}
	if q.AllowDiagonal != nil {
		g.AllowDiagonal = *q.AllowDiagonal
	}

	if len(q.Occupied) > 0 || q.InvertOccupancy {
		cells := da.NewCellSet(q.Occupied...)
		switch {
		case base.Occupied == nil:
			g.Occupied = cells
			g.InvertOccupancy = q.InvertOccupancy
		case q.InvertOccupancy:
			return nil, util.NewErrorf(util.ErrBadParamInput, "invert_occupancy cannot be applied on top of map %q", q.Map)
		default:
			g.Occupied = spatialindex.Union[C]{base.Occupied, cells}
		}
	}
	g.IgnoreOccupancy = g.IgnoreOccupancy || q.IgnoreOccupancy

	if len(q.Weights) > 0 {
		weights := make(map[C]float64, len(base.Weights)+len(q.Weights))
		for c, w := range base.Weights {
			weights[c] = w
		}
		for c, w := range q.Weights {
			weights[c] = w
		}
		g.Weights = weights
	}
	if q.DefaultWeight != nil {
		g.DefaultWeight = *q.DefaultWeight
	}
	g.IgnoreWeights = g.IgnoreWeights || q.IgnoreWeights

	if err := g.Validate(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid grid")
	}
	return g, nil
}

// cacheKey identifies a cacheable query against one revision of a map.
type cacheKey[C comparable] struct {
	mapName   string
	revision  uint64
	algorithm pathfinding.Algorithm
	start     C
	goal      C

	orthogonal, diagonal       int8
	ignoreOccupancy            bool
	ignoreWeights, haveDefault bool
	defaultWeight              float64

	opts pathfinding.Options
}

func tristate(b *bool) int8 {
	switch {
	case b == nil:
		return -1
	case *b:
		return 1
	default:
		return 0
	}
}

func newCacheKey[C da.Coordinate[C]](q Query[C], revision uint64, opts pathfinding.Options) cacheKey[C] {
	k := cacheKey[C]{
		mapName:         q.Map,
		revision:        revision,
		algorithm:       q.Algorithm,
		start:           q.Start,
		goal:            q.Goal,
		orthogonal:      tristate(q.AllowOrthogonal),
		diagonal:        tristate(q.AllowDiagonal),
		ignoreOccupancy: q.IgnoreOccupancy,
		ignoreWeights:   q.IgnoreWeights,
		opts:            opts,
	}
	if q.DefaultWeight != nil {
		k.haveDefault = true
		k.defaultWeight = *q.DefaultWeight
	}
	return k
}
