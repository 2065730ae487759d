package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/gridnav/pkg"
)

// Occupancy is a read-only set of cells.
type Occupancy[C comparable] interface {
	Contains(c C) bool
}

// CellSet is the map-backed Occupancy.
type CellSet[C comparable] map[C]struct{}

func NewCellSet[C comparable](cells ...C) CellSet[C] {
	set := make(CellSet[C], len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}

func (s CellSet[C]) Contains(c C) bool {
	_, ok := s[c]
	return ok
}

func (s CellSet[C]) Add(c C) {
	s[c] = struct{}{}
}

func (s CellSet[C]) Len() int {
	return len(s)
}

// GridGraph describes how a search may move over an implicit grid.
// Occupied and Weights are read, never written, by searches; callers must not mutate them
// while a search runs.
type GridGraph[C comparable] struct {
	AllowOrthogonal bool
	AllowDiagonal   bool

	IgnoreOccupancy bool
	Occupied        Occupancy[C]
	// when true Occupied lists the walkable cells instead of the blocked ones
	InvertOccupancy bool

	IgnoreWeights bool
	Weights       map[C]float64
	DefaultWeight float64
}

type GraphOption[C comparable] func(*GridGraph[C])

func WithMovement[C comparable](orthogonal, diagonal bool) GraphOption[C] {
	return func(g *GridGraph[C]) {
		g.AllowOrthogonal = orthogonal
		g.AllowDiagonal = diagonal
	}
}

func WithOccupied[C comparable](occupied Occupancy[C], invert bool) GraphOption[C] {
	return func(g *GridGraph[C]) {
		g.Occupied = occupied
		g.InvertOccupancy = invert
	}
}

func WithIgnoreOccupancy[C comparable]() GraphOption[C] {
	return func(g *GridGraph[C]) { g.IgnoreOccupancy = true }
}

func WithWeights[C comparable](weights map[C]float64, defaultWeight float64) GraphOption[C] {
	return func(g *GridGraph[C]) {
		g.Weights = weights
		g.DefaultWeight = defaultWeight
	}
}

func WithIgnoreWeights[C comparable]() GraphOption[C] {
	return func(g *GridGraph[C]) { g.IgnoreWeights = true }
}

// NewGridGraph returns a graph allowing orthogonal and diagonal moves with default weight 1.
func NewGridGraph[C comparable](opts ...GraphOption[C]) *GridGraph[C] {
	g := &GridGraph[C]{
		AllowOrthogonal: true,
		AllowDiagonal:   true,
		DefaultWeight:   pkg.DEFAULT_WEIGHT,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GridGraph[C]) CanMove() bool {
	return g.AllowOrthogonal || g.AllowDiagonal
}

func (g *GridGraph[C]) IsWalkable(c C) bool {
	if g.IgnoreOccupancy || g.Occupied == nil {
		return true
	}
	if g.InvertOccupancy {
		return g.Occupied.Contains(c)
	}
	return !g.Occupied.Contains(c)
}

// GetWeight returns the cost of stepping onto c.
func (g *GridGraph[C]) GetWeight(c C) float64 {
	if g.IgnoreWeights || g.Weights == nil {
		return g.DefaultWeight
	}
	if w, ok := g.Weights[c]; ok {
		return w
	}
	return g.DefaultWeight
}

// Validate reports weights the searches cannot handle. Searches never call it.
func (g *GridGraph[C]) Validate() error {
	if g.DefaultWeight < 0 {
		return fmt.Errorf("default weight must be positive or zero, got %v", g.DefaultWeight)
	}
	if g.IgnoreWeights {
		return nil
	}
	for c, w := range g.Weights {
		if w < 0 {
			return fmt.Errorf("weight of cell %v must be positive or zero, got %v", c, w)
		}
	}
	return nil
}

// Clone returns a shallow copy; Occupied and Weights are shared.
func (g *GridGraph[C]) Clone() *GridGraph[C] {
	cp := *g
	return &cp
}
