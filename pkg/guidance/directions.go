package guidance

import (
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
)

// Instruction is one leg of a route: Steps consecutive moves along the same step vector.
type Instruction[C da.Coordinate[C]] struct {
	Sign        int     `json:"sign"`
	Description string  `json:"description"`
	Heading     string  `json:"heading,omitempty"`
	TurnBearing float64 `json:"turn_bearing"`
	Steps       int     `json:"steps"`
	From        C       `json:"from"`
	To          C       `json:"to"`
	Cost        float64 `json:"cost"`
	// CumulativeCost is the route cost up to and including To.
	CumulativeCost float64 `json:"cumulative_cost"`
}

type Weighter[C any] interface {
	GetWeight(c C) float64
}

type DirectionBuilder[C da.Coordinate[C]] struct {
	graph          Weighter[C]
	instructions   []Instruction[C]
	prevStep       C
	prevBearing    float64
	haveBearing    bool
	cumulativeCost float64
}

func NewDirectionBuilder[C da.Coordinate[C]](graph Weighter[C]) *DirectionBuilder[C] {
	return &DirectionBuilder[C]{graph: graph}
}

// GetDirections groups the moves of route (which excludes start) into legs and ends with a
// FINISH instruction. an empty route has no directions.
func (db *DirectionBuilder[C]) GetDirections(start C, route []C) []Instruction[C] {
	db.instructions = make([]Instruction[C], 0)
	db.haveBearing = false
	db.cumulativeCost = 0
	if len(route) == 0 {
		return db.instructions
	}

	prev := start
	for _, c := range route {
		db.buildInstruction(prev, c)
		prev = c
	}
	db.buildFinalInstruction(prev)
	return db.instructions
}

func (db *DirectionBuilder[C]) buildInstruction(from, to C) {
	step := to.Sub(from)
	cost := db.graph.GetWeight(to)
	db.cumulativeCost += cost

	if n := len(db.instructions); n > 0 && step == db.prevStep {
		last := &db.instructions[n-1]
		last.Steps++
		last.To = to
		last.Cost += cost
		last.CumulativeCost = db.cumulativeCost
		return
	}

	dx, dy, dz := step.Axis(0), step.Axis(1), step.Axis(2)
	sign, turnBearing := db.turnSign(dx, dy, dz, len(db.instructions) == 0)

	db.instructions = append(db.instructions, Instruction[C]{
		Sign:           sign,
		Description:    getDirectionDescription(sign),
		Heading:        heading(dx, dy, dz),
		TurnBearing:    turnBearing,
		Steps:          1,
		From:           from,
		To:             to,
		Cost:           cost,
		CumulativeCost: db.cumulativeCost,
	})
	db.prevStep = step
}

// turnSign classifies a change of step vector. vertical-only steps climb or descend and keep
// the last horizontal bearing as the reference for the next turn.
func (db *DirectionBuilder[C]) turnSign(dx, dy, dz int, first bool) (int, float64) {
	if dx == 0 && dy == 0 {
		if first {
			return START, 0
		}
		if dz > 0 {
			return CLIMB, 0
		}
		return DESCEND, 0
	}

	b := bearing(dx, dy)
	defer func() {
		db.prevBearing = b
		db.haveBearing = true
	}()
	if first || !db.haveBearing {
		if first {
			return START, b
		}
		return CONTINUE, b
	}
	delta := deltaBearing(db.prevBearing, b)
	return getTurnDirection(delta), delta
}

func (db *DirectionBuilder[C]) buildFinalInstruction(last C) {
	db.instructions = append(db.instructions, Instruction[C]{
		Sign:           FINISH,
		Description:    getDirectionDescription(FINISH),
		From:           last,
		To:             last,
		CumulativeCost: db.cumulativeCost,
	})
}

// Directions builds the directions of route on graph.
func Directions[C da.Coordinate[C]](graph Weighter[C], start C, route []C) []Instruction[C] {
	return NewDirectionBuilder(graph).GetDirections(start, route)
}
