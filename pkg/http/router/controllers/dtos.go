package controllers

import (
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/engine/pathfinding"
	"github.com/lintang-b-s/gridnav/pkg/guidance"
	"github.com/lintang-b-s/gridnav/pkg/http/usecases"
)

// searchFields are the request fields shared by 2D and 3D queries.
type searchFields struct {
	Map             string   `json:"map" validate:"omitempty,max=128"`
	Algorithm       string   `json:"algorithm" validate:"required,max=64"`
	AllowOrthogonal *bool    `json:"allow_orthogonal"`
	AllowDiagonal   *bool    `json:"allow_diagonal"`
	InvertOccupancy bool     `json:"invert_occupancy"`
	IgnoreOccupancy bool     `json:"ignore_occupancy"`
	DefaultWeight   *float64 `json:"default_weight" validate:"omitempty,gte=0"`
	IgnoreWeights   bool     `json:"ignore_weights"`
	MaxLoops        *int     `json:"max_loops" validate:"omitempty,min=1,max=1000000"`
	HeuristicScale  *float64 `json:"heuristic_scale" validate:"omitempty,gte=0,lte=100"`
	MaxRestarts     *int     `json:"max_restarts" validate:"omitempty,min=0,max=64"`
	BeamWidth       *int     `json:"beam_width" validate:"omitempty,min=1,max=1024"`
}

func (f searchFields) tuning() usecases.Tuning {
	return usecases.Tuning{
		MaxLoops:       f.MaxLoops,
		HeuristicScale: f.HeuristicScale,
		MaxRestarts:    f.MaxRestarts,
		BeamWidth:      f.BeamWidth,
	}
}

type weightedCell2D struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Weight float64 `json:"weight" validate:"gte=0"`
}

type weightedCell3D struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Z      int     `json:"z"`
	Weight float64 `json:"weight" validate:"gte=0"`
}

type routeRequest2D struct {
	searchFields
	Start    *da.Coordinate2D  `json:"start" validate:"required"`
	Goal     *da.Coordinate2D  `json:"goal" validate:"required"`
	Occupied []da.Coordinate2D `json:"occupied" validate:"max=100000"`
	Weights  []weightedCell2D  `json:"weights" validate:"max=100000,dive"`
}

func (req routeRequest2D) toQuery() usecases.Query2D {
	q := usecases.Query2D{
		Map:             req.Map,
		Algorithm:       pathfinding.Algorithm(req.Algorithm),
		Start:           *req.Start,
		Goal:            *req.Goal,
		AllowOrthogonal: req.AllowOrthogonal,
		AllowDiagonal:   req.AllowDiagonal,
		Occupied:        req.Occupied,
		InvertOccupancy: req.InvertOccupancy,
		IgnoreOccupancy: req.IgnoreOccupancy,
		DefaultWeight:   req.DefaultWeight,
		IgnoreWeights:   req.IgnoreWeights,
		Tuning:          req.tuning(),
	}
	if len(req.Weights) > 0 {
		q.Weights = make(map[da.Coordinate2D]float64, len(req.Weights))
		for _, w := range req.Weights {
			q.Weights[da.NewCoordinate2D(w.X, w.Y)] = w.Weight
		}
	}
	return q
}

type routeRequest3D struct {
	searchFields
	Start    *da.Coordinate3D  `json:"start" validate:"required"`
	Goal     *da.Coordinate3D  `json:"goal" validate:"required"`
	Occupied []da.Coordinate3D `json:"occupied" validate:"max=100000"`
	Weights  []weightedCell3D  `json:"weights" validate:"max=100000,dive"`
}

func (req routeRequest3D) toQuery() usecases.Query3D {
	q := usecases.Query3D{
		Map:             req.Map,
		Algorithm:       pathfinding.Algorithm(req.Algorithm),
		Start:           *req.Start,
		Goal:            *req.Goal,
		AllowOrthogonal: req.AllowOrthogonal,
		AllowDiagonal:   req.AllowDiagonal,
		Occupied:        req.Occupied,
		InvertOccupancy: req.InvertOccupancy,
		IgnoreOccupancy: req.IgnoreOccupancy,
		DefaultWeight:   req.DefaultWeight,
		IgnoreWeights:   req.IgnoreWeights,
		Tuning:          req.tuning(),
	}
	if len(req.Weights) > 0 {
		q.Weights = make(map[da.Coordinate3D]float64, len(req.Weights))
		for _, w := range req.Weights {
			q.Weights[da.NewCoordinate3D(w.X, w.Y, w.Z)] = w.Weight
		}
	}
	return q
}

type batchRequest struct {
	Requests []routeRequest2D `json:"requests" validate:"required,min=1,max=256,dive"`
}

type routeResponse[C da.Coordinate[C]] struct {
	Status   string  `json:"status"`
	Found    bool    `json:"found"`
	Start    C       `json:"start"`
	Goal     C       `json:"goal"`
	Route    []C     `json:"route"`
	Length   int     `json:"length"`
	Cost     float64 `json:"cost"`
	Expanded int     `json:"expanded"`
	Restarts int     `json:"restarts"`
	Polyline string  `json:"polyline,omitempty"`
	Map      string  `json:"map,omitempty"`
	Revision uint64  `json:"revision,omitempty"`
	Cached   bool    `json:"cached"`

	Directions []guidance.Instruction[C] `json:"directions"`
}

func NewRouteResponse[C da.Coordinate[C]](ans usecases.Answer[C]) routeResponse[C] {
	route := ans.Route
	if route == nil {
		route = []C{}
	}
	return routeResponse[C]{
		Status:   ans.Status.String(),
		Found:    ans.Found(),
		Start:    ans.Start,
		Goal:     ans.Goal,
		Route:    route,
		Length:   len(route),
		Cost:     ans.Cost,
		Expanded: ans.Expanded,
		Restarts: ans.Restarts,
		Polyline: ans.Polyline,
		Map:      ans.Map,
		Revision: ans.Revision,
		Cached:   ans.Cached,

		Directions: ans.Directions,
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type batchItemResponse struct {
	Data  *routeResponse[da.Coordinate2D] `json:"data,omitempty"`
	Error *errorBody                      `json:"error,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}
