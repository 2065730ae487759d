package controllers

import (
	"context"

	"github.com/lintang-b-s/gridnav/pkg/engine/pathfinding"
	"github.com/lintang-b-s/gridnav/pkg/gridmap"
	"github.com/lintang-b-s/gridnav/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPath2D(ctx context.Context, q usecases.Query2D) (usecases.Answer2D, error)
	ShortestPath3D(ctx context.Context, q usecases.Query3D) (usecases.Answer3D, error)
	BatchShortestPath2D(ctx context.Context, qs []usecases.Query2D) []usecases.BatchItem
	Algorithms() []pathfinding.Algorithm
	Maps() []gridmap.MapInfo
}
