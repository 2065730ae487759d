package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lintang-b-s/gridnav/pkg"
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/engine"
	"github.com/lintang-b-s/gridnav/pkg/engine/pathfinding"
	"github.com/lintang-b-s/gridnav/pkg/gridmap"
	"github.com/lintang-b-s/gridnav/pkg/logger"
	"go.uber.org/zap"
)

var (
	mapFile        = flag.String("map", "./data/maps/office.yaml", "grid map file")
	algorithm      = flag.String("algorithm", string(pathfinding.ASTAR), "search algorithm")
	startFlag      = flag.String("start", "0,0", "start cell x,y[,z]")
	goalFlag       = flag.String("goal", "19,9", "goal cell x,y[,z]")
	maxLoops       = flag.Int("max_loops", pkg.DEFAULT_MAX_LOOPS, "frontier pops per search run")
	heuristicScale = flag.Float64("heuristic_scale", pkg.DEFAULT_HEURISTIC_SCALE, "A* heuristic inflation")
	maxRestarts    = flag.Int("max_restarts", pkg.DEFAULT_MAX_RESTARTS, "restarts toward a substitute goal")
	beamWidth      = flag.Int("beam_width", pkg.DEFAULT_BEAM_WIDTH, "beam search width")
	asJSON         = flag.Bool("json", false, "print the result as json")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	m, err := gridmap.Load(*mapFile)
	if err != nil {
		logger.Fatal("failed to load map", zap.String("map", *mapFile), zap.Error(err))
	}

	opts := []pathfinding.Option{
		pathfinding.WithMaxLoops(*maxLoops),
		pathfinding.WithHeuristicScale(*heuristicScale),
		pathfinding.WithMaxRestarts(*maxRestarts),
		pathfinding.WithBeamWidth(*beamWidth),
	}

	start, err := parseCell(*startFlag, m.Dimensions)
	if err != nil {
		logger.Fatal("invalid start", zap.Error(err))
	}
	goal, err := parseCell(*goalFlag, m.Dimensions)
	if err != nil {
		logger.Fatal("invalid goal", zap.Error(err))
	}

	alg := pathfinding.Algorithm(*algorithm)
	if m.Dimensions == 3 {
		g, err := m.Graph3D()
		if err != nil {
			logger.Fatal("failed to compile map", zap.Error(err))
		}
		res, err := engine.NewEngine3D(logger).Pathfind(alg, start, goal, g, opts...)
		if err != nil {
			logger.Fatal("search failed", zap.Error(err))
		}
		printResult(res)
		return
	}

	g, err := m.Graph2D()
	if err != nil {
		logger.Fatal("failed to compile map", zap.Error(err))
	}
	res, err := engine.NewEngine2D(logger).Pathfind(alg, start.XY(), goal.XY(), g, opts...)
	if err != nil {
		logger.Fatal("search failed", zap.Error(err))
	}
	printResult(res)
}

func printResult[C da.Coordinate[C]](res pathfinding.Result[C]) {
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(res)
		return
	}
	fmt.Printf("status: %s\n", res.Status)
	fmt.Printf("goal: %s\n", res.Goal)
	fmt.Printf("cost: %.4f expanded: %d restarts: %d\n", res.Cost, res.Expanded, res.Restarts)
	parts := make([]string, len(res.Route))
	for i, c := range res.Route {
		parts[i] = c.String()
	}
	fmt.Printf("route (%d): %s\n", len(res.Route), strings.Join(parts, " "))
}

// parseCell reads "x,y" or "x,y,z". 2D maps ignore z.
func parseCell(s string, dims int) (da.Coordinate3D, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 && len(fields) != 3 {
		return da.Coordinate3D{}, fmt.Errorf("cell %q: want x,y or x,y,z", s)
	}
	if dims == 3 && len(fields) != 3 {
		return da.Coordinate3D{}, fmt.Errorf("cell %q: 3D maps need x,y,z", s)
	}
	var v [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return da.Coordinate3D{}, fmt.Errorf("cell %q: %w", s, err)
		}
		v[i] = n
	}
	return da.NewCoordinate3D(v[0], v[1], v[2]), nil
}
