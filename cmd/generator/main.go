package main

import (
	"flag"
	"path/filepath"
	"strings"
	"time"

	"github.com/lintang-b-s/gridnav/pkg/gridmap"
	"github.com/lintang-b-s/gridnav/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	kind    = flag.String("kind", "maze", "maze or obstacles")
	name    = flag.String("name", "", "map name (defaults to the output file name)")
	out     = flag.String("out", "./data/maps/generated.yaml", "output map file")
	width   = flag.Int("width", 20, "maze rooms or grid cells along x")
	height  = flag.Int("height", 10, "maze rooms or grid cells along y")
	depth   = flag.Int("depth", 0, "obstacle grid layers along z, 0 for a 2D map")
	density = flag.Float64("density", 0.25, "obstacle probability per cell")
	seed    = flag.Uint64("seed", 0, "random seed, 0 uses the clock")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rd := rand.New(rand.NewSource(s))

	mapName := *name
	if mapName == "" {
		mapName = strings.TrimSuffix(filepath.Base(*out), filepath.Ext(*out))
	}

	var m *gridmap.GridMap
	switch *kind {
	case "maze":
		m, err = gridmap.GenerateMaze(rd, mapName, *width, *height)
	case "obstacles":
		m, err = gridmap.GenerateObstacles(rd, mapName, *width, *height, *depth, *density)
	default:
		logger.Fatal("unknown map kind", zap.String("kind", *kind))
	}
	if err != nil {
		logger.Fatal("failed to generate map", zap.Error(err))
	}

	if err := gridmap.Save(*out, m); err != nil {
		logger.Fatal("failed to save map", zap.Error(err))
	}
	logger.Info("map generated", zap.String("name", m.Name), zap.String("kind", *kind),
		zap.String("out", *out), zap.Uint64("seed", s))
}
