package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/gridnav/pkg/engine"
	"github.com/lintang-b-s/gridnav/pkg/engine/pathfinding"
	"github.com/lintang-b-s/gridnav/pkg/gridmap"
	"github.com/lintang-b-s/gridnav/pkg/http"
	"github.com/lintang-b-s/gridnav/pkg/http/usecases"
	"github.com/lintang-b-s/gridnav/pkg/logger"
	"github.com/lintang-b-s/gridnav/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir    = flag.String("config_dir", "./data/", "directory holding config.yaml")
	useRateLimit = flag.Bool("rate_limit", false, "limit requests per client ip")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configDir); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	store := gridmap.NewStore(logger)
	mapsDir := viper.GetString("MAPS_DIR")
	n, err := store.LoadDir(mapsDir)
	if err != nil {
		logger.Fatal("failed to load maps", zap.String("dir", mapsDir), zap.Error(err))
	}
	logger.Info("maps loaded", zap.Int("count", n), zap.String("dir", mapsDir))

	if viper.GetBool("WATCH_MAPS") {
		go func() {
			if err := store.Watch(ctx, mapsDir); err != nil {
				logger.Error("map watcher stopped", zap.Error(err))
			}
		}()
	}

	defaults := []pathfinding.Option{
		pathfinding.WithMaxLoops(viper.GetInt("MAX_LOOPS")),
		pathfinding.WithHeuristicScale(viper.GetFloat64("HEURISTIC_SCALE")),
		pathfinding.WithMaxRestarts(viper.GetInt("MAX_RESTARTS")),
		pathfinding.WithBeamWidth(viper.GetInt("BEAM_WIDTH")),
	}
	engine2D := engine.NewEngine2D(logger, defaults...)
	engine3D := engine.NewEngine3D(logger, defaults...)

	routingService, err := usecases.NewRoutingService(logger, engine2D, engine3D, store,
		viper.GetInt("ROUTE_CACHE_SIZE"), viper.GetInt("BATCH_WORKERS"))
	if err != nil {
		logger.Fatal("failed to create routing service", zap.Error(err))
	}

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, *useRateLimit, routingService); err != nil {
		logger.Fatal("failed to start api", zap.Error(err))
	}

	signal := http.GracefulShutdown()
	cleanup()
	if err := api.Wait(); err != nil && err != context.Canceled {
		logger.Error("api stopped with error", zap.Error(err))
	}

	logger.Info("gridnav Server Stopped", zap.String("signal", signal.String()))
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
