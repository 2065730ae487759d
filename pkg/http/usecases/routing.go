package usecases

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/gridnav/pkg/concurrent"
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/engine/pathfinding"
	"github.com/lintang-b-s/gridnav/pkg/gridmap"
	"github.com/lintang-b-s/gridnav/pkg/guidance"
	"github.com/lintang-b-s/gridnav/pkg/util"
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"
)

// Answer is a route plus the request context it was computed in.
type Answer[C da.Coordinate[C]] struct {
	pathfinding.Result[C]
	Start    C
	Map      string
	Revision uint64
	Cached   bool
	// Polyline encodes start followed by the route, 2D only
	Polyline   string
	Directions []guidance.Instruction[C]
}

type (
	Answer2D = Answer[da.Coordinate2D]
	Answer3D = Answer[da.Coordinate3D]
)

type RoutingService struct {
	log          *zap.Logger
	engine2D     RoutingEngine[da.Coordinate2D]
	engine3D     RoutingEngine[da.Coordinate3D]
	maps         MapStore
	cache2D      *lru.Cache[cacheKey[da.Coordinate2D], pathfinding.Result[da.Coordinate2D]]
	cache3D      *lru.Cache[cacheKey[da.Coordinate3D], pathfinding.Result[da.Coordinate3D]]
	batchWorkers int
}

// NewRoutingService wires the engines to the map store. maps may be nil; cacheSize <= 0 disables caching.
func NewRoutingService(log *zap.Logger, engine2D RoutingEngine[da.Coordinate2D],
	engine3D RoutingEngine[da.Coordinate3D], maps MapStore, cacheSize, batchWorkers int) (*RoutingService, error) {
	rs := &RoutingService{
		log:          log,
		engine2D:     engine2D,
		engine3D:     engine3D,
		maps:         maps,
		batchWorkers: max(batchWorkers, 1),
	}
	if cacheSize > 0 {
		var err error
		rs.cache2D, err = lru.New[cacheKey[da.Coordinate2D], pathfinding.Result[da.Coordinate2D]](cacheSize)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "route cache")
		}
		rs.cache3D, err = lru.New[cacheKey[da.Coordinate3D], pathfinding.Result[da.Coordinate3D]](cacheSize)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "route cache")
		}
	}
	return rs, nil
}

func (rs *RoutingService) Algorithms() []pathfinding.Algorithm {
	return rs.engine2D.Algorithms()
}

func (rs *RoutingService) Maps() []gridmap.MapInfo {
	if rs.maps == nil {
		return []gridmap.MapInfo{}
	}
	return rs.maps.List()
}

func (rs *RoutingService) lookupMap(name string) (*gridmap.GridMap, error) {
	if rs.maps == nil {
		return nil, util.NewErrorf(util.ErrNotFound, "map %q not found, no map store configured", name)
	}
	return rs.maps.Get(name)
}

func (rs *RoutingService) ShortestPath2D(ctx context.Context, q Query2D) (Answer2D, error) {
	base := da.NewGridGraph[da.Coordinate2D]()
	var revision uint64
	if q.Map != "" {
		m, err := rs.lookupMap(q.Map)
		if err != nil {
			return Answer2D{}, err
		}
		if base, err = m.Graph2D(); err != nil {
			return Answer2D{}, err
		}
		revision = m.Revision()
	}

	res, directions, cached, err := shortestPath(ctx, rs.engine2D, rs.cache2D, q, base, revision)
	if err != nil {
		return Answer2D{}, err
	}

	ans := Answer2D{Result: res, Start: q.Start, Map: q.Map, Revision: revision, Cached: cached,
		Directions: directions}
	ans.Polyline = EncodePolyline(q.Start, res.Route)
	rs.logRoute(q.Map, string(q.Algorithm), ans.Result.Status, len(res.Route), cached)
	return ans, nil
}

func (rs *RoutingService) ShortestPath3D(ctx context.Context, q Query3D) (Answer3D, error) {
	base := da.NewGridGraph[da.Coordinate3D]()
	var revision uint64
	if q.Map != "" {
		m, err := rs.lookupMap(q.Map)
		if err != nil {
			return Answer3D{}, err
		}
		if base, err = m.Graph3D(); err != nil {
			return Answer3D{}, err
		}
		revision = m.Revision()
	}

	res, directions, cached, err := shortestPath(ctx, rs.engine3D, rs.cache3D, q, base, revision)
	if err != nil {
		return Answer3D{}, err
	}
	rs.logRoute(q.Map, string(q.Algorithm), res.Status, len(res.Route), cached)
	return Answer3D{Result: res, Start: q.Start, Map: q.Map, Revision: revision, Cached: cached,
		Directions: directions}, nil
}

func (rs *RoutingService) logRoute(mapName, algorithm string, status pathfinding.Status, length int, cached bool) {
	rs.log.Debug("route served",
		zap.String("map", mapName),
		zap.String("algorithm", algorithm),
		zap.Stringer("status", status),
		zap.Int("route_length", length),
		zap.Bool("cached", cached),
	)
}

func shortestPath[C da.Coordinate[C]](ctx context.Context, engine RoutingEngine[C],
	cache *lru.Cache[cacheKey[C], pathfinding.Result[C]], q Query[C], base *da.GridGraph[C],
	revision uint64) (pathfinding.Result[C], []guidance.Instruction[C], bool, error) {
	if util.StopConcurrentOperation(ctx) {
		return pathfinding.Result[C]{}, nil, false, util.WrapErrorf(ctx.Err(), util.ErrBadParamInput, "request canceled")
	}

	opts := q.Tuning.apply(engine.GetDefaults())
	if opts.MaxLoops < 1 {
		return pathfinding.Result[C]{}, nil, false, util.NewErrorf(util.ErrBadParamInput, "max_loops must be at least 1")
	}

	graph, err := q.overlay(base)
	if err != nil {
		return pathfinding.Result[C]{}, nil, false, err
	}

	useCache := cache != nil && q.cacheable()
	var key cacheKey[C]
	if useCache {
		key = newCacheKey(q, revision, opts)
		if res, ok := cache.Get(key); ok {
			return res, guidance.Directions[C](graph, q.Start, res.Route), true, nil
		}
	}

	res, err := engine.Pathfind(q.Algorithm, q.Start, q.Goal, graph, pathfinding.WithOptions(opts))
	if err != nil {
		return pathfinding.Result[C]{}, nil, false, err
	}
	if useCache {
		cache.Add(key, res)
	}
	return res, guidance.Directions[C](graph, q.Start, res.Route), false, nil
}

// EncodePolyline encodes start and route as a Google polyline of (x, y) pairs.
func EncodePolyline(start da.Coordinate2D, route []da.Coordinate2D) string {
	coords := make([][]float64, 0, len(route)+1)
	coords = append(coords, []float64{float64(start.X), float64(start.Y)})
	for _, c := range route {
		coords = append(coords, []float64{float64(c.X), float64(c.Y)})
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePolyline reverses EncodePolyline.
func DecodePolyline(s string) ([]da.Coordinate2D, error) {
	coords, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "decode polyline")
	}
	cells := make([]da.Coordinate2D, 0, len(coords))
	for _, c := range coords {
		cells = append(cells, da.NewCoordinate2D(int(roundHalf(c[0])), int(roundHalf(c[1]))))
	}
	return cells, nil
}

func roundHalf(v float64) float64 {
	if v < 0 {
		return float64(int(v - 0.5))
	}
	return float64(int(v + 0.5))
}

type batchJob struct {
	index int
	query Query2D
}

type batchResult struct {
	index  int
	answer Answer2D
	err    error
}

// BatchItem is one entry of a batch answer. Err is set when that query failed.
type BatchItem struct {
	Answer Answer2D
	Err    error
}

// BatchShortestPath2D answers independent queries concurrently. items keep the order of qs.
func (rs *RoutingService) BatchShortestPath2D(ctx context.Context, qs []Query2D) []BatchItem {
	items := make([]BatchItem, len(qs))
	if len(qs) == 0 {
		return items
	}

	workers := min(rs.batchWorkers, len(qs))
	wp := concurrent.NewWorkerPool[batchJob, batchResult](workers, len(qs))
	wp.Start(func(job batchJob) batchResult {
		ans, err := rs.ShortestPath2D(ctx, job.query)
		return batchResult{index: job.index, answer: ans, err: err}
	})

	for i, q := range qs {
		wp.AddJob(batchJob{index: i, query: q})
	}
	wp.Close()
	wp.Wait()

	for res := range wp.CollectResults() {
		items[res.index] = BatchItem{Answer: res.answer, Err: res.err}
	}
	return items
}
