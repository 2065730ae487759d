package pathfinding

import (
	"testing"

	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func p2(xy ...int) []da.Coordinate2D {
	route := make([]da.Coordinate2D, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		route = append(route, da.NewCoordinate2D(xy[i], xy[i+1]))
	}
	return route
}

func p3(xyz ...int) []da.Coordinate3D {
	route := make([]da.Coordinate3D, 0, len(xyz)/3)
	for i := 0; i+2 < len(xyz); i += 3 {
		route = append(route, da.NewCoordinate3D(xyz[i], xyz[i+1], xyz[i+2]))
	}
	return route
}

func search2D(t *testing.T, alg Algorithm, start, goal da.Coordinate2D, graph *da.GridGraph[da.Coordinate2D],
	opts ...Option) Result[da.Coordinate2D] {
	t.Helper()
	fn, err := DefaultRegistry[da.Coordinate2D]().Get(alg)
	require.NoError(t, err)
	return fn(da.NewLattice2D(), start, goal, graph, ApplyOptions(DefaultOptions(), opts...))
}

func search3D(t *testing.T, alg Algorithm, start, goal da.Coordinate3D, graph *da.GridGraph[da.Coordinate3D],
	opts ...Option) Result[da.Coordinate3D] {
	t.Helper()
	fn, err := DefaultRegistry[da.Coordinate3D]().Get(alg)
	require.NoError(t, err)
	return fn(da.NewLattice3D(), start, goal, graph, ApplyOptions(DefaultOptions(), opts...))
}

// assertValidRoute checks the route is a chain of legal moves over walkable cells.
func assertValidRoute[C da.Coordinate[C]](t *testing.T, start C, graph *da.GridGraph[C], route []C) {
	t.Helper()
	prev := start
	for _, c := range route {
		assert.True(t, graph.IsWalkable(c), "route enters blocked cell %v", c)
		delta := c.Sub(prev)
		nonZero := 0
		for i := 0; i < delta.Dims(); i++ {
			assert.LessOrEqual(t, abs(delta.Axis(i)), 1, "step %v -> %v is not a unit move", prev, c)
			if delta.Axis(i) != 0 {
				nonZero++
			}
		}
		require.NotZero(t, nonZero, "route repeats cell %v", c)
		if nonZero == 1 {
			assert.True(t, graph.AllowOrthogonal, "orthogonal step %v -> %v", prev, c)
		} else {
			assert.True(t, graph.AllowDiagonal, "diagonal step %v -> %v", prev, c)
		}
		prev = c
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

var shortestAlgorithms = []Algorithm{BREADTH_FIRST, HEURISTIC, BEAM, DIJKSTRA, ASTAR}

var allAlgorithms = []Algorithm{DEPTH_FIRST, BREADTH_FIRST, HEURISTIC, GREEDY_BEST_FIRST, BEAM, DIJKSTRA,
	UNIFORM_COST, ASTAR}

func TestStraightCorridorOrthogonal(t *testing.T) {
	graph := da.NewGridGraph(da.WithMovement[da.Coordinate2D](true, false))
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(3, 0)

	for _, alg := range shortestAlgorithms {
		t.Run(string(alg), func(t *testing.T) {
			res := search2D(t, alg, start, goal, graph)
			assert.Equal(t, StatusFound, res.Status)
			assert.Equal(t, goal, res.Goal)
			assert.Equal(t, p2(1, 0, 2, 0, 3, 0), res.Route)
			assert.InDelta(t, 3.0, res.Cost, 1e-9)
			assert.Zero(t, res.Restarts)
		})
	}

	t.Run("depth first wanders off", func(t *testing.T) {
		// the last pushed neighbor is +y, the search never returns to the corridor
		res := search2D(t, DEPTH_FIRST, start, goal, graph)
		assert.Equal(t, StatusUnreachable, res.Status)
		assert.Equal(t, da.NewCoordinate2D(1, 0), res.Goal)
		assert.Equal(t, p2(1, 0), res.Route)
		assert.Equal(t, 300, res.Expanded)
	})
}

func TestDetourAroundBlockedCell(t *testing.T) {
	graph := da.NewGridGraph(
		da.WithMovement[da.Coordinate2D](true, false),
		da.WithOccupied[da.Coordinate2D](da.NewCellSet(da.NewCoordinate2D(1, 0)), false),
	)
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(3, 0)

	for _, alg := range shortestAlgorithms {
		t.Run(string(alg), func(t *testing.T) {
			res := search2D(t, alg, start, goal, graph)
			require.Equal(t, StatusFound, res.Status)
			assert.Equal(t, p2(0, -1, 1, -1, 2, -1, 3, -1, 3, 0), res.Route)
			assert.NotContains(t, res.Route, da.NewCoordinate2D(1, 0))
			assertValidRoute(t, start, graph, res.Route)
		})
	}

	t.Run("depth first", func(t *testing.T) {
		res := search2D(t, DEPTH_FIRST, start, goal, graph)
		assert.Equal(t, StatusUnreachable, res.Status)
		assert.Equal(t, start, res.Goal)
		assert.Empty(t, res.Route)
	})
}

func TestOpenGridDiagonal(t *testing.T) {
	graph := da.NewGridGraph[da.Coordinate2D]()
	start := da.NewCoordinate2D(0, 0)

	testCases := []struct {
		name     string
		goal     da.Coordinate2D
		alg      Algorithm
		want     []da.Coordinate2D
		wantLen  int
		wantFail bool
	}{
		{name: "bfs main diagonal", goal: da.NewCoordinate2D(4, 4), alg: BREADTH_FIRST, want: p2(1, 1, 2, 2, 3, 3, 4, 4)},
		{name: "astar main diagonal", goal: da.NewCoordinate2D(4, 4), alg: ASTAR, want: p2(1, 1, 2, 2, 3, 3, 4, 4)},
		{name: "dfs main diagonal", goal: da.NewCoordinate2D(4, 4), alg: DEPTH_FIRST, want: p2(1, 1, 2, 2, 3, 3, 4, 4)},
		{name: "bfs knight-ish", goal: da.NewCoordinate2D(5, 3), alg: BREADTH_FIRST, want: p2(1, -1, 2, 0, 3, 1, 4, 2, 5, 3)},
		{name: "dijkstra knight-ish", goal: da.NewCoordinate2D(5, 3), alg: DIJKSTRA, want: p2(1, -1, 2, 0, 3, 1, 4, 2, 5, 3)},
		{name: "greedy knight-ish", goal: da.NewCoordinate2D(5, 3), alg: HEURISTIC, want: p2(1, 1, 2, 2, 3, 3, 4, 3, 5, 3)},
		{name: "beam knight-ish", goal: da.NewCoordinate2D(5, 3), alg: BEAM, want: p2(1, 1, 2, 2, 3, 3, 4, 3, 5, 3)},
		{name: "astar knight-ish", goal: da.NewCoordinate2D(5, 3), alg: ASTAR, want: p2(1, 1, 2, 2, 3, 3, 4, 3, 5, 3)},
		{name: "dfs knight-ish", goal: da.NewCoordinate2D(5, 3), alg: DEPTH_FIRST, wantLen: 5},
		{name: "bfs along x", goal: da.NewCoordinate2D(6, 0), alg: BREADTH_FIRST, want: p2(1, -1, 2, -2, 3, -3, 4, -2, 5, -1, 6, 0)},
		{name: "astar along x", goal: da.NewCoordinate2D(6, 0), alg: ASTAR, want: p2(1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0)},
		{name: "greedy along x", goal: da.NewCoordinate2D(6, 0), alg: HEURISTIC, want: p2(1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0)},
		{name: "bfs negative quadrant", goal: da.NewCoordinate2D(-3, 7), alg: BREADTH_FIRST, wantLen: 7},
		{name: "dijkstra negative quadrant", goal: da.NewCoordinate2D(-3, 7), alg: DIJKSTRA, wantLen: 7},
		{name: "greedy negative quadrant", goal: da.NewCoordinate2D(-3, 7), alg: HEURISTIC, wantLen: 7},
		{name: "astar negative quadrant", goal: da.NewCoordinate2D(-3, 7), alg: ASTAR, wantLen: 7},
		{name: "dfs negative quadrant", goal: da.NewCoordinate2D(-3, 7), alg: DEPTH_FIRST, wantFail: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res := search2D(t, tt.alg, start, tt.goal, graph)
			assertValidRoute(t, start, graph, res.Route)
			if tt.wantFail {
				assert.Equal(t, StatusUnreachable, res.Status)
				return
			}
			require.Equal(t, StatusFound, res.Status)
			assert.Equal(t, tt.goal, res.Route[len(res.Route)-1])
			if tt.want != nil {
				assert.Equal(t, tt.want, res.Route)
			} else {
				assert.Len(t, res.Route, tt.wantLen)
			}
		})
	}
}

func TestShortestAlgorithmsMatchChebyshevDistance(t *testing.T) {
	graph := da.NewGridGraph[da.Coordinate2D]()
	start := da.NewCoordinate2D(0, 0)
	goals := p2(4, 4, 5, 3, 6, 0, -3, 7, 2, -5, -4, -1)

	for _, alg := range []Algorithm{BREADTH_FIRST, DIJKSTRA} {
		for _, goal := range goals {
			t.Run(string(alg)+" "+goal.String(), func(t *testing.T) {
				res := search2D(t, alg, start, goal, graph)
				require.True(t, res.Found())
				assert.Len(t, res.Route, geo.Chebyshev(start, goal))
			})
		}
	}
}

func ring(center da.Coordinate2D) da.CellSet[da.Coordinate2D] {
	set := da.NewCellSet[da.Coordinate2D]()
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			set.Add(center.Add(da.NewCoordinate2D(dx, dy)))
		}
	}
	return set
}

func TestUnreachableGoalFallsBackToClosestCell(t *testing.T) {
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(5, 5)

	testCases := []struct {
		name         string
		diagonal     bool
		alg          Algorithm
		wantGoal     da.Coordinate2D
		wantLen      int
		wantExpanded int
		wantRestarts int
	}{
		{name: "bfs diagonal", diagonal: true, alg: BREADTH_FIRST, wantGoal: da.NewCoordinate2D(5, 3), wantLen: 5, wantExpanded: 300},
		{name: "dfs diagonal", diagonal: true, alg: DEPTH_FIRST, wantGoal: da.NewCoordinate2D(3, 5), wantLen: 5, wantExpanded: 300},
		{name: "greedy diagonal", diagonal: true, alg: HEURISTIC, wantGoal: da.NewCoordinate2D(5, 3), wantLen: 5, wantExpanded: 300},
		{name: "beam diagonal", diagonal: true, alg: BEAM, wantGoal: da.NewCoordinate2D(5, 3), wantLen: 5, wantExpanded: 300},
		{name: "dijkstra diagonal", diagonal: true, alg: DIJKSTRA, wantGoal: da.NewCoordinate2D(5, 3), wantLen: 5, wantExpanded: 407, wantRestarts: 1},
		{name: "astar diagonal", diagonal: true, alg: ASTAR, wantGoal: da.NewCoordinate2D(5, 3), wantLen: 5, wantExpanded: 306, wantRestarts: 1},
		{name: "bfs orthogonal", alg: BREADTH_FIRST, wantGoal: da.NewCoordinate2D(5, 3), wantLen: 8},
		{name: "dfs orthogonal", alg: DEPTH_FIRST, wantGoal: da.NewCoordinate2D(1, 5), wantLen: 6},
		{name: "greedy orthogonal", alg: HEURISTIC, wantGoal: da.NewCoordinate2D(5, 3), wantLen: 8},
		{name: "beam orthogonal", alg: BEAM, wantGoal: da.NewCoordinate2D(5, 3), wantLen: 8},
		{name: "dijkstra orthogonal", alg: DIJKSTRA, wantGoal: da.NewCoordinate2D(5, 3), wantLen: 8, wantRestarts: 1},
		{name: "astar orthogonal", alg: ASTAR, wantGoal: da.NewCoordinate2D(5, 3), wantLen: 8, wantRestarts: 1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			graph := da.NewGridGraph(
				da.WithMovement[da.Coordinate2D](true, tt.diagonal),
				da.WithOccupied[da.Coordinate2D](ring(goal), false),
			)
			res := search2D(t, tt.alg, start, goal, graph)

			assert.Equal(t, StatusUnreachable, res.Status)
			assert.False(t, res.Found())
			assert.Equal(t, tt.wantGoal, res.Goal)
			require.Len(t, res.Route, tt.wantLen)
			assert.Equal(t, tt.wantGoal, res.Route[len(res.Route)-1])
			assert.NotContains(t, res.Route, goal)
			assert.Equal(t, tt.wantRestarts, res.Restarts)
			if tt.wantExpanded > 0 {
				assert.Equal(t, tt.wantExpanded, res.Expanded)
			}
			assertValidRoute(t, start, graph, res.Route)
		})
	}
}

func TestWeightedSearchRestartCap(t *testing.T) {
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(5, 5)
	graph := da.NewGridGraph(da.WithOccupied[da.Coordinate2D](ring(goal), false))

	testCases := []struct {
		alg  Algorithm
		want []da.Coordinate2D
	}{
		{alg: DIJKSTRA, want: p2(1, -1, 2, 0, 3, 1, 4, 2, 5, 3)},
		{alg: ASTAR, want: p2(1, 1, 2, 2, 3, 3, 4, 3, 5, 3)},
	}

	for _, tt := range testCases {
		t.Run(string(tt.alg), func(t *testing.T) {
			res := search2D(t, tt.alg, start, goal, graph, WithMaxRestarts(0))
			assert.Equal(t, StatusUnreachable, res.Status)
			assert.Equal(t, tt.want, res.Route)
			assert.Zero(t, res.Restarts)
			assert.Equal(t, 300, res.Expanded)
		})
	}
}

func TestEnclosedStart(t *testing.T) {
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(5, 5)
	graph := da.NewGridGraph(da.WithOccupied[da.Coordinate2D](ring(start), false))

	for _, alg := range allAlgorithms {
		t.Run(string(alg), func(t *testing.T) {
			res := search2D(t, alg, start, goal, graph)
			assert.Equal(t, StatusUnreachable, res.Status)
			assert.Equal(t, start, res.Goal)
			assert.Empty(t, res.Route)
			assert.Equal(t, 1, res.Expanded)
		})
	}
}

func TestTrivialAndImmobile(t *testing.T) {
	start := da.NewCoordinate2D(2, 2)

	for _, alg := range allAlgorithms {
		t.Run(string(alg)+" trivial", func(t *testing.T) {
			res := search2D(t, alg, start, start, da.NewGridGraph[da.Coordinate2D]())
			assert.Equal(t, StatusTrivial, res.Status)
			assert.Equal(t, start, res.Goal)
			assert.NotNil(t, res.Route)
			assert.Empty(t, res.Route)
			assert.Zero(t, res.Expanded)
		})

		t.Run(string(alg)+" immobile", func(t *testing.T) {
			graph := da.NewGridGraph(da.WithMovement[da.Coordinate2D](false, false))
			res := search2D(t, alg, start, da.NewCoordinate2D(4, 4), graph)
			assert.Equal(t, StatusImmobile, res.Status)
			assert.Equal(t, start, res.Goal)
			assert.NotNil(t, res.Route)
			assert.Empty(t, res.Route)
			assert.Zero(t, res.Expanded)
		})
	}
}

func TestLoopBudget(t *testing.T) {
	graph := da.NewGridGraph(da.WithMovement[da.Coordinate2D](true, false))
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(10, 0)

	testCases := []struct {
		alg          Algorithm
		wantExpanded int
		wantRestarts int
	}{
		{alg: BREADTH_FIRST, wantExpanded: 1},
		{alg: DEPTH_FIRST, wantExpanded: 1},
		{alg: HEURISTIC, wantExpanded: 1},
		{alg: BEAM, wantExpanded: 1},
		// the restart toward (1, 0) is spent popping the start again
		{alg: DIJKSTRA, wantExpanded: 2, wantRestarts: 1},
		{alg: ASTAR, wantExpanded: 2, wantRestarts: 1},
	}

	for _, tt := range testCases {
		t.Run(string(tt.alg), func(t *testing.T) {
			res := search2D(t, tt.alg, start, goal, graph, WithMaxLoops(1))
			assert.Equal(t, StatusUnreachable, res.Status)
			assert.Equal(t, p2(1, 0), res.Route)
			assert.Equal(t, da.NewCoordinate2D(1, 0), res.Goal)
			assert.Equal(t, tt.wantExpanded, res.Expanded)
			assert.Equal(t, tt.wantRestarts, res.Restarts)
		})
	}
}

func TestDeterministic(t *testing.T) {
	wall := da.NewCellSet[da.Coordinate2D]()
	for y := -10; y <= 10; y++ {
		if y != -8 {
			wall.Add(da.NewCoordinate2D(3, y))
		}
	}
	graph := da.NewGridGraph(da.WithOccupied[da.Coordinate2D](wall, false))
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(6, 0)

	for _, alg := range allAlgorithms {
		t.Run(string(alg), func(t *testing.T) {
			first := search2D(t, alg, start, goal, graph)
			for i := 0; i < 5; i++ {
				assert.Equal(t, first, search2D(t, alg, start, goal, graph))
			}
		})
	}
}

func TestWallWithGap(t *testing.T) {
	wall := da.NewCellSet[da.Coordinate2D]()
	for y := -10; y <= 10; y++ {
		if y != -8 {
			wall.Add(da.NewCoordinate2D(3, y))
		}
	}
	graph := da.NewGridGraph(da.WithOccupied[da.Coordinate2D](wall, false))
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(6, 0)

	gap := da.NewCoordinate2D(3, -8)

	testCases := []struct {
		name         string
		alg          Algorithm
		opts         []Option
		wantStatus   Status
		wantLen      int
		wantExpanded int
		wantGap      bool
	}{
		{name: "bfs budget runs out", alg: BREADTH_FIRST, wantStatus: StatusUnreachable, wantLen: 2, wantExpanded: 300},
		{name: "dijkstra budget runs out", alg: DIJKSTRA, wantStatus: StatusUnreachable, wantLen: 2, wantExpanded: 318},
		{name: "greedy through gap", alg: HEURISTIC, wantStatus: StatusFound, wantLen: 17, wantExpanded: 66, wantGap: true},
		{name: "astar through gap", alg: ASTAR, wantStatus: StatusFound, wantLen: 16, wantExpanded: 111, wantGap: true},
		// the pruned frontier loses the gap and walks around the wall end
		{name: "beam around wall", alg: BEAM, wantStatus: StatusFound, wantLen: 38, wantExpanded: 70},
		{name: "narrow beam stalls", alg: BEAM, opts: []Option{WithBeamWidth(1)}, wantStatus: StatusUnreachable,
			wantLen: 2, wantExpanded: 3},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res := search2D(t, tt.alg, start, goal, graph, tt.opts...)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Len(t, res.Route, tt.wantLen)
			assert.Equal(t, tt.wantExpanded, res.Expanded)
			assertValidRoute(t, start, graph, res.Route)
			if tt.wantGap {
				assert.Contains(t, res.Route, gap)
			}
			if tt.wantStatus == StatusUnreachable {
				assert.Equal(t, da.NewCoordinate2D(2, 0), res.Goal)
			}
		})
	}
}

func TestWeightsSteerWeightedSearch(t *testing.T) {
	// two walkable rows y=0 and y=1 between x=0 and x=4
	rows := da.NewCellSet[da.Coordinate2D]()
	for x := 0; x <= 4; x++ {
		rows.Add(da.NewCoordinate2D(x, 0))
		rows.Add(da.NewCoordinate2D(x, 1))
	}
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(4, 0)
	straight := p2(1, 0, 2, 0, 3, 0, 4, 0)
	detour := p2(1, 0, 1, 1, 2, 1, 3, 1, 4, 1, 4, 0)

	testCases := []struct {
		name     string
		alg      Algorithm
		weight   float64
		want     []da.Coordinate2D
		wantCost float64
	}{
		{name: "dijkstra cheap", alg: DIJKSTRA, weight: 1, want: straight, wantCost: 4},
		{name: "dijkstra tie on cost", alg: DIJKSTRA, weight: 2, want: straight, wantCost: 5},
		{name: "dijkstra expensive", alg: DIJKSTRA, weight: 10, want: detour, wantCost: 6},
		{name: "astar cheap", alg: ASTAR, weight: 1, want: straight, wantCost: 4},
		{name: "astar expensive", alg: ASTAR, weight: 10, want: detour, wantCost: 6},
		{name: "bfs ignores weights", alg: BREADTH_FIRST, weight: 10, want: straight, wantCost: 13},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			graph := da.NewGridGraph(
				da.WithMovement[da.Coordinate2D](true, false),
				da.WithOccupied[da.Coordinate2D](rows, true),
				da.WithWeights(map[da.Coordinate2D]float64{da.NewCoordinate2D(2, 0): tt.weight}, 1),
			)
			res := search2D(t, tt.alg, start, goal, graph)
			require.True(t, res.Found())
			assert.Equal(t, tt.want, res.Route)
			assert.InDelta(t, tt.wantCost, res.Cost, 1e-9)
			assert.InDelta(t, RouteCost(graph, res.Route), res.Cost, 1e-9)
		})
	}

	t.Run("ignore weights", func(t *testing.T) {
		graph := da.NewGridGraph(
			da.WithMovement[da.Coordinate2D](true, false),
			da.WithOccupied[da.Coordinate2D](rows, true),
			da.WithWeights(map[da.Coordinate2D]float64{da.NewCoordinate2D(2, 0): 10}, 1),
			da.WithIgnoreWeights[da.Coordinate2D](),
		)
		res := search2D(t, DIJKSTRA, start, goal, graph)
		assert.Equal(t, straight, res.Route)
		assert.InDelta(t, 4.0, res.Cost, 1e-9)
	})
}

func TestWeightMonotonicity(t *testing.T) {
	corridor := da.NewCellSet[da.Coordinate2D]()
	for x := 0; x <= 4; x++ {
		corridor.Add(da.NewCoordinate2D(x, 0))
	}
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(4, 0)

	for _, alg := range []Algorithm{DIJKSTRA, ASTAR} {
		t.Run(string(alg), func(t *testing.T) {
			prevCost := 0.0
			for _, w := range []float64{1, 5} {
				graph := da.NewGridGraph(
					da.WithMovement[da.Coordinate2D](true, false),
					da.WithOccupied[da.Coordinate2D](corridor, true),
					da.WithWeights(map[da.Coordinate2D]float64{da.NewCoordinate2D(2, 0): w}, 1),
				)
				res := search2D(t, alg, start, goal, graph)
				require.True(t, res.Found())
				assert.Equal(t, p2(1, 0, 2, 0, 3, 0, 4, 0), res.Route)
				assert.Greater(t, res.Cost, prevCost)
				prevCost = res.Cost
			}
			assert.InDelta(t, 8.0, prevCost, 1e-9)
		})
	}
}

func TestZeroDefaultWeight(t *testing.T) {
	graph := da.NewGridGraph(
		da.WithMovement[da.Coordinate2D](true, false),
		da.WithWeights[da.Coordinate2D](nil, 0),
	)
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(3, 0)

	for _, alg := range []Algorithm{DIJKSTRA, ASTAR} {
		t.Run(string(alg), func(t *testing.T) {
			res := search2D(t, alg, start, goal, graph)
			require.True(t, res.Found())
			assert.Equal(t, p2(1, 0, 2, 0, 3, 0), res.Route)
			assert.Zero(t, res.Cost)
		})
	}
}

func TestIgnoreOccupancy(t *testing.T) {
	graph := da.NewGridGraph(
		da.WithMovement[da.Coordinate2D](true, false),
		da.WithOccupied[da.Coordinate2D](da.NewCellSet(da.NewCoordinate2D(1, 0), da.NewCoordinate2D(2, 0)), false),
		da.WithIgnoreOccupancy[da.Coordinate2D](),
	)
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(3, 0)

	for _, alg := range shortestAlgorithms {
		t.Run(string(alg), func(t *testing.T) {
			res := search2D(t, alg, start, goal, graph)
			require.True(t, res.Found())
			assert.Equal(t, p2(1, 0, 2, 0, 3, 0), res.Route)
		})
	}
}

func TestLattice3D(t *testing.T) {
	origin := da.NewCoordinate3D(0, 0, 0)

	testCases := []struct {
		name     string
		diagonal bool
		goal     da.Coordinate3D
		alg      Algorithm
		want     []da.Coordinate3D
		wantFail bool
	}{
		{name: "bfs along x", goal: da.NewCoordinate3D(2, 0, 0), alg: BREADTH_FIRST, want: p3(1, 0, 0, 2, 0, 0)},
		{name: "astar along x", goal: da.NewCoordinate3D(2, 0, 0), alg: ASTAR, want: p3(1, 0, 0, 2, 0, 0)},
		{name: "dfs along x", goal: da.NewCoordinate3D(2, 0, 0), alg: DEPTH_FIRST, wantFail: true},
		{name: "astar orthogonal mixed", goal: da.NewCoordinate3D(2, 1, 3), alg: ASTAR,
			want: p3(0, 0, 1, 1, 0, 1, 1, 0, 2, 2, 0, 2, 2, 1, 2, 2, 1, 3)},
		{name: "dijkstra orthogonal mixed", goal: da.NewCoordinate3D(2, 1, 3), alg: DIJKSTRA,
			want: p3(0, 0, 1, 1, 0, 1, 1, 0, 2, 2, 0, 2, 2, 1, 2, 2, 1, 3)},
		{name: "bfs orthogonal mixed", goal: da.NewCoordinate3D(2, 1, 3), alg: BREADTH_FIRST,
			want: p3(1, 0, 0, 2, 0, 0, 2, 1, 0, 2, 1, 1, 2, 1, 2, 2, 1, 3)},
		{name: "bfs space diagonal", diagonal: true, goal: da.NewCoordinate3D(3, 3, 3), alg: BREADTH_FIRST,
			want: p3(1, 1, 1, 2, 2, 2, 3, 3, 3)},
		{name: "dfs space diagonal", diagonal: true, goal: da.NewCoordinate3D(3, 3, 3), alg: DEPTH_FIRST,
			want: p3(1, 1, 1, 2, 2, 2, 3, 3, 3)},
		{name: "astar diagonal", diagonal: true, goal: da.NewCoordinate3D(4, 2, 1), alg: ASTAR,
			want: p3(1, 1, 1, 2, 2, 1, 3, 2, 1, 4, 2, 1)},
		{name: "dijkstra diagonal", diagonal: true, goal: da.NewCoordinate3D(4, 2, 1), alg: DIJKSTRA,
			want: p3(1, -1, -1, 2, 0, -1, 3, 1, 0, 4, 2, 1)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			graph := da.NewGridGraph(da.WithMovement[da.Coordinate3D](true, tt.diagonal))
			res := search3D(t, tt.alg, origin, tt.goal, graph)
			assertValidRoute(t, origin, graph, res.Route)
			if tt.wantFail {
				assert.Equal(t, StatusUnreachable, res.Status)
				return
			}
			require.Equal(t, StatusFound, res.Status)
			assert.Equal(t, tt.want, res.Route)
		})
	}
}

func TestTopLevelSearchFunctions(t *testing.T) {
	lattice := da.NewLattice2D()
	graph := da.NewGridGraph(da.WithMovement[da.Coordinate2D](true, false))
	start, goal := da.NewCoordinate2D(0, 0), da.NewCoordinate2D(3, 0)
	want := p2(1, 0, 2, 0, 3, 0)

	testCases := []struct {
		name string
		fn   func(da.Lattice[da.Coordinate2D], da.Coordinate2D, da.Coordinate2D, *da.GridGraph[da.Coordinate2D],
			...Option) Result[da.Coordinate2D]
	}{
		{name: "breadth first", fn: BreadthFirstSearch[da.Coordinate2D]},
		{name: "heuristic", fn: HeuristicSearch[da.Coordinate2D]},
		{name: "greedy best first", fn: GreedyBestFirstSearch[da.Coordinate2D]},
		{name: "beam", fn: BeamSearch[da.Coordinate2D]},
		{name: "dijkstra", fn: DijkstraSearch[da.Coordinate2D]},
		{name: "uniform cost", fn: UniformCostSearch[da.Coordinate2D]},
		{name: "astar", fn: AStarSearch[da.Coordinate2D]},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.fn(lattice, start, goal, graph)
			assert.Equal(t, want, res.Route)
		})
	}

	res := DepthFirstSearch(lattice, start, goal, graph, WithMaxLoops(1))
	assert.Equal(t, 1, res.Expanded)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry[da.Coordinate2D]()
	assert.Equal(t, []Algorithm{ASTAR, BEAM, BREADTH_FIRST, DEPTH_FIRST, DIJKSTRA, GREEDY_BEST_FIRST, HEURISTIC,
		UNIFORM_COST}, r.Algorithms())

	_, err := r.Get("bogus")
	assert.Error(t, err)

	called := false
	r.Register("noop", func(_ da.Lattice[da.Coordinate2D], s, _ da.Coordinate2D, _ *da.GridGraph[da.Coordinate2D],
		_ Options) Result[da.Coordinate2D] {
		called = true
		return Result[da.Coordinate2D]{Route: []da.Coordinate2D{}, Status: StatusUnreachable, Goal: s}
	})
	fn, err := r.Get("noop")
	require.NoError(t, err)
	fn(da.NewLattice2D(), da.NewCoordinate2D(0, 0), da.NewCoordinate2D(1, 1), da.NewGridGraph[da.Coordinate2D](),
		DefaultOptions())
	assert.True(t, called)
}

func TestStatusText(t *testing.T) {
	testCases := []struct {
		status Status
		want   string
	}{
		{StatusFound, "found"},
		{StatusUnreachable, "unreachable"},
		{StatusTrivial, "trivial"},
		{StatusImmobile, "immobile"},
		{Status(42), "unknown"},
	}
	for _, tt := range testCases {
		text, err := tt.status.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(text))
	}
}

func TestApplyOptions(t *testing.T) {
	opts := ApplyOptions(DefaultOptions(), WithMaxLoops(10), WithHeuristicScale(2), WithMaxRestarts(1),
		WithBeamWidth(5))
	assert.Equal(t, Options{MaxLoops: 10, HeuristicScale: 2, MaxRestarts: 1, BeamWidth: 5}, opts)

	replaced := ApplyOptions(DefaultOptions(), WithOptions(opts), WithMaxLoops(20))
	assert.Equal(t, 20, replaced.MaxLoops)
	assert.Equal(t, 5, replaced.BeamWidth)
}
