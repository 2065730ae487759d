package gridmap

import (
	"strings"

	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/util"
	"golang.org/x/exp/rand"
)

// GenerateMaze carves a perfect maze of width x height rooms with a randomized depth-first
// backtracker. rooms sit on odd coordinates of a (2*width+1) x (2*height+1) art, so every room
// is reachable from (1, 1).
func GenerateMaze(rd *rand.Rand, name string, width, height int) (*GridMap, error) {
	if width < 1 || height < 1 {
		return nil, util.NewErrorf(util.ErrBadParamInput, "gridmap: maze size must be positive, got %dx%d", width, height)
	}

	cols, rows := 2*width+1, 2*height+1
	art := make([][]byte, rows)
	for y := range art {
		art[y] = []byte(strings.Repeat(string(BLOCKED), cols))
	}

	visited := make([]bool, width*height)
	dirs := [4]da.Coordinate2D{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

	stack := []da.Coordinate2D{{}}
	visited[0] = true
	art[1][1] = WALKABLE
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		carved := false
		for _, i := range rd.Perm(len(dirs)) {
			next := cur.Add(dirs[i])
			if next.X < 0 || next.Y < 0 || next.X >= width || next.Y >= height || visited[next.Y*width+next.X] {
				continue
			}
			visited[next.Y*width+next.X] = true
			// the wall between the two rooms, then the room itself
			art[cur.Y+next.Y+1][cur.X+next.X+1] = WALKABLE
			art[2*next.Y+1][2*next.X+1] = WALKABLE
			stack = append(stack, next)
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}

	m := &GridMap{Name: name, Dimensions: 2, Rows: make([]string, rows)}
	for y := range art {
		m.Rows[y] = string(art[y])
	}
	return m, m.Compile()
}

// GenerateObstacles blocks each cell of a width x height (x depth layers when depth > 0) grid
// with probability density. the origin and the far corner are always walkable.
func GenerateObstacles(rd *rand.Rand, name string, width, height, depth int, density float64) (*GridMap, error) {
	if width < 1 || height < 1 || depth < 0 {
		return nil, util.NewErrorf(util.ErrBadParamInput, "gridmap: obstacle grid size must be positive, got %dx%dx%d",
			width, height, depth)
	}
	if density < 0 || density > 1 {
		return nil, util.NewErrorf(util.ErrBadParamInput, "gridmap: density must be in [0, 1], got %v", density)
	}

	layer := func(z, layers int) []string {
		rows := make([]string, height)
		for y := range rows {
			var sb strings.Builder
			for x := 0; x < width; x++ {
				origin := x == 0 && y == 0 && z == 0
				corner := x == width-1 && y == height-1 && z == layers-1
				if !origin && !corner && rd.Float64() < density {
					sb.WriteByte(BLOCKED)
				} else {
					sb.WriteByte(WALKABLE)
				}
			}
			rows[y] = sb.String()
		}
		return rows
	}

	m := &GridMap{Name: name}
	if depth == 0 {
		m.Dimensions = 2
		m.Rows = layer(0, 1)
	} else {
		m.Dimensions = 3
		m.Layers = make([][]string, depth)
		for z := range m.Layers {
			m.Layers[z] = layer(z, depth)
		}
	}
	return m, m.Compile()
}
