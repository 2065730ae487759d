package gridmap

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/lintang-b-s/gridnav/pkg"
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/lintang-b-s/gridnav/pkg/spatialindex"
	"github.com/lintang-b-s/gridnav/pkg/util"
	"gopkg.in/yaml.v3"
)

const (
	BLOCKED  = '#'
	WALKABLE = '.'
)

// Bounds is an inclusive box. z is ignored by 2D maps.
type Bounds struct {
	Min da.Coordinate3D `yaml:"min" json:"min"`
	Max da.Coordinate3D `yaml:"max" json:"max"`
}

func (b Bounds) contains2D(c da.Coordinate2D) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X && c.Y >= b.Min.Y && c.Y <= b.Max.Y
}

func (b Bounds) contains3D(c da.Coordinate3D) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X && c.Y >= b.Min.Y && c.Y <= b.Max.Y &&
		c.Z >= b.Min.Z && c.Z <= b.Max.Z
}

type WeightedCell struct {
	X      int     `yaml:"x" json:"x"`
	Y      int     `yaml:"y" json:"y"`
	Z      int     `yaml:"z,omitempty" json:"z,omitempty"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// GridMap is one named map document.
//
// rows[y][x] (2D) and layers[z][y][x] (3D) use '#' for blocked cells, '.' for walkable cells and
// '1'..'9' for walkable cells with that weight. when the art is present and bounds are not, the
// art's extent is the bounds. with invert_occupancy the occupied list names walkable cells.
type GridMap struct {
	Name            string              `yaml:"name" json:"name"`
	Dimensions      int                 `yaml:"dimensions" json:"dimensions"`
	Bounds          *Bounds             `yaml:"bounds,omitempty" json:"bounds,omitempty"`
	Rows            []string            `yaml:"rows,omitempty" json:"rows,omitempty"`
	Layers          [][]string          `yaml:"layers,omitempty" json:"layers,omitempty"`
	Occupied        []da.Coordinate3D   `yaml:"occupied,omitempty" json:"occupied,omitempty"`
	Weights         []WeightedCell      `yaml:"weights,omitempty" json:"weights,omitempty"`
	Walls           []spatialindex.Rect `yaml:"walls,omitempty" json:"walls,omitempty"`
	InvertOccupancy bool                `yaml:"invert_occupancy,omitempty" json:"invert_occupancy,omitempty"`
	DefaultWeight   *float64            `yaml:"default_weight,omitempty" json:"default_weight,omitempty"`
	AllowOrthogonal *bool               `yaml:"allow_orthogonal,omitempty" json:"allow_orthogonal,omitempty"`
	AllowDiagonal   *bool               `yaml:"allow_diagonal,omitempty" json:"allow_diagonal,omitempty"`

	revision uint64
	graph2D  *da.GridGraph[da.Coordinate2D]
	graph3D  *da.GridGraph[da.Coordinate3D]
}

// Revision is set by the Store. every Put of a map gets a new revision.
func (m *GridMap) Revision() uint64 {
	return m.revision
}

// Graph2D returns the compiled graph of a 2D map. callers must Clone it before changing fields.
func (m *GridMap) Graph2D() (*da.GridGraph[da.Coordinate2D], error) {
	if m.graph2D == nil {
		return nil, util.NewErrorf(util.ErrBadParamInput, "map %q has %d dimensions, not 2", m.Name, m.Dimensions)
	}
	return m.graph2D, nil
}

// Graph3D returns the compiled graph of a 3D map. callers must Clone it before changing fields.
func (m *GridMap) Graph3D() (*da.GridGraph[da.Coordinate3D], error) {
	if m.graph3D == nil {
		return nil, util.NewErrorf(util.ErrBadParamInput, "map %q has %d dimensions, not 3", m.Name, m.Dimensions)
	}
	return m.graph3D, nil
}

// decode reads a YAML map document without compiling it. unknown keys are rejected.
func decode(data []byte) (*GridMap, error) {
	m := &GridMap{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Parse decodes and compiles a YAML map document.
func Parse(data []byte) (*GridMap, error) {
	m, err := decode(data)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "gridmap: decode yaml")
	}
	if err := m.Compile(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads the map at path. a map without a name is named after its file.
func Load(path string) (*GridMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "gridmap: read %s", path)
	}
	m, err := decode(data)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "gridmap: decode %s", path)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := m.Compile(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "gridmap: compile %s", path)
	}
	return m, nil
}

// Encode writes m back as YAML.
func Encode(m *GridMap) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "gridmap: encode %q", m.Name)
	}
	if err := enc.Close(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "gridmap: encode %q", m.Name)
	}
	return buf.Bytes(), nil
}

// Save encodes m into path.
func Save(path string, m *GridMap) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "gridmap: write %s", path)
	}
	return nil
}

// Compile validates m and builds its grid graph.
func (m *GridMap) Compile() error {
	if m.Name == "" {
		return util.NewErrorf(util.ErrBadParamInput, "gridmap: name is required")
	}
	if m.Dimensions == 0 {
		m.Dimensions = 2
		if len(m.Layers) > 0 {
			m.Dimensions = 3
		}
	}

	defaultWeight := pkg.DEFAULT_WEIGHT
	if m.DefaultWeight != nil {
		defaultWeight = *m.DefaultWeight
	}
	orthogonal, diagonal := true, true
	if m.AllowOrthogonal != nil {
		orthogonal = *m.AllowOrthogonal
	}
	if m.AllowDiagonal != nil {
		diagonal = *m.AllowDiagonal
	}

	var err error
	switch m.Dimensions {
	case 2:
		m.graph2D, err = m.compile2D(orthogonal, diagonal, defaultWeight)
	case 3:
		m.graph3D, err = m.compile3D(orthogonal, diagonal, defaultWeight)
	default:
		err = util.NewErrorf(util.ErrBadParamInput, "gridmap %q: dimensions must be 2 or 3, got %d", m.Name, m.Dimensions)
	}
	return err
}

// art is the decoded rows/layers: listed cells and their weights.
type art[C comparable] struct {
	walkable da.CellSet[C]
	blocked  da.CellSet[C]
	weights  map[C]float64
}

func newArt[C comparable]() art[C] {
	return art[C]{
		walkable: da.NewCellSet[C](),
		blocked:  da.NewCellSet[C](),
		weights:  make(map[C]float64),
	}
}

func (a art[C]) cell(c C, ch rune) error {
	switch {
	case ch == BLOCKED:
		a.blocked.Add(c)
	case ch == WALKABLE:
		a.walkable.Add(c)
	case ch >= '1' && ch <= '9':
		a.walkable.Add(c)
		a.weights[c] = float64(ch - '0')
	default:
		return util.NewErrorf(util.ErrBadParamInput, "unknown cell %q at %v", ch, c)
	}
	return nil
}

func (m *GridMap) compile2D(orthogonal, diagonal bool, defaultWeight float64) (*da.GridGraph[da.Coordinate2D], error) {
	if len(m.Layers) > 0 {
		return nil, util.NewErrorf(util.ErrBadParamInput, "gridmap %q: layers need dimensions 3", m.Name)
	}

	a := newArt[da.Coordinate2D]()
	width := 0
	for y, row := range m.Rows {
		for x, ch := range []rune(row) {
			if err := a.cell(da.NewCoordinate2D(x, y), ch); err != nil {
				return nil, util.WrapErrorf(err, util.ErrBadParamInput, "gridmap %q", m.Name)
			}
			width = max(width, x+1)
		}
	}
	bounds := m.Bounds
	if bounds == nil && len(m.Rows) > 0 {
		bounds = &Bounds{Max: da.NewCoordinate3D(width-1, len(m.Rows)-1, 0)}
	}

	weights := a.weights
	for _, w := range m.Weights {
		weights[da.NewCoordinate2D(w.X, w.Y)] = w.Weight
	}

	occ := &occupancy[da.Coordinate2D]{
		blocked:  a.blocked,
		walkable: a.walkable,
		listed:   da.NewCellSet[da.Coordinate2D](),
		invert:   m.InvertOccupancy,
	}
	for _, c := range m.Occupied {
		occ.listed.Add(da.NewCoordinate2D(c.X, c.Y))
	}
	if bounds != nil {
		b := *bounds
		occ.inBounds = b.contains2D
	}
	if len(m.Walls) > 0 {
		if m.InvertOccupancy {
			return nil, util.NewErrorf(util.ErrBadParamInput, "gridmap %q: walls cannot be combined with invert_occupancy", m.Name)
		}
		walls := spatialindex.NewRectIndex()
		walls.Build(m.Walls, nil)
		occ.walls = walls
	}

	g := da.NewGridGraph(
		da.WithMovement[da.Coordinate2D](orthogonal, diagonal),
		da.WithOccupied[da.Coordinate2D](occ, false),
		da.WithWeights(weights, defaultWeight),
	)
	if err := g.Validate(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "gridmap %q", m.Name)
	}
	return g, nil
}

func (m *GridMap) compile3D(orthogonal, diagonal bool, defaultWeight float64) (*da.GridGraph[da.Coordinate3D], error) {
	if len(m.Rows) > 0 {
		return nil, util.NewErrorf(util.ErrBadParamInput, "gridmap %q: 3D maps use layers, not rows", m.Name)
	}
	if len(m.Walls) > 0 {
		return nil, util.NewErrorf(util.ErrBadParamInput, "gridmap %q: walls are 2D only", m.Name)
	}

	a := newArt[da.Coordinate3D]()
	width, depth := 0, 0
	for z, layer := range m.Layers {
		for y, row := range layer {
			for x, ch := range []rune(row) {
				if err := a.cell(da.NewCoordinate3D(x, y, z), ch); err != nil {
					return nil, util.WrapErrorf(err, util.ErrBadParamInput, "gridmap %q", m.Name)
				}
				width = max(width, x+1)
			}
			depth = max(depth, y+1)
		}
	}
	bounds := m.Bounds
	if bounds == nil && len(m.Layers) > 0 {
		bounds = &Bounds{Max: da.NewCoordinate3D(width-1, depth-1, len(m.Layers)-1)}
	}

	weights := a.weights
	for _, w := range m.Weights {
		weights[da.NewCoordinate3D(w.X, w.Y, w.Z)] = w.Weight
	}

	occ := &occupancy[da.Coordinate3D]{
		blocked:  a.blocked,
		walkable: a.walkable,
		listed:   da.NewCellSet(m.Occupied...),
		invert:   m.InvertOccupancy,
	}
	if bounds != nil {
		b := *bounds
		occ.inBounds = b.contains3D
	}

	g := da.NewGridGraph(
		da.WithMovement[da.Coordinate3D](orthogonal, diagonal),
		da.WithOccupied[da.Coordinate3D](occ, false),
		da.WithWeights(weights, defaultWeight),
	)
	if err := g.Validate(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "gridmap %q", m.Name)
	}
	return g, nil
}

// occupancy reports the blocked cells of a compiled map.
type occupancy[C comparable] struct {
	blocked  da.CellSet[C]
	walkable da.CellSet[C]
	// the occupied list: blocked cells, or walkable cells when invert is set
	listed   da.CellSet[C]
	invert   bool
	walls    da.Occupancy[C]
	inBounds func(C) bool
}

func (o *occupancy[C]) Contains(c C) bool {
	if o.inBounds != nil && !o.inBounds(c) {
		return true
	}
	if o.blocked.Contains(c) {
		return true
	}
	if o.walls != nil && o.walls.Contains(c) {
		return true
	}
	if o.invert {
		return !o.listed.Contains(c) && !o.walkable.Contains(c)
	}
	return o.listed.Contains(c)
}
