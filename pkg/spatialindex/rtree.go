package spatialindex

import (
	da "github.com/lintang-b-s/gridnav/pkg/datastructure"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rect is an inclusive block of cells [Min.X, Max.X] x [Min.Y, Max.Y].
type Rect struct {
	Min da.Coordinate2D `json:"min" yaml:"min"`
	Max da.Coordinate2D `json:"max" yaml:"max"`
}

func NewRect(x0, y0, x1, y1 int) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{Min: da.NewCoordinate2D(x0, y0), Max: da.NewCoordinate2D(x1, y1)}
}

func (r Rect) Area() int {
	return (r.Max.X - r.Min.X + 1) * (r.Max.Y - r.Min.Y + 1)
}

func (r Rect) bounds() ([2]float64, [2]float64) {
	return [2]float64{float64(r.Min.X), float64(r.Min.Y)}, [2]float64{float64(r.Max.X), float64(r.Max.Y)}
}

// RectIndex is an Occupancy over blocked rectangles. a cell is contained when any rectangle covers it.
type RectIndex struct {
	tr *rtree.RTreeG[Rect]
}

func NewRectIndex() *RectIndex {
	var tr rtree.RTreeG[Rect]
	return &RectIndex{
		tr: &tr,
	}
}

func (ri *RectIndex) Insert(r Rect) {
	min, max := r.bounds()
	ri.tr.Insert(min, max, r)
}

// Build inserts every rect.
func (ri *RectIndex) Build(rects []Rect, log *zap.Logger) {
	cells := 0
	for _, r := range rects {
		ri.Insert(r)
		cells += r.Area()
	}
	if log != nil {
		log.Debug("rectangle index built", zap.Int("rects", len(rects)), zap.Int("cells", cells))
	}
}

func (ri *RectIndex) Len() int {
	return ri.tr.Len()
}

func (ri *RectIndex) Contains(c da.Coordinate2D) bool {
	p := [2]float64{float64(c.X), float64(c.Y)}
	found := false
	ri.tr.Search(p, p, func(min, max [2]float64, data Rect) bool {
		found = true
		return false
	})
	return found
}

// SearchRect returns the rectangles overlapping r, at most limit of them when limit > 0.
func (ri *RectIndex) SearchRect(r Rect, limit int) []Rect {
	min, max := r.bounds()
	results := make([]Rect, 0, 8)
	ri.tr.Search(min, max,
		func(min, max [2]float64, data Rect) bool {
			results = append(results, data)
			if limit > 0 && len(results) >= limit {
				return false
			}
			return true
		})
	return results
}

// Union is an Occupancy containing a cell when any member does.
type Union[C comparable] []da.Occupancy[C]

func (u Union[C]) Contains(c C) bool {
	for _, occ := range u {
		if occ != nil && occ.Contains(c) {
			return true
		}
	}
	return false
}
