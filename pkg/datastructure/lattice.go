package datastructure

// Step is one unit move on a lattice. Diagonal is true when more than one axis changes.
type Step[C Coordinate[C]] struct {
	Delta    C
	Diagonal bool
}

// Lattice generates the neighbor offsets of a grid dimensionality.
type Lattice[C Coordinate[C]] interface {
	// Steps returns the permitted unit moves, x varying fastest and the last axis slowest.
	Steps(allowOrthogonal, allowDiagonal bool) []Step[C]
}

type lattice[C Coordinate[C]] struct {
	orthogonal []Step[C]
	diagonal   []Step[C]
	all        []Step[C]
}

func (l *lattice[C]) Steps(allowOrthogonal, allowDiagonal bool) []Step[C] {
	switch {
	case allowOrthogonal && allowDiagonal:
		return l.all
	case allowOrthogonal:
		return l.orthogonal
	case allowDiagonal:
		return l.diagonal
	default:
		return nil
	}
}

func newLattice[C Coordinate[C]](steps []Step[C]) *lattice[C] {
	l := &lattice[C]{all: steps}
	for _, s := range steps {
		if s.Diagonal {
			l.diagonal = append(l.diagonal, s)
		} else {
			l.orthogonal = append(l.orthogonal, s)
		}
	}
	return l
}

// NewLattice2D returns the 8-neighborhood of {-1,0,1}² without the origin.
func NewLattice2D() Lattice[Coordinate2D] {
	steps := make([]Step[Coordinate2D], 0, 8)
	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			steps = append(steps, Step[Coordinate2D]{
				Delta:    NewCoordinate2D(x, y),
				Diagonal: x != 0 && y != 0,
			})
		}
	}
	return newLattice(steps)
}

// NewLattice3D returns the 26-neighborhood of {-1,0,1}³ without the origin.
func NewLattice3D() Lattice[Coordinate3D] {
	steps := make([]Step[Coordinate3D], 0, 26)
	for z := -1; z <= 1; z++ {
		for y := -1; y <= 1; y++ {
			for x := -1; x <= 1; x++ {
				nonZero := 0
				for _, v := range [3]int{x, y, z} {
					if v != 0 {
						nonZero++
					}
				}
				if nonZero == 0 {
					continue
				}
				steps = append(steps, Step[Coordinate3D]{
					Delta:    NewCoordinate3D(x, y, z),
					Diagonal: nonZero > 1,
				})
			}
		}
	}
	return newLattice(steps)
}
