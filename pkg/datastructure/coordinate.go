package datastructure

import "fmt"

// Coordinate is the constraint every search is written against. Implementations must be
// plain value types so == and map hashing compare components.
type Coordinate[C any] interface {
	comparable
	Add(o C) C
	Sub(o C) C
	Axis(i int) int
	Dims() int
	String() string
}

type Coordinate2D struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func NewCoordinate2D(x, y int) Coordinate2D {
	return Coordinate2D{X: x, Y: y}
}

func (c Coordinate2D) Add(o Coordinate2D) Coordinate2D {
	return Coordinate2D{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coordinate2D) Sub(o Coordinate2D) Coordinate2D {
	return Coordinate2D{X: c.X - o.X, Y: c.Y - o.Y}
}

func (c Coordinate2D) Axis(i int) int {
	switch i {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return 0
	}
}

func (c Coordinate2D) Dims() int {
	return 2
}

func (c Coordinate2D) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

type Coordinate3D struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

func NewCoordinate3D(x, y, z int) Coordinate3D {
	return Coordinate3D{X: x, Y: y, Z: z}
}

func (c Coordinate3D) Add(o Coordinate3D) Coordinate3D {
	return Coordinate3D{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

func (c Coordinate3D) Sub(o Coordinate3D) Coordinate3D {
	return Coordinate3D{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

func (c Coordinate3D) Axis(i int) int {
	switch i {
	case 0:
		return c.X
	case 1:
		return c.Y
	case 2:
		return c.Z
	default:
		return 0
	}
}

func (c Coordinate3D) Dims() int {
	return 3
}

func (c Coordinate3D) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// XY drops the z axis.
func (c Coordinate3D) XY() Coordinate2D {
	return Coordinate2D{X: c.X, Y: c.Y}
}
