package geo

import (
	"math"

	"github.com/lintang-b-s/gridnav/pkg/util"
)

// GridPoint is anything with integer axes, e.g. datastructure.Coordinate2D.
type GridPoint interface {
	Axis(i int) int
	Dims() int
}

// Estimate returns the Euclidean distance between a and b, or the Manhattan distance when manhattan is set.
func Estimate[P GridPoint](a, b P, manhattan bool) float64 {
	if manhattan {
		sum := 0
		for i := 0; i < a.Dims(); i++ {
			sum += util.Abs(b.Axis(i) - a.Axis(i))
		}
		return float64(sum)
	}

	sum := 0.0
	for i := 0; i < a.Dims(); i++ {
		d := float64(b.Axis(i) - a.Axis(i))
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Chebyshev returns max |b_i - a_i|, the number of king moves between a and b.
func Chebyshev[P GridPoint](a, b P) int {
	maxDelta := 0
	for i := 0; i < a.Dims(); i++ {
		if d := util.Abs(b.Axis(i) - a.Axis(i)); d > maxDelta {
			maxDelta = d
		}
	}
	return maxDelta
}

// DominantAxis returns the axis with the largest remaining distance from -> to.
// ties go to the lower axis.
func DominantAxis[P GridPoint](from, to P) int {
	axis, best := 0, -1
	for i := 0; i < from.Dims(); i++ {
		if d := util.Abs(to.Axis(i) - from.Axis(i)); d > best {
			axis, best = i, d
		}
	}
	return axis
}
