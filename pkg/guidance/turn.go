package guidance

import (
	"math"

	"github.com/lintang-b-s/gridnav/pkg/util"
)

const (
	U_TURN_LEFT       = -8
	DESCEND           = -5
	TURN_SHARP_LEFT   = -3
	TURN_LEFT         = -2
	TURN_SLIGHT_LEFT  = -1
	CONTINUE          = 0
	TURN_SLIGHT_RIGHT = 1
	TURN_RIGHT        = 2
	TURN_SHARP_RIGHT  = 3
	FINISH            = 4
	CLIMB             = 5
	U_TURN_RIGHT      = 8
	START             = 101
)

// bearing of a horizontal step in degrees clockwise from north, where north is -y
// (row 0 of a map is its top row).
func bearing(dx, dy int) float64 {
	b := util.RadiansToDegree(math.Atan2(float64(dx), float64(-dy)))
	if b < 0 {
		b += 360
	}
	return b
}

// deltaBearing returns next - prev in (-180, 180]. positive is a clockwise (right) turn.
func deltaBearing(prev, next float64) float64 {
	d := next - prev
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

func getTurnDirection(delta float64) int {
	absDelta := math.Abs(delta)
	switch {
	case absDelta < 12:
		return CONTINUE
	case absDelta < 50:
		if delta < 0 {
			return TURN_SLIGHT_LEFT
		}
		return TURN_SLIGHT_RIGHT
	case absDelta < 100:
		if delta < 0 {
			return TURN_LEFT
		}
		return TURN_RIGHT
	case absDelta < 170:
		if delta < 0 {
			return TURN_SHARP_LEFT
		}
		return TURN_SHARP_RIGHT
	case delta < 0:
		return U_TURN_LEFT
	default:
		return U_TURN_RIGHT
	}
}

func getDirectionDescription(sign int) string {
	switch sign {
	case START:
		return "Depart"
	case FINISH:
		return "Arrive at destination"
	case CONTINUE:
		return "Continue"
	case CLIMB:
		return "Go up"
	case DESCEND:
		return "Go down"
	case U_TURN_LEFT:
		return "Make U-turn left"
	case U_TURN_RIGHT:
		return "Make U-turn right"
	case TURN_SHARP_LEFT:
		return "Turn sharp left"
	case TURN_LEFT:
		return "Turn left"
	case TURN_SLIGHT_LEFT:
		return "Turn slight left"
	case TURN_SLIGHT_RIGHT:
		return "Turn slight right"
	case TURN_RIGHT:
		return "Turn right"
	case TURN_SHARP_RIGHT:
		return "Turn sharp right"
	default:
		return ""
	}
}

var compassPoints = [8]string{"north", "north-east", "east", "south-east", "south", "south-west", "west", "north-west"}

// heading names a step, e.g. "south-east" or "north up".
func heading(dx, dy, dz int) string {
	name := ""
	if dx != 0 || dy != 0 {
		name = compassPoints[int(math.Round(bearing(dx, dy)/45))%len(compassPoints)]
	}
	vertical := ""
	switch {
	case dz > 0:
		vertical = "up"
	case dz < 0:
		vertical = "down"
	}
	switch {
	case name == "":
		return vertical
	case vertical == "":
		return name
	default:
		return name + " " + vertical
	}
}
