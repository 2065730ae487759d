package pkg

const (
	// priority penalty for neighbors that do not follow the dominant axis toward the goal
	TIEBREAK_PENALTY = 0.0001
	// keeps the A* heuristic term alive when the default weight is zero
	HEURISTIC_WEIGHT_EPSILON = 0.0001

	DEFAULT_MAX_LOOPS       = 300
	DEFAULT_HEURISTIC_SCALE = 1.1
	DEFAULT_MAX_RESTARTS    = 8
	DEFAULT_BEAM_WIDTH      = 3
	DEFAULT_WEIGHT          = 1.0
)

const (
	DEBUG = false
)
