package pathfinding

import "github.com/lintang-b-s/gridnav/pkg"

// Options are the per-call tuning knobs of a search.
type Options struct {
	MaxLoops       int
	HeuristicScale float64
	MaxRestarts    int
	BeamWidth      int
}

// Option modifies Options.
type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		MaxLoops:       pkg.DEFAULT_MAX_LOOPS,
		HeuristicScale: pkg.DEFAULT_HEURISTIC_SCALE,
		MaxRestarts:    pkg.DEFAULT_MAX_RESTARTS,
		BeamWidth:      pkg.DEFAULT_BEAM_WIDTH,
	}
}

// WithMaxLoops bounds the number of frontier pops of one search run.
func WithMaxLoops(maxLoops int) Option {
	return func(o *Options) { o.MaxLoops = maxLoops }
}

// WithHeuristicScale inflates the A* heuristic. values above 1 trade optimality for speed.
func WithHeuristicScale(scale float64) Option {
	return func(o *Options) { o.HeuristicScale = scale }
}

// WithMaxRestarts bounds how often Dijkstra and A* restart toward a substitute goal.
func WithMaxRestarts(maxRestarts int) Option {
	return func(o *Options) { o.MaxRestarts = maxRestarts }
}

func WithBeamWidth(width int) Option {
	return func(o *Options) { o.BeamWidth = width }
}

// WithOptions replaces every knob at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

func ApplyOptions(base Options, opts ...Option) Options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}
