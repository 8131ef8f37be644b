package search

import (
	"errors"

	"go.uber.org/zap"
)

// ErrInvalidInput reports a precondition violation: missing grid, start or
// end outside the grid, or start equal to end.
var ErrInvalidInput = errors.New("search: invalid input")

// Outcome is how a search ended.
type Outcome int

const (
	// NoPathExists means the frontier ran dry before the end was reached.
	NoPathExists Outcome = iota
	// PathFound means the end was dequeued and the path painted.
	PathFound
	// Cancelled means the context was done before the search finished.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case PathFound:
		return "path found"
	case NoPathExists:
		return "no path exists"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Run.
type Result struct {
	Outcome Outcome
	// Path lists cell indices from start to end inclusive; nil unless
	// Outcome is PathFound.
	Path []int
	// Cost is the number of steps on Path.
	Cost int
	// Order lists cells in the order they were expanded.
	Order []int
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Outcome == PathFound }

// Expansion describes one dequeued cell, reported to an Observer before its
// neighbours are examined.
type Expansion struct {
	Step     int // 1-based expansion counter
	Cell     int
	G        int
	F        int
	Seq      int // insertion sequence of the frontier entry
	Frontier int // frontier size after the pop
}

// StepFunc is called whenever the grid has visibly changed.
type StepFunc func()

// Observer receives every expansion.
type Observer func(Expansion)

// Options holds the optional collaborators of Run.
type Options struct {
	Logger   *zap.Logger
	Observer Observer
}

// Option modifies Options.
type Option func(*Options)

// WithLogger routes engine logs to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithObserver registers fn to receive every expansion.
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.Observer = fn }
}
