package longestpath

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by the longest-path computation.
var (
	// ErrEmptyGraph indicates a graph with no nodes; there is no maximum to take.
	ErrEmptyGraph = errors.New("longestpath: empty input")

	// ErrIncompleteOrder indicates an order whose length differs from the node count.
	ErrIncompleteOrder = errors.New("longestpath: order length does not match node count")

	// ErrBadOrder indicates an order entry outside [0, N) or listed twice.
	ErrBadOrder = errors.New("longestpath: invalid order entry")

	// ErrOrderViolation indicates an edge u→v with v placed before u in the order.
	ErrOrderViolation = errors.New("longestpath: order is not topological")

	// ErrDistanceOverflow indicates a path length outside the int64 range.
	ErrDistanceOverflow = errors.New("longestpath: distance overflows int64")
)

// Distance is the longest known path length ending at one node.
// A zero Distance (Reached == false) means the node has not been reached yet.
type Distance struct {
	Value   int64
	Reached bool
}

// String renders a reached distance as its value and an unreached one as "-inf".
func (d Distance) String() string {
	if !d.Reached {
		return "-inf"
	}

	return strconv.FormatInt(d.Value, 10)
}

// less reports whether d is strictly shorter than a reached value v.
func (d Distance) less(v int64) bool {
	return !d.Reached || d.Value < v
}

// Options configures logging and hooks for the computation.
type Options struct {
	// Logger, if non-nil, receives Debug events for each stage.
	Logger *log.Logger

	// OnRelax, if non-nil, is called whenever dist[to] improves to dist.
	OnRelax func(from, to int, dist int64)
}

// Option represents a functional option for configuring the computation.
type Option func(*Options)

// DefaultOptions returns Options with no logger and no hooks.
func DefaultOptions() Options {
	return Options{Logger: nil, OnRelax: nil}
}

// buildOptions applies opts on top of DefaultOptions.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger sets the logger used for Debug events. A nil logger disables logging.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnRelax installs fn as the relaxation hook.
func WithOnRelax(fn func(from, to int, dist int64)) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// debug logs msg with keyvals when a logger is configured.
func (o Options) debug(msg string, keyvals ...interface{}) {
	if o.Logger != nil {
		o.Logger.Debug(msg, keyvals...)
	}
}
