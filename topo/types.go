package topo

import "errors"

// ErrCycleDetected indicates the graph is not acyclic: fewer than N nodes
// could be ordered.
var ErrCycleDetected = errors.New("topo: cycle detected")

// Option configures optional behavior of Sort.
type Option func(*Options)

// Options holds the hooks consulted by Sort.
type Options struct {
	// OnVisit, if non-nil, is invoked as each node is appended to the order.
	// Returning an error aborts the sort with that error.
	OnVisit func(id int) error
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{OnVisit: nil}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
