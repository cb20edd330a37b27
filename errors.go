package viz

import "errors"

// Error values shared across the viz subpackages. Pure generators and
// scales fail loudly with one of these at construction or call time;
// probe operations (invert, median, brush end) instead return a
// (value, ok) pair.
var (
	// ErrInvalidDomain indicates a non-finite domain, a log-scale
	// domain containing zero or straddling sign, or an empty discrete
	// domain.
	ErrInvalidDomain = errors.New("viz: invalid domain")

	// ErrInvalidRange indicates non-finite range endpoints, or
	// non-positive endpoints in a log context.
	ErrInvalidRange = errors.New("viz: invalid range")

	// ErrDimensionMismatch indicates input arrays of incompatible
	// lengths.
	ErrDimensionMismatch = errors.New("viz: dimension mismatch")

	// ErrInvalidConnection indicates a workflow connection that would
	// self-loop, duplicate an existing connection, or create a cycle.
	ErrInvalidConnection = errors.New("viz: invalid connection")

	// ErrEmpty indicates a reduction over empty input.
	ErrEmpty = errors.New("viz: empty input")
)
