package trellis

import "errors"

// Data-level failures are returned as wrapped sentinel errors. Structural
// tree misuse (re-parenting without detaching, removing a non-child,
// out-of-range child indices) is a programmer error and panics with a
// descriptive message instead.
var (
	// ErrNotFound reports a lookup of a value that must exist but doesn't,
	// such as selecting a list value absent from the list.
	ErrNotFound = errors.New("trellis: not found")

	// ErrInvalidValue reports a caller-supplied value outside the accepted
	// domain, such as selecting an out-of-range list index.
	ErrInvalidValue = errors.New("trellis: invalid value")
)
