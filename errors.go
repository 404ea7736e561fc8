package forest

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("forest: invalid configuration")
	// ErrInvariant signals that a tree violates one of its structural invariants.
	ErrInvariant = errors.New("forest: invariant violated")
)
