package topk

import "errors"

var (
	// ErrNegativeCapacity is returned when a selector is constructed with k < 0.
	ErrNegativeCapacity = errors.New("capacity must not be negative")

	// ErrNilScorer is returned when a selector is constructed without a scoring function.
	ErrNilScorer = errors.New("scorer must not be nil")

	// ErrNilPolicy is returned when a selector is constructed without an ordering policy.
	ErrNilPolicy = errors.New("policy must not be nil")
)
