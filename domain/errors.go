package domain

import "errors"

var (
	// ErrInvalidRange reports a construction attempt where the lower bound
	// exceeds the upper bound.
	ErrInvalidRange = errors.New("invalid range: lower bound exceeds upper bound")

	// ErrBoundUndefined reports a bound query on a domain whose element type
	// has no ordering.
	ErrBoundUndefined = errors.New("bound undefined")

	// ErrEmptyDomain reports a set domain constructed with no values.
	ErrEmptyDomain = errors.New("empty domain")
)
