package domain

import "fmt"

// IntegerRange is a discrete contiguous domain over an integral type. Both
// bounds are closed; there is no open-bound concept for discrete ranges.
type IntegerRange[T Integer] struct {
	lower T
	upper T
}

// NewIntegerRange returns the range [lower, upper].
// It fails with ErrInvalidRange when lower > upper.
func NewIntegerRange[T Integer](lower, upper T) (IntegerRange[T], error) {
	if lower > upper {
		return IntegerRange[T]{}, fmt.Errorf("%w: lower %v, upper %v", ErrInvalidRange, lower, upper)
	}
	return IntegerRange[T]{lower: lower, upper: upper}, nil
}

// Kind identifies the variant.
func (d IntegerRange[T]) Kind() Kind {
	return KindIntegerRange
}

// Contains reports lower <= v <= upper.
func (d IntegerRange[T]) Contains(v T) bool {
	return v >= d.lower && v <= d.upper
}

// LowerBound returns the stored lower bound.
func (d IntegerRange[T]) LowerBound() T {
	return d.lower
}

// UpperBound returns the stored upper bound.
func (d IntegerRange[T]) UpperBound() T {
	return d.upper
}

func (d IntegerRange[T]) String() string {
	return fmt.Sprintf("[%v,%v]", d.lower, d.upper)
}
