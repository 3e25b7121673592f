// Package domain describes admissible value sets for scalar variables.
//
// A Domain answers exactly two questions: whether a value belongs to it,
// and, for variants whose element type carries a total order, what its
// bounds are. Five concrete variants are provided: RealInterval,
// IntegerRange, IntegerSet, BinaryRange and CategoricalSet. All of them
// are immutable value types: constructed once, validated up front, and
// safe to query concurrently without coordination.
package domain

import "fmt"

// Integer is the set of integral types admitted by the discrete domains.
// The ~ prefix allows named types based on these underlying types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Ordered is the set of numeric types with a total order.
type Ordered interface {
	Integer | ~float32 | ~float64
}

// Domain is the capability shared by every variant: a membership test over
// a fixed element type.
type Domain[T any] interface {
	// Contains reports whether v is an admissible value of the domain.
	Contains(v T) bool
	// Kind identifies the concrete variant.
	Kind() Kind
}

// Bounded is a Domain whose elements carry a total order, so the domain can
// report the smallest and largest stored bound. Categorical domains have no
// ordering and do not satisfy it.
type Bounded[T any] interface {
	Domain[T]

	// LowerBound returns the stored lower bound. For interval variants the
	// bound value is reported verbatim regardless of openness.
	LowerBound() T
	// UpperBound returns the stored upper bound, same convention.
	UpperBound() T
}

// LowerBound answers a lower-bound query against the abstraction. It fails
// with ErrBoundUndefined when d does not order its elements.
func LowerBound[T any](d Domain[T]) (T, error) {
	if b, ok := d.(Bounded[T]); ok {
		return b.LowerBound(), nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s domain has no lower bound", ErrBoundUndefined, d.Kind())
}

// UpperBound answers an upper-bound query against the abstraction. It fails
// with ErrBoundUndefined when d does not order its elements.
func UpperBound[T any](d Domain[T]) (T, error) {
	if b, ok := d.(Bounded[T]); ok {
		return b.UpperBound(), nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s domain has no upper bound", ErrBoundUndefined, d.Kind())
}

var (
	_ Bounded[float64] = RealInterval[float64]{}
	_ Bounded[int]     = IntegerRange[int]{}
	_ Bounded[int]     = IntegerSet[int]{}
	_ Bounded[bool]    = BinaryRange{}
	_ Domain[string]   = CategoricalSet{}
)
