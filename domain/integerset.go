package domain

import (
	"fmt"
	"slices"
	"strings"
)

// IntegerSet is a discrete domain over an explicit, unordered collection of
// integral values. Duplicates collapse at construction.
type IntegerSet[T Integer] struct {
	values map[T]struct{}
}

// NewIntegerSet deduplicates values into a set domain. It fails with
// ErrEmptyDomain when no value is given, so bound queries on a constructed
// set are always defined.
func NewIntegerSet[T Integer](values ...T) (IntegerSet[T], error) {
	if len(values) == 0 {
		return IntegerSet[T]{}, fmt.Errorf("%w: integer set needs at least one value", ErrEmptyDomain)
	}
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return IntegerSet[T]{values: set}, nil
}

// Kind identifies the variant.
func (d IntegerSet[T]) Kind() Kind {
	return KindIntegerSet
}

// Contains reports set membership.
func (d IntegerSet[T]) Contains(v T) bool {
	_, ok := d.values[v]
	return ok
}

// LowerBound returns the smallest element of the set.
func (d IntegerSet[T]) LowerBound() T {
	var min T
	first := true
	for v := range d.values {
		if first || v < min {
			min = v
			first = false
		}
	}
	return min
}

// UpperBound returns the largest element of the set.
func (d IntegerSet[T]) UpperBound() T {
	var max T
	first := true
	for v := range d.values {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max
}

// Len returns the number of distinct values.
func (d IntegerSet[T]) Len() int {
	return len(d.values)
}

// Values returns the distinct values in ascending order.
func (d IntegerSet[T]) Values() []T {
	out := make([]T, 0, len(d.values))
	for v := range d.values {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

func (d IntegerSet[T]) String() string {
	parts := make([]string, 0, len(d.values))
	for _, v := range d.Values() {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
