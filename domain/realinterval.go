package domain

import "fmt"

// RealInterval is a continuous domain over an ordered numeric type. Each
// bound carries its own openness flag; openness affects membership only,
// never the reported bound value.
type RealInterval[T Ordered] struct {
	lower     T
	upper     T
	lowerOpen bool
	upperOpen bool
}

// NewRealInterval returns the closed interval [lower, upper].
// It fails with ErrInvalidRange when lower > upper.
func NewRealInterval[T Ordered](lower, upper T) (RealInterval[T], error) {
	return NewRealIntervalOpenness(lower, upper, false, false)
}

// NewRealIntervalOpenness returns an interval with per-bound openness, one
// of the four combinations [], [), (], (). It fails with ErrInvalidRange
// when lower > upper.
func NewRealIntervalOpenness[T Ordered](lower, upper T, lowerOpen, upperOpen bool) (RealInterval[T], error) {
	if lower > upper {
		return RealInterval[T]{}, fmt.Errorf("%w: lower %v, upper %v", ErrInvalidRange, lower, upper)
	}
	return RealInterval[T]{
		lower:     lower,
		upper:     upper,
		lowerOpen: lowerOpen,
		upperOpen: upperOpen,
	}, nil
}

// Kind identifies the variant.
func (d RealInterval[T]) Kind() Kind {
	return KindRealInterval
}

// Contains reports whether v lies inside the interval, honoring the
// openness of each bound independently.
func (d RealInterval[T]) Contains(v T) bool {
	if d.lowerOpen {
		if v <= d.lower {
			return false
		}
	} else {
		if v < d.lower {
			return false
		}
	}
	if d.upperOpen {
		if v >= d.upper {
			return false
		}
	} else {
		if v > d.upper {
			return false
		}
	}
	return true
}

// LowerBound returns the stored lower bound, open or not.
func (d RealInterval[T]) LowerBound() T {
	return d.lower
}

// UpperBound returns the stored upper bound, open or not.
func (d RealInterval[T]) UpperBound() T {
	return d.upper
}

// String renders interval notation, e.g. "[0,1)".
func (d RealInterval[T]) String() string {
	leftB := "["
	if d.lowerOpen {
		leftB = "("
	}
	rightB := "]"
	if d.upperOpen {
		rightB = ")"
	}
	return fmt.Sprintf("%s%v,%v%s", leftB, d.lower, d.upper, rightB)
}
