package domain

import "fmt"

// BinaryRange is the degenerate two-valued domain over bool, ordered
// false < true.
type BinaryRange struct {
	lower bool
	upper bool
}

// NewBinaryRange returns the canonical binary domain (false, true), which
// accepts both values.
func NewBinaryRange() BinaryRange {
	return BinaryRange{lower: false, upper: true}
}

// NewBinaryRangeOf returns a binary domain with the given bounds. No
// ordering is enforced; non-canonical bounds narrow or empty membership
// accordingly.
func NewBinaryRangeOf(lower, upper bool) BinaryRange {
	return BinaryRange{lower: lower, upper: upper}
}

// Kind identifies the variant.
func (d BinaryRange) Kind() Kind {
	return KindBinaryRange
}

// Contains reports lower <= v <= upper under false < true.
func (d BinaryRange) Contains(v bool) bool {
	return boolOrd(d.lower) <= boolOrd(v) && boolOrd(v) <= boolOrd(d.upper)
}

// LowerBound returns the stored lower bound.
func (d BinaryRange) LowerBound() bool {
	return d.lower
}

// UpperBound returns the stored upper bound.
func (d BinaryRange) UpperBound() bool {
	return d.upper
}

func (d BinaryRange) String() string {
	return fmt.Sprintf("[%t,%t]", d.lower, d.upper)
}

func boolOrd(b bool) int {
	if b {
		return 1
	}
	return 0
}
