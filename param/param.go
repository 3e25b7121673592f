// Package param ties named scalar parameters to the domains of their
// admissible values. A parameter's domain is fixed at construction; its
// value may be reassigned as long as it stays inside the domain.
package param

import (
	"fmt"

	"github.com/MonssafToukal/solverparams/domain"
)

// Parameter is a named scalar variable constrained by a domain.
type Parameter[T any] struct {
	name   string
	domain domain.Domain[T]
	value  T
}

// New returns a parameter holding the given initial value. It fails with
// ErrOutOfDomain when the value is not admissible.
func New[T any](name string, dom domain.Domain[T], value T) (*Parameter[T], error) {
	if !dom.Contains(value) {
		return nil, fmt.Errorf("%w: %v is outside the %s domain of parameter %q", ErrOutOfDomain, value, dom.Kind(), name)
	}
	return &Parameter[T]{name: name, domain: dom, value: value}, nil
}

// Name returns the parameter name.
func (p *Parameter[T]) Name() string {
	return p.name
}

// Value returns the current value.
func (p *Parameter[T]) Value() T {
	return p.value
}

// Domain returns the admissible set of values.
func (p *Parameter[T]) Domain() domain.Domain[T] {
	return p.domain
}

// SetValue assigns v after checking membership. On failure the stored value
// is left unchanged.
func (p *Parameter[T]) SetValue(v T) error {
	if !p.domain.Contains(v) {
		return fmt.Errorf("%w: %v is outside the %s domain of parameter %q", ErrOutOfDomain, v, p.domain.Kind(), p.name)
	}
	p.value = v
	return nil
}

// Bounds reports the domain's bounds. It fails with domain.ErrBoundUndefined
// for domains without ordering, such as categorical parameters.
func (p *Parameter[T]) Bounds() (lower, upper T, err error) {
	lower, err = domain.LowerBound(p.domain)
	if err != nil {
		return lower, upper, err
	}
	upper, err = domain.UpperBound(p.domain)
	return lower, upper, err
}

func (p *Parameter[T]) String() string {
	return fmt.Sprintf("%s=%v", p.name, p.value)
}
