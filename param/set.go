package param

import "fmt"

// Entry is the name-addressable view of a parameter inside a Set. Every
// *Parameter[T] is an Entry.
type Entry interface {
	Name() string
}

// Set is an insertion-ordered collection of uniquely named parameters.
// Parameters of different element types live side by side; typed access
// goes through Value.
type Set struct {
	order   []Entry
	entries map[string]Entry
}

// NewSet returns a set holding the given entries in order. It fails with
// ErrDuplicateName on a repeated name.
func NewSet(entries ...Entry) (*Set, error) {
	s := &Set{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if err := s.Add(e); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends e. It fails with ErrDuplicateName when the name is taken.
func (s *Set) Add(e Entry) error {
	if _, ok := s.entries[e.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, e.Name())
	}
	s.entries[e.Name()] = e
	s.order = append(s.order, e)
	return nil
}

// Get returns the entry registered under name. It fails with ErrUnknownName
// when absent.
func (s *Set) Get(name string) (Entry, error) {
	e, ok := s.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return e, nil
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.order)
}

// Names returns the entry names in insertion order.
func (s *Set) Names() []string {
	names := make([]string, len(s.order))
	for i, e := range s.order {
		names[i] = e.Name()
	}
	return names
}

// Value returns the current value of the parameter registered under name.
// It fails with ErrUnknownName when the name is absent and with ErrWrongType
// when the registered parameter holds a different element type.
func Value[T any](s *Set, name string) (T, error) {
	var zero T
	e, err := s.Get(name)
	if err != nil {
		return zero, err
	}
	p, ok := e.(*Parameter[T])
	if !ok {
		return zero, fmt.Errorf("%w: %q holds a %T", ErrWrongType, name, e)
	}
	return p.Value(), nil
}
