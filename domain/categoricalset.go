package domain

import "strings"

// CategoricalSet is a domain over string labels. Labels are stored as
// given: duplicates kept, order preserved. Membership is the only supported
// query; strings carry no ordering in this model, so CategoricalSet does
// not satisfy Bounded and bound queries through the abstraction fail with
// ErrBoundUndefined.
type CategoricalSet struct {
	categories []string
}

// NewCategoricalSet returns a categorical domain over the given labels.
// With no arguments it returns an empty domain that contains nothing.
func NewCategoricalSet(categories ...string) CategoricalSet {
	stored := make([]string, len(categories))
	copy(stored, categories)
	return CategoricalSet{categories: stored}
}

// Kind identifies the variant.
func (d CategoricalSet) Kind() Kind {
	return KindCategoricalSet
}

// Contains reports whether v appears among the stored labels.
func (d CategoricalSet) Contains(v string) bool {
	for _, c := range d.categories {
		if c == v {
			return true
		}
	}
	return false
}

// Categories returns a copy of the stored labels, duplicates and order
// intact.
func (d CategoricalSet) Categories() []string {
	out := make([]string, len(d.categories))
	copy(out, d.categories)
	return out
}

func (d CategoricalSet) String() string {
	return "{" + strings.Join(d.categories, ",") + "}"
}
