//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind -transform=kebab
package domain

// Kind identifies a concrete domain variant.
type Kind int

const (
	KindRealInterval Kind = iota
	KindIntegerRange
	KindIntegerSet
	KindBinaryRange
	KindCategoricalSet
)
