package param

import "errors"

var (
	// ErrOutOfDomain reports an assignment of a value the parameter's
	// domain does not contain.
	ErrOutOfDomain = errors.New("value out of domain")

	// ErrDuplicateName reports an attempt to register two parameters under
	// the same name in one Set.
	ErrDuplicateName = errors.New("duplicate parameter name")

	// ErrUnknownName reports a lookup for a name the Set does not hold.
	ErrUnknownName = errors.New("unknown parameter name")

	// ErrWrongType reports a typed lookup whose element type does not match
	// the registered parameter.
	ErrWrongType = errors.New("parameter has a different element type")
)
