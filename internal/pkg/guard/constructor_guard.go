// Package guard implements the constructor-guard pattern used by value objects
// and commands across the application. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable: only objects built through their
// designated constructor pass Validate.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard is
// validated with a nil error, so validation always fails with a meaningful
// message even if the caller did not supply one.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// The internal flag can only be set through NewConstructorGuard, which domain
// constructors call after their own validation succeeds.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value guard
// it returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
