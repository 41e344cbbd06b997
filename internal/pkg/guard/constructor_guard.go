// Package guard provides a defensive construction check for value objects,
// entities, commands and queries. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable: only objects built through their
// designated constructor carry a constructed guard and pass validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error, so a failed check always yields a meaningful error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the enclosing object was built through its
// constructor. The zero value is "not constructed" and fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it in every constructor:
//
//	func NewStatusToken(raw string) (StatusToken, error) {
//	    ...
//	    return StatusToken{value: raw, guard: guard.NewConstructorGuard()}, nil
//	}
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
