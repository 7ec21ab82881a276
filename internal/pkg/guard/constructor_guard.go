// Package guard provides the constructor guard pattern used by commands,
// queries, and value objects to enforce creation through factory functions.
//
// A ConstructorGuard is embedded (by value) in a struct; only the designated
// constructor sets it via NewConstructorGuard. A zero-value struct fails
// Validate, which lets handlers detect objects that bypassed validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing object was created through
// a designated constructor. The zero value is "not constructed".
//
// Example usage:
//
//	type CreateOrderCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(orderID kernel.UUID) (CreateOrderCommand, error) {
//	    // ...validation...
//	    return CreateOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor,
// otherwise the supplied validation error (or ErrDefaultConstructorGuard
// when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
