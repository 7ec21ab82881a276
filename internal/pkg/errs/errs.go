package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel for lookups of restaurants, menus,
	// options, or orders that do not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid is the sentinel for structural and business-rule
	// violations (bad quantity, wrong menu-restaurant pairing, missing
	// required customization, illegal status transition).
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsRequired is the sentinel for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrUnauthorized is the sentinel for actors that do not own the
	// order or restaurant they are operating on.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInconsistentState is the sentinel for broken persistence
	// invariants, such as an order status without its satellite record.
	// It represents a bug, not a caller error.
	ErrInconsistentState = errors.New("inconsistent state")
)

// sanitize strips newlines from error detail so messages stay single-line
// in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError reports that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given
// parameter name and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a structural or business-rule violation.
// ParamName carries the human-readable reason naming the offending
// entity or rule; Cause carries the detail.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given reason.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given
// parameter name.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// UnauthorizedError reports that the acting user does not own the
// resource referenced by the operation. Existence is not hidden: a
// missing resource is ObjectNotFoundError, never UnauthorizedError.
type UnauthorizedError struct {
	ParamName string
	Cause     error
}

// NewUnauthorizedError creates an UnauthorizedError for the given reason.
func NewUnauthorizedError(paramName string) *UnauthorizedError {
	return &UnauthorizedError{ParamName: paramName}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an
// underlying cause.
func NewUnauthorizedErrorWithCause(paramName string, cause error) *UnauthorizedError {
	return &UnauthorizedError{ParamName: paramName, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUnauthorized, e.ParamName))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InconsistentStateError reports that persisted data violates an
// invariant the state machine guarantees, e.g. an order marked CANCELLED
// without a cancelled_orders record. Callers should log it as fatal and
// surface a generic failure without internal detail.
type InconsistentStateError struct {
	ParamName string
	Cause     error
}

// NewInconsistentStateError creates an InconsistentStateError for the
// given description.
func NewInconsistentStateError(paramName string) *InconsistentStateError {
	return &InconsistentStateError{ParamName: paramName}
}

// NewInconsistentStateErrorWithCause creates an InconsistentStateError
// wrapping an underlying cause.
func NewInconsistentStateErrorWithCause(paramName string, cause error) *InconsistentStateError {
	return &InconsistentStateError{ParamName: paramName, Cause: cause}
}

func (e *InconsistentStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInconsistentState, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInconsistentState, e.ParamName))
}

func (e *InconsistentStateError) Unwrap() error {
	return ErrInconsistentState
}
