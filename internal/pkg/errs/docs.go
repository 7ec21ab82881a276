// Package errs provides standardized error types for the quickdish application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error classes the order core distinguishes:
//   - ObjectNotFoundError: a referenced restaurant, menu, option, or order does not exist
//   - ValueIsInvalidError: a structural or business-rule violation, with a reason
//   - ValueIsRequiredError: a required value is missing
//   - UnauthorizedError: the actor does not own the order or restaurant
//   - InconsistentStateError: a persistence invariant is broken (a bug, not user error)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter maps these classes onto status codes with errors.Is
// against the sentinels, so all application code reports failures through
// this package.
package errs
