// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the codebase.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Domain-specific errors (such as the order state machine's illegal-transition
// error) live next to the domain model that raises them; this package covers
// only the cross-cutting cases.
package errs
