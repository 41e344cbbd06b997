// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the error kinds the service exposes:
//   - ValueIsRequiredError: a required value is missing or empty
//   - ValueIsInvalidError: a value failed validation
//   - ObjectNotFoundError: a requested object does not exist
//   - ObjectConcurrentlyModifiedError: a conditional write lost a concurrent race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the kind
//
// Boundary layers (HTTP, jobs) map error kinds to responses structurally via
// errors.Is/errors.As rather than by message matching.
package errs
