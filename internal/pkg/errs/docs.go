// Package errs provides standardized error types for the order-management service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value lies outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - AccessForbiddenError: For when a role check denies an operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting and
// enables error classification in one place: the HTTP adapter maps these
// types onto response status codes without inspecting message text.
package errs
