// Package errs provides standardized error types for the transport
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels split into three groups that the HTTP adapter maps to
// status codes: domain validation failures (bad input or an illegal state
// transition, always user-fixable), not-found lookups, and persistence
// failures (constraint violations, connectivity). IsDomainValidation
// reports membership in the first group.
package errs
