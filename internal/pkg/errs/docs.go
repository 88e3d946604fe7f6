// Package errs provides the standardized error types used across the service.
//
// Each error type follows the same pattern: a sentinel error for
// classification with errors.Is, a struct carrying the error details,
// constructors with and without an underlying cause, and Error/Unwrap
// methods. Higher layers rely on these concrete types to map failures onto
// HTTP responses, so new error kinds should follow the same shape.
package errs
