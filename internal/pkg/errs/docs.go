// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for generic validation scenarios
// (ValueIsRequiredError, ValueIsInvalidError, ObjectNotFoundError) as well as
// domain-specific rejections surfaced to API callers:
//   - ForbiddenError: role or ownership violation
//   - InvalidTransitionError: lifecycle status precondition unmet
//   - DuplicateBidError, VehicleMismatchError, ShipmentNotBiddableError:
//     bid-submission eligibility failures
//   - StorageError, GatewayError: external collaborator failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// The HTTP adapter relies on the sentinel classification to map each kind
// to a status code; no error is silently swallowed except notification
// dispatch failures, which are logged by the command handlers.
package errs
