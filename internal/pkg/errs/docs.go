// Package errs provides standardized error types for the servicedesk application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the failure taxonomy of the order lifecycle:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced object does not exist
//   - ActorIsForbiddenError: the acting identity lacks authorization
//   - ConflictError: a precondition was taken by a concurrent winner
//   - InvalidTransitionError: a lifecycle transition outside the legal table
//   - InvalidStateError: an action requiring a state the object is not in
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// This standardized approach improves error reporting, keeps error handling
// consistent, and lets the HTTP adapter classify failures into status codes
// without string matching.
package errs
