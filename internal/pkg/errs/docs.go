// Package errs provides the standardized error types used across the
// fulfillment service.
//
// Errors fall into families mirroring how callers react to them:
//
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures, rejected before any state is touched
//   - ObjectNotFoundError: a referenced product, order or driver does not exist
//   - ConflictError: the operation is well-formed but violates an invariant of
//     the current state (insufficient stock, busy driver, illegal transition)
//
// Each family follows the same pattern: a sentinel error variable for
// errors.Is classification, a struct carrying detail fields, constructors
// with and without a cause, and Unwrap support. Handlers map the families
// onto HTTP status codes at the adapter boundary; nothing in the core is
// retried automatically.
package errs
