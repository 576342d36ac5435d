// Package errs provides standardized error types for the farmfreight
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     construction and input validation failures
//   - ObjectNotFoundError: a requested object does not exist
//   - ForbiddenError: the acting principal may not perform the operation
//   - InvalidTransitionError / InvalidStateError: booking lifecycle violations
//   - InsufficientCapacityError: a reservation exceeds remaining vehicle capacity
//   - DuplicateKeyError: uniqueness constraint violations
//   - StorageUnavailableError: transient persistence failures (retryable)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
package errs
