package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each typed error below
// unwraps to exactly one of these.
var (
	ErrValueIsRequired      = errors.New("value is required")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrObjectNotFound       = errors.New("object not found")
	ErrForbidden            = errors.New("operation forbidden")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidState         = errors.New("invalid state for operation")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrDuplicateKey         = errors.New("duplicate key")
	ErrStorageUnavailable   = errors.New("storage unavailable")
)

// sanitize strips newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ValueIsRequiredError indicates a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value lies outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value any, min any, max any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: min, Max: max}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value any, min any, max any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: min, Max: max, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, sanitize(e.ParamName), e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ForbiddenError indicates the acting principal is not allowed to perform the
// operation. Detected before any mutation takes place.
type ForbiddenError struct {
	Reason string
	Cause  error
}

func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

func NewForbiddenErrorWithCause(reason string, cause error) *ForbiddenError {
	return &ForbiddenError{Reason: reason, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrForbidden, sanitize(e.Reason), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrForbidden, sanitize(e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidTransitionError indicates a booking status change to a status that is
// not the single legal successor of the current one. Allowed carries the legal
// successor, empty for terminal statuses.
type InvalidTransitionError struct {
	Current   string
	Requested string
	Allowed   string
}

func NewInvalidTransitionError(current string, requested string, allowed string) *InvalidTransitionError {
	return &InvalidTransitionError{Current: current, Requested: requested, Allowed: allowed}
}

func (e *InvalidTransitionError) Error() string {
	if e.Allowed == "" {
		return fmt.Sprintf("%s: cannot move from %s to %s, no further transition is allowed",
			ErrInvalidTransition, e.Current, e.Requested)
	}
	return fmt.Sprintf("%s: cannot move from %s to %s, allowed next status is %s",
		ErrInvalidTransition, e.Current, e.Requested, e.Allowed)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidStateError indicates an operation was attempted while its subject is
// in a status the operation does not accept.
type InvalidStateError struct {
	Operation string
	Current   string
	Required  string
}

func NewInvalidStateError(operation string, current string, required string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Current: current, Required: required}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s requires status %s, current status is %s",
		ErrInvalidState, sanitize(e.Operation), e.Required, e.Current)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InsufficientCapacityError indicates a reservation asked for more weight than
// the vehicle has remaining.
type InsufficientCapacityError struct {
	Available float64
	Required  float64
}

func NewInsufficientCapacityError(available float64, required float64) *InsufficientCapacityError {
	return &InsufficientCapacityError{Available: available, Required: required}
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("%s: required %v, available %v", ErrInsufficientCapacity, e.Required, e.Available)
}

func (e *InsufficientCapacityError) Unwrap() error {
	return ErrInsufficientCapacity
}

// DuplicateKeyError indicates a uniqueness constraint violation, for example a
// taken username or vehicle number.
type DuplicateKeyError struct {
	ParamName string
	Cause     error
}

func NewDuplicateKeyError(paramName string) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName}
}

func NewDuplicateKeyErrorWithCause(paramName string, cause error) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName, Cause: cause}
}

func (e *DuplicateKeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrDuplicateKey, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateKey, sanitize(e.ParamName))
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// StorageUnavailableError indicates a transient persistence failure. It is the
// only retryable error class.
type StorageUnavailableError struct {
	Operation string
	Cause     error
}

func NewStorageUnavailableError(operation string, cause error) *StorageUnavailableError {
	return &StorageUnavailableError{Operation: operation, Cause: cause}
}

func (e *StorageUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStorageUnavailable, sanitize(e.Operation), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStorageUnavailable, sanitize(e.Operation))
}

func (e *StorageUnavailableError) Unwrap() error {
	return ErrStorageUnavailable
}
