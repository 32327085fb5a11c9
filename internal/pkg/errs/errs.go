package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
var (
	// ErrValueIsRequired indicates a required value is missing or blank.
	ErrValueIsRequired = errors.New("value is required")
	// ErrValueIsTooLong indicates a string value exceeds its maximum length.
	ErrValueIsTooLong = errors.New("value is too long")
	// ErrValueIsOutOfRange indicates a value lies outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsInvalid indicates a value that is not acceptable for a field,
	// such as an unrecognized status name.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrInvalidDateOrder indicates two dates violate their required ordering.
	ErrInvalidDateOrder = errors.New("invalid date order")
	// ErrObjectAlreadyExists indicates a duplicate unique key among visible rows.
	ErrObjectAlreadyExists = errors.New("object already exists")
	// ErrObjectIsDeleted indicates an operation on a soft-deleted object.
	ErrObjectIsDeleted = errors.New("object is deleted")
	// ErrObjectNotFound indicates a referenced object does not exist.
	ErrObjectNotFound = errors.New("object not found")
	// ErrPersistence indicates a store-level failure.
	ErrPersistence = errors.New("persistence failure")
)

// IsDomainValidation reports whether err is a domain validation failure:
// bad input or an illegal state transition that the caller can fix.
// Not-found and persistence errors are excluded.
func IsDomainValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsTooLong) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrInvalidDateOrder) ||
		errors.Is(err, ErrObjectAlreadyExists) ||
		errors.Is(err, ErrObjectIsDeleted)
}

// sanitize strips newlines from values before they are embedded in messages.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError reports a missing or blank required value.
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
		return fmt.Sprintf("%s cannot be empty (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s cannot be empty", e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsTooLongError reports a string exceeding its maximum length.
// The message names the field, the limit and the provided length.
type ValueIsTooLongError struct {
	ParamName string
	Limit     int
	Length    int
}

func NewValueIsTooLongError(paramName string, limit, length int) *ValueIsTooLongError {
	return &ValueIsTooLongError{ParamName: paramName, Limit: limit, Length: length}
}

func (e *ValueIsTooLongError) Error() string {
	return fmt.Sprintf("%s cannot exceed %d characters. Provided: %d", e.ParamName, e.Limit, e.Length)
}

func (e *ValueIsTooLongError) Unwrap() error {
	return ErrValueIsTooLong
}

// ValueIsOutOfRangeError reports a value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s must be between %s and %s. Provided: %s",
		e.ParamName, sanitize(e.Min), sanitize(e.Max), sanitize(e.Value))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsInvalidError reports a value that is not acceptable for a field.
type ValueIsInvalidError struct {
	Message string
	Cause   error
}

func NewValueIsInvalidError(message string) *ValueIsInvalidError {
	return &ValueIsInvalidError{Message: message}
}

func NewValueIsInvalidErrorWithCause(message string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{Message: message, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// InvalidDateOrderError reports two dates violating their required ordering,
// e.g. an expiry date on or before the matching issue date.
type InvalidDateOrderError struct {
	ParamName string
	Message   string
}

func NewInvalidDateOrderError(paramName, message string) *InvalidDateOrderError {
	return &InvalidDateOrderError{ParamName: paramName, Message: message}
}

func (e *InvalidDateOrderError) Error() string {
	return fmt.Sprintf("%s %s", e.ParamName, e.Message)
}

func (e *InvalidDateOrderError) Unwrap() error {
	return ErrInvalidDateOrder
}

// ObjectAlreadyExistsError reports a duplicate unique key among non-deleted rows.
type ObjectAlreadyExistsError struct {
	ParamName string
	Value     string
	Cause     error
}

func NewObjectAlreadyExistsError(paramName, value string) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value}
}

func NewObjectAlreadyExistsErrorWithCause(paramName, value string, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("a %s with %s already exists (cause: %s)", e.ParamName, sanitize(e.Value), e.Cause)
	}
	return fmt.Sprintf("a %s with %s already exists", e.ParamName, sanitize(e.Value))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ObjectIsDeletedError reports an operation against a soft-deleted object.
// Action distinguishes "is already deleted" from "cannot update a deleted X".
type ObjectIsDeletedError struct {
	ParamName string
	ID        string
	Action    string
}

// NewObjectAlreadyDeletedError is used by delete operations hitting an
// already-deleted row.
func NewObjectAlreadyDeletedError(paramName, id string) *ObjectIsDeletedError {
	return &ObjectIsDeletedError{ParamName: paramName, ID: id}
}

// NewCannotModifyDeletedObjectError is used by mutating operations other
// than delete; action names the rejected operation ("update", "restore"...).
func NewCannotModifyDeletedObjectError(action, paramName, id string) *ObjectIsDeletedError {
	return &ObjectIsDeletedError{ParamName: paramName, ID: id, Action: action}
}

func (e *ObjectIsDeletedError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("cannot %s a deleted %s: %s", e.Action, e.ParamName, e.ID)
	}
	return fmt.Sprintf("%s is already deleted: %s", e.ParamName, e.ID)
}

func (e *ObjectIsDeletedError) Unwrap() error {
	return ErrObjectIsDeleted
}

// ObjectNotFoundError reports a lookup that matched no visible row.
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
		return fmt.Sprintf("%s not found: %s (cause: %s)", e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s not found: %s", e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// PersistenceError reports a store-level failure: constraint violation,
// connectivity loss, or a failed commit.
type PersistenceError struct {
	Op    string
	Cause error
}

func NewPersistenceError(op string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Cause: cause}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("persistence failure during %s: %s", e.Op, e.Cause)
	}
	return fmt.Sprintf("persistence failure during %s", e.Op)
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistence
}
