package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the stable classification anchor for each error kind.
// Callers classify with errors.Is against these and never match on messages.
var (
	ErrValueIsRequired            = errors.New("value is required")
	ErrValueIsInvalid             = errors.New("value is invalid")
	ErrObjectNotFound             = errors.New("object not found")
	ErrObjectConcurrentlyModified = errors.New("object concurrently modified")
)

// sanitize flattens newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ValueIsRequiredError indicates a required value was missing or empty.
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
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation rules.
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
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a requested object does not exist.
// ID carries the identifier that was looked up.
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
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectConcurrentlyModifiedError indicates an optimistic-concurrency conflict:
// a conditional write matched the object's identity but not its expected state,
// meaning another writer got there first.
type ObjectConcurrentlyModifiedError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectConcurrentlyModifiedError(paramName string, id any) *ObjectConcurrentlyModifiedError {
	return &ObjectConcurrentlyModifiedError{ParamName: paramName, ID: id}
}

func NewObjectConcurrentlyModifiedErrorWithCause(paramName string, id any, cause error) *ObjectConcurrentlyModifiedError {
	return &ObjectConcurrentlyModifiedError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectConcurrentlyModifiedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectConcurrentlyModified, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectConcurrentlyModified, e.ID))
}

func (e *ObjectConcurrentlyModifiedError) Unwrap() error {
	return ErrObjectConcurrentlyModified
}
