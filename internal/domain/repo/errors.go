package repo

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeRepositoryNotFound    = "REPOSITORY_NOT_FOUND"
	CodeInvalidRepositoryData = "INVALID_REPOSITORY_DATA"
	CodeFetchFailed           = "FETCH_FAILED"
	CodeUpstreamUnavailable   = "UPSTREAM_UNAVAILABLE"
)

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Predefined domain errors

func ErrRepositoryNotFound(name string) *DomainError {
	return &DomainError{
		Code:    CodeRepositoryNotFound,
		Message: fmt.Sprintf("repository %s not found", name),
	}
}

func ErrInvalidRepositoryData(field string, err error) *DomainError {
	return &DomainError{
		Code:    CodeInvalidRepositoryData,
		Message: fmt.Sprintf("invalid %s", field),
		Err:     err,
	}
}

// ErrFetchFailed is returned when the upstream answered with a non-success
// status. The message never carries the status code.
func ErrFetchFailed(resource string, err error) *DomainError {
	return &DomainError{
		Code:    CodeFetchFailed,
		Message: fmt.Sprintf("Failed to fetch %s", resource),
		Err:     err,
	}
}

// ErrUpstreamUnavailable is returned when the request itself failed
func ErrUpstreamUnavailable(err error) *DomainError {
	return &DomainError{
		Code:    CodeUpstreamUnavailable,
		Message: err.Error(),
		Err:     err,
	}
}

// Message returns the text shown to users for err
func Message(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// HasCode reports whether err is a DomainError carrying code
func HasCode(err error, code string) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}
