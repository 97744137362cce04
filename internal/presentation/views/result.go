package views

import "repo-directory/internal/domain/repo"

// State is the lifecycle of one request as seen by a view
type State int

const (
	StatePending State = iota
	StateError
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateError:
		return "error"
	case StateSuccess:
		return "success"
	}
	return "unknown"
}

// Result carries the outcome of a request into a template. Templates branch on
// exactly one of IsPending, IsError and IsSuccess.
type Result[T any] struct {
	state State
	value T
	err   error
}

func Pending[T any]() Result[T] {
	return Result[T]{state: StatePending}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{state: StateError, err: err}
}

func Success[T any](value T) Result[T] {
	return Result[T]{state: StateSuccess, value: value}
}

// From builds an Error result when err is set and a Success result otherwise
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

func (r Result[T]) State() State { return r.state }
func (r Result[T]) IsPending() bool { return r.state == StatePending }
func (r Result[T]) IsError() bool { return r.state == StateError }
func (r Result[T]) IsSuccess() bool { return r.state == StateSuccess }
func (r Result[T]) Value() T { return r.value }
func (r Result[T]) Err() error { return r.err }

// ErrorMessage is the user facing description of the failure
func (r Result[T]) ErrorMessage() string {
	if r.err == nil {
		return ""
	}
	return repo.Message(r.err)
}
