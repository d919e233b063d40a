package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	NotFound        Kind = "not_found"
	DataUnavailable Kind = "data_unavailable"
	InvalidInput    Kind = "invalid_input"
)

// Error carries a Kind alongside the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func NotFoundf(op, format string, args ...any) *Error {
	return New(NotFound, op, fmt.Errorf(format, args...))
}

func Invalidf(op, format string, args ...any) *Error {
	return New(InvalidInput, op, fmt.Errorf(format, args...))
}

func Unavailable(op string, err error) *Error {
	return New(DataUnavailable, op, err)
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool { return err != nil && KindOf(err) == kind }

func HTTPStatus(kind Kind) int {
	switch kind {
	case NotFound:
		return http.StatusNotFound
	case InvalidInput:
		return http.StatusBadRequest
	case DataUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
