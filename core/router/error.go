package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/storefront/core/handler"
)

var (
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrMethodNotAllowed = statusError{error: errors.New("method not allowed"), status: http.StatusMethodNotAllowed}
	ErrNotFound         = statusError{error: errors.New("not found"), status: http.StatusNotFound}
	ErrNilResponse      = errors.New("nil response")
	ErrInvalidMethod    = errors.New("invalid http method")
	ErrInvalidPattern   = errors.New("invalid route path pattern")
	ErrNilSubrouter     = errors.New("nil subrouter")
)

type statusError struct {
	error
	status int
}

func (e statusError) StatusCode() int { return e.status }

type statusCode interface {
	StatusCode() int
}

func defaultErrorHandler[C handler.Context](ctx C, err error) {
	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}
	http.Error(ctx.ResponseWriter(), err.Error(), status)
}

// PanicError is passed to the error handler when a handler panics.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string { return fmt.Sprintf("panic: %v", e.value) }
func (e *panicError) Value() any    { return e.value }
func (e *panicError) Stack() []byte { return e.stack }

func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
