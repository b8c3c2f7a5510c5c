package fakestore

import "errors"

var (
	ErrInvalidConfig  = errors.New("fakestore: invalid config")
	ErrRequestFailed  = errors.New("fakestore: request failed")
	ErrDecodeResponse = errors.New("fakestore: failed to decode response")
	ErrInvalidLogin   = errors.New("fakestore: username or password is incorrect")
	ErrInvalidUserID  = errors.New("fakestore: user id must be a positive integer")
	ErrInvalidSort    = errors.New("fakestore: sort must be asc or desc")
	ErrNotFound       = errors.New("fakestore: resource not found")
)

// StatusError carries the status code of a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return "unexpected status " + itoa(e.StatusCode)
	}
	return "unexpected status " + itoa(e.StatusCode) + ": " + e.Body
}

func (e *StatusError) temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}
