package http

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a handler error with a client-facing status and message. Err is
// the internal cause: it shows up in logs and errors.Is/As, never in
// responses.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%d %s", e.Status, e.PublicMessage())
	}
	return fmt.Sprintf("%d %s: %v", e.Status, e.PublicMessage(), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PublicMessage is the text safe to send to clients.
func (e *Error) PublicMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

func New(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

func NewBadRequest(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

func NewNotFound(message string, err error) *Error {
	return New(http.StatusNotFound, message, err)
}

func NewMethodNotAllowed(message string, err error) *Error {
	return New(http.StatusMethodNotAllowed, message, err)
}

func NewRequestTooLarge(message string, err error) *Error {
	return New(http.StatusRequestEntityTooLarge, message, err)
}

// StatusCode returns the status of the first *Error in err's chain, or 500.
func StatusCode(err error) int {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return http.StatusInternalServerError
}
