package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// ErrWrongPassword reports a delete password mismatch.
// Handlers answer it with a plain "incorrect password" body, not with a status code.
var ErrWrongPassword = errors.New("incorrect password")

func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func BadRequest(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// IsNotFound reports whether any error in err's chain is a 404 ErrorWithStatusCode.
func IsNotFound(err error) bool {
	var e *ErrorWithStatusCode
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}
