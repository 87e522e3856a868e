package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindAlreadyEnrolled Kind = "already_enrolled"
	KindUnauthorized    Kind = "unauthorized"
	KindInvalid         Kind = "invalid"
	KindInternal        Kind = "internal"
)

// Error carries a failure kind plus the transport status it maps to. Message
// is safe to show to the caller; Err is for logs only.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Kind: kindForStatus(status), Status: status, Code: code, Err: err}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Code: code, Message: message}
}

func AlreadyEnrolled() *Error {
	return &Error{Kind: KindAlreadyEnrolled, Status: http.StatusBadRequest, Code: "already_enrolled", Message: "Already enrolled"}
}

func Unauthorized(code, message string) *Error {
	return &Error{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Code: code, Message: message}
}

func Internal(code string, err error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Code: code, Err: err}
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if e, ok := As(err); ok && e.Kind != "" {
		return e.Kind
	}
	return KindInternal
}

// StatusOf maps err to an HTTP status; untyped errors are 500.
func StatusOf(err error) int {
	if e, ok := As(err); ok && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// PublicMessage never leaks internal error text: 5xx always reads
// "Server Error".
func PublicMessage(err error) string {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		return "Server Error"
	}
	if e, ok := As(err); ok && e.Message != "" {
		return e.Message
	}
	return http.StatusText(status)
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	case http.StatusBadRequest:
		return KindInvalid
	default:
		if status >= 500 {
			return KindInternal
		}
		return KindInvalid
	}
}
