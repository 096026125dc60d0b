package srvcerror

import (
	"errors"
	"net/http"
)

type Error struct {
	errorCode  string
	msgToUser  string // public
	dbgInfoErr error  // private, for debugging

	httpStatus int  // optional, for HTTP responses
	transient  bool // safe to retry (write conflict, upstream hiccup)
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.errorCode
}

func (e *Error) DebugInfo() error {
	return e.dbgInfoErr
}

func (e *Error) SetDebug(err error) *Error {
	e.dbgInfoErr = err
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.httpStatus = code
	return e
}

// SetTransient marks the error as retryable. Policy errors such as an
// exhausted quota stay non-transient: retrying them cannot help.
func (e *Error) SetTransient() *Error {
	e.transient = true
	return e
}

func (e *Error) IsTransient() bool {
	return e.transient
}

// IsTransient reports whether err wraps a retryable service error.
// Callers use it to decide between giving up and retrying with backoff.
func IsTransient(err error) bool {
	srvcErr := &Error{}
	if errors.As(err, &srvcErr) {
		return srvcErr.IsTransient()
	}
	return false
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{
		errorCode: errorCode,
		msgToUser: msgToUser,
	}
}

const ErrCodeInternalServerError = "internal_server_error"

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
