package constants

import "net/http"

// CodedError несёт HTTP-код вместе с сообщением.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound = NewCodedError(http.StatusNotFound, "not found")
	ErrNotFound   = NewCodedError(http.StatusNotFound, "dataset not found")

	ErrUnauthorized      = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrWrongPassword     = NewCodedError(http.StatusUnauthorized, "wrong password")
	ErrEmailAlreadyTaken = NewCodedError(http.StatusConflict, "username already taken")

	ErrNoFileProvided = NewCodedError(http.StatusBadRequest, "no file provided")
	ErrNotCSV         = NewCodedError(http.StatusBadRequest, "file must be a CSV")
)
