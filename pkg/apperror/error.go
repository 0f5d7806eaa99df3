package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

// InvalidState marks a transition that is illegal for the entity's current
// status. Maps to 400; ownership violations stay 403.
func InvalidState(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// NotModified signals a no-op outcome: the request was valid but nothing
// needed to change. Carried through the error flow for convenience, but it is
// not a failure.
func NotModified(message string) *AppError {
	return New(http.StatusNotModified, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// IsNoOp reports whether err is the NotModified outcome.
func IsNoOp(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == http.StatusNotModified
}
