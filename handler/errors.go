package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSkipBinder lets a binder decline a request without failing it
	ErrSkipBinder = errors.New("binder not applicable")
)

// HTTPError carries a status code and a machine-readable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates an HTTPError with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// Predefined HTTP errors.
var (
	ErrBadRequest           = NewHTTPError(http.StatusBadRequest, "bad_request")
	ErrNotFound             = NewHTTPError(http.StatusNotFound, "not_found")
	ErrConflict             = NewHTTPError(http.StatusConflict, "conflict")
	ErrUnsupportedMediaType = NewHTTPError(http.StatusUnsupportedMediaType, "unsupported_media_type")
	ErrTooManyRequests      = NewHTTPError(http.StatusTooManyRequests, "too_many_requests")
	ErrInternalServerError  = NewHTTPError(http.StatusInternalServerError, "internal_error")
)
