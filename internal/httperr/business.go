package httperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindInvalidInput    Kind = "invalid_input"
	KindUnauthorized    Kind = "unauthorized"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindTooManyRequests Kind = "too_many_requests"
	KindInternal        Kind = "internal"
)

// BusinessError is a failure the caller can act on. Two business errors
// are the same error when their codes match.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func (e BusinessError) Is(target error) bool {
	t, ok := target.(BusinessError)
	return ok && t.Code == e.Code
}

func New(kind Kind, code, message string) BusinessError {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) && be.Kind != "" {
		return be.Kind
	}
	return KindInternal
}

func StatusOf(kind Kind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// --------------------------------------------------
// Shared errors
// --------------------------------------------------

var (
	ErrUnauthorized = New(KindUnauthorized, "unauthorized", "authentication is required")
	ErrForbidden    = New(KindForbidden, "forbidden", "you are not allowed to access this resource")
	ErrRateLimited  = New(KindTooManyRequests, "too_many_requests", "too many requests, try again later")
)

func InvalidInput(message string) error {
	return New(KindInvalidInput, "invalid_request", message)
}
