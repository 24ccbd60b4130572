package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies service failures for the caller.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidCredential
	KindInvalidToken
	KindExpiredToken
	KindValidation
	KindConflict
	KindDelivery
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidCredential:
		return "invalid_credential"
	case KindInvalidToken:
		return "invalid_token"
	case KindExpiredToken:
		return "expired_token"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindDelivery:
		return "delivery"
	default:
		return "internal"
	}
}

// Status is the HTTP status a failure of this kind is rendered with.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidCredential:
		return http.StatusUnauthorized
	case KindInvalidToken, KindExpiredToken, KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindDelivery:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AppError carries a stable, user-safe message. Err holds the cause for
// logging and is never rendered.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string, cause error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: cause}
}

func notFound(message string) error {
	return newError(KindNotFound, message, nil)
}

func validationFailed(message string) error {
	return newError(KindValidation, message, nil)
}

func internal(message string, cause error) error {
	return newError(KindInternal, message, cause)
}

// KindOf reports the kind of err, KindInternal for untyped errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err is an AppError of kind k.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
