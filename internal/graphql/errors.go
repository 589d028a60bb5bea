package graphql

import (
	"errors"

	"github.com/fitstore/fitstore-go/internal/crypto"
	"github.com/fitstore/fitstore-go/internal/repository"
	"github.com/fitstore/fitstore-go/internal/service"
)

// Error codes surfaced in the "code" extension of GraphQL errors.
const (
	CodeUnauthenticated       = "UNAUTHENTICATED"
	CodeForbidden             = "FORBIDDEN"
	CodeNotFound              = "NOT_FOUND"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeDuplicateEmail        = "DUPLICATE_EMAIL"
	CodePasswordMismatch      = "PASSWORD_MISMATCH"
	CodeInvalidOrExpiredToken = "INVALID_OR_EXPIRED_TOKEN"
	CodeInvalidToken          = "INVALID_TOKEN"
	CodeStoreError            = "STORE_ERROR"
	CodeMailError             = "MAIL_ERROR"
	CodeBadInput              = "BAD_USER_INPUT"
)

// apiError attaches a machine-readable code to a resolver error. The
// graphql library surfaces Extensions() in the formatted error payload.
type apiError struct {
	code string
	err  error
}

func (e *apiError) Error() string { return e.err.Error() }

func (e *apiError) Unwrap() error { return e.err }

func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// wrapErr maps service and crypto errors onto the error taxonomy.
// Unrecognized errors are reported as store failures without detail.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}

	var code string
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		code = CodeUnauthenticated
	case errors.Is(err, service.ErrForbidden):
		code = CodeForbidden
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, repository.ErrUserNotFound), errors.Is(err, repository.ErrItemNotFound):
		code = CodeNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		code = CodeInvalidCredentials
	case errors.Is(err, service.ErrDuplicateEmail):
		code = CodeDuplicateEmail
	case errors.Is(err, service.ErrPasswordMismatch):
		code = CodePasswordMismatch
	case errors.Is(err, service.ErrInvalidOrExpiredToken):
		code = CodeInvalidOrExpiredToken
	case errors.Is(err, crypto.ErrInvalidToken):
		code = CodeInvalidToken
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrPasswordRequired):
		code = CodeBadInput
	default:
		code = CodeStoreError
	}

	return &apiError{code: code, err: err}
}
