package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/renz/portfolio/internal/contact"
	"github.com/renz/portfolio/internal/sections"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBadRequest indicates a body that could not be decoded.
type ErrBadRequest struct {
	Cause error
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("malformed request: %v", e.Cause)
}

func (e *ErrBadRequest) Unwrap() error {
	return e.Cause
}

// ErrInvalidFormToken indicates a missing, expired, or forged form token.
type ErrInvalidFormToken struct {
	Cause error
}

func (e *ErrInvalidFormToken) Error() string {
	if e.Cause == nil {
		return "invalid form token"
	}
	return fmt.Sprintf("invalid form token: %v", e.Cause)
}

func (e *ErrInvalidFormToken) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		badRequestErr *ErrBadRequest
		tokenErr      *ErrInvalidFormToken
		sectionErr    *sections.UnknownSectionError
		contactErr    *contact.ValidationError
		deliveryErr   *contact.DeliveryError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &tokenErr):
		return http.StatusForbidden
	case errors.As(err, &validationErr), errors.As(err, &badRequestErr),
		errors.As(err, &sectionErr), errors.As(err, &contactErr):
		return http.StatusBadRequest
	case errors.As(err, &deliveryErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
