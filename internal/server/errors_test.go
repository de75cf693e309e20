package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/renz/portfolio/internal/contact"
	"github.com/renz/portfolio/internal/sections"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", &ErrValidation{Field: "name", Message: "failed on required"}, http.StatusBadRequest},
		{"bad request", &ErrBadRequest{Cause: errors.New("EOF")}, http.StatusBadRequest},
		{"unknown section", &sections.UnknownSectionError{ID: "blog"}, http.StatusBadRequest},
		{"contact validation", &contact.ValidationError{Cause: errors.New("missing")}, http.StatusBadRequest},
		{"form token", &ErrInvalidFormToken{}, http.StatusForbidden},
		{"delivery", &contact.DeliveryError{StatusCode: 400, Message: "rejected"}, http.StatusBadGateway},
		{"wrapped delivery", fmt.Errorf("send: %w", &contact.DeliveryError{Message: "HTTP request failed"}), http.StatusBadGateway},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "validation error: email - failed on required",
		(&ErrValidation{Field: "email", Message: "failed on required"}).Error())
	assert.Equal(t, "invalid form token", (&ErrInvalidFormToken{}).Error())
	assert.Equal(t, "invalid form token: token is missing",
		(&ErrInvalidFormToken{Cause: errors.New("token is missing")}).Error())
}
