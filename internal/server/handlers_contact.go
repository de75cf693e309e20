package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/renz/portfolio/internal/contact"
	"github.com/renz/portfolio/internal/sections"
	"github.com/renz/portfolio/internal/types"
	"go.uber.org/zap"
)

const maxContactBody = 64 << 10

// contactRequest is the JSON body accepted by POST /contact.
type contactRequest struct {
	types.ContactMessage
	FormToken string `json:"form_token"`
}

// handleContact forwards a contact form submission to the delivery service.
// Every outcome produces exactly one notification in the response.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	asJSON := wantsJSON(r)

	msg, token, err := decodeContactRequest(w, r)
	if err != nil {
		s.contactRejected(w, r, asJSON, msg, err)
		return
	}

	if _, err := s.tokens.Validate(token); err != nil {
		s.contactRejected(w, r, asJSON, msg, err)
		return
	}

	// Presence only, as the browser's required attribute checks it.
	if err := msg.Validate(); err != nil {
		s.contactRejected(w, r, asJSON, msg, extractValidationError(err))
		return
	}

	form := contact.NewForm(msg)
	var notification string
	result := s.submitter.SubmitTo(r.Context(), form, contact.NotifierFunc(func(m string) {
		notification = m
	}))

	resp := types.ContactResponse{
		Result:       result.Outcome.String(),
		Notification: notification,
		SubmissionID: result.ID.String(),
		Form:         form.Values(),
	}

	status := http.StatusOK
	if !result.OK() {
		status = HTTPStatus(result.Reason)
	}

	if asJSON {
		s.jsonResponse(w, status, resp)
		return
	}
	s.renderPage(w, r, status, sections.Contact, resp.Form, &notice{Message: notification, OK: result.OK()})
}

// contactRejected reports a submission refused before delivery was attempted.
// The visitor sees the same generic failure notification as a delivery failure.
func (s *Server) contactRejected(w http.ResponseWriter, r *http.Request, asJSON bool, msg types.ContactMessage, err error) {
	status := HTTPStatus(err)
	s.logger.Info("contact submission rejected", zap.Int("status", status), zap.Error(err))

	if asJSON {
		s.jsonResponse(w, status, types.ContactResponse{
			Result:       contact.Failed.String(),
			Notification: contact.FailureNotification,
			Form:         msg,
			Error:        err.Error(),
		})
		return
	}
	s.renderPage(w, r, status, sections.Contact, msg, &notice{Message: contact.FailureNotification})
}

// decodeContactRequest reads a JSON or form-encoded submission and its form token.
func decodeContactRequest(w http.ResponseWriter, r *http.Request) (types.ContactMessage, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	var msg types.ContactMessage
	var token string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return msg, "", &ErrBadRequest{Cause: err}
		}
		msg, token = req.ContactMessage, req.FormToken
	} else {
		if err := r.ParseForm(); err != nil {
			return msg, "", &ErrBadRequest{Cause: err}
		}
		msg = types.ContactMessageFromFields(r.PostFormValue)
		token = r.PostFormValue(formTokenField)
	}

	if token == "" {
		token = r.Header.Get(formTokenHeader)
	}
	return msg, token, nil
}

// extractValidationError converts the first validator failure into an ErrValidation.
func extractValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return &ErrValidation{Field: "request", Message: err.Error()}
	}

	fe := validationErrors[0]
	return &ErrValidation{
		Field:   strings.ToLower(fe.Field()),
		Message: fmt.Sprintf("failed on %s", fe.Tag()),
	}
}
