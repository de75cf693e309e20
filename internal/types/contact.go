// Package types provides type definitions for structured data used throughout the portfolio site.
package types

import "github.com/go-playground/validator/v10"

// Contact form input names. EmailJS templates reference the same names,
// so they are sent as template parameters unchanged.
const (
	FieldName    = "user_name"
	FieldEmail   = "user_email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// ContactMessage represents a contact form submission.
// JSON keys match the form input names.
type ContactMessage struct {
	Name    string `json:"user_name" validate:"required"`
	Email   string `json:"user_email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactMessageFromFields builds a message by looking up each input name with get,
// e.g. url.Values.Get.
func ContactMessageFromFields(get func(string) string) ContactMessage {
	return ContactMessage{
		Name:    get(FieldName),
		Email:   get(FieldEmail),
		Subject: get(FieldSubject),
		Message: get(FieldMessage),
	}
}

// Fields returns the message keyed by input name.
func (m ContactMessage) Fields() map[string]string {
	return map[string]string{
		FieldName:    m.Name,
		FieldEmail:   m.Email,
		FieldSubject: m.Subject,
		FieldMessage: m.Message,
	}
}

// Validate checks that every field is present.
func (m *ContactMessage) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// IsEmpty reports whether every field is blank.
func (m ContactMessage) IsEmpty() bool {
	return m == ContactMessage{}
}

// ContactResponse is returned by the contact endpoint.
type ContactResponse struct {
	Result       string         `json:"result"`
	Notification string         `json:"notification"`
	SubmissionID string         `json:"submission_id"`
	Form         ContactMessage `json:"form"`
	Error        string         `json:"error,omitempty"`
}
