package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/renz/portfolio/internal/types"
)

// DefaultEmailJSEndpoint is the EmailJS REST send endpoint.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// maxErrorBody caps how much of a rejection body is kept in the error.
const maxErrorBody = 512

// EmailJSConfig identifies the EmailJS service, template, and public key.
// Values are checked by config.Load before they get here.
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	// HTTPClient defaults to a client with no timeout; the request context bounds the call.
	HTTPClient *http.Client
}

// EmailJS delivers contact messages through the EmailJS REST API.
type EmailJS struct {
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
	client     *http.Client
}

// NewEmailJS creates an EmailJS delivery.
func NewEmailJS(cfg EmailJSConfig) *EmailJS {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEmailJSEndpoint
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &EmailJS{
		endpoint:   endpoint,
		serviceID:  cfg.ServiceID,
		templateID: cfg.TemplateID,
		publicKey:  cfg.PublicKey,
		client:     client,
	}
}

// sendRequest is the JSON body EmailJS expects.
type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send forwards msg. Template parameters are the form input names.
// Any non-200 response or transport failure is an error.
func (e *EmailJS) Send(ctx context.Context, msg types.ContactMessage) error {
	payload := sendRequest{
		ServiceID:      e.serviceID,
		TemplateID:     e.templateID,
		UserID:         e.publicKey,
		TemplateParams: msg.Fields(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return &DeliveryError{Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return &DeliveryError{Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	text, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &DeliveryError{StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return &DeliveryError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(text)),
		}
	}

	return nil
}

// DeliveryError represents a rejected or failed delivery attempt.
type DeliveryError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *DeliveryError) Error() string {
	var prefix string
	if e.StatusCode != 0 {
		prefix = fmt.Sprintf("delivery error (HTTP %d)", e.StatusCode)
	} else {
		prefix = "delivery error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}
