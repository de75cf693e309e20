package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/renz/portfolio/internal/types"
	"go.uber.org/zap"
)

// Delivery is the external collaborator that actually sends the email.
type Delivery interface {
	Send(ctx context.Context, msg types.ContactMessage) error
}

// Notifier shows a transient notification to the visitor.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// Form holds the contact form field values between submissions.
type Form struct {
	values types.ContactMessage
}

// NewForm returns a form populated with msg.
func NewForm(msg types.ContactMessage) *Form {
	return &Form{values: msg}
}

// Values returns the current field values.
func (f *Form) Values() types.ContactMessage {
	return f.values
}

// Reset clears every field.
func (f *Form) Reset() {
	f.values = types.ContactMessage{}
}

// Submitter forwards form contents to a Delivery and reports the outcome.
// There is no retry and no guard against concurrent submissions.
type Submitter struct {
	delivery Delivery
	notifier Notifier
	logger   *zap.Logger
}

// NewSubmitter creates a Submitter. A nil logger disables logging.
func NewSubmitter(delivery Delivery, notifier Notifier, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{
		delivery: delivery,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit sends the form's current values. On success the form is cleared and a
// success notification is emitted; on failure the form is left untouched and a
// generic failure notification is emitted. Exactly one notification is emitted
// per call.
func (s *Submitter) Submit(ctx context.Context, form *Form) Result {
	return s.SubmitTo(ctx, form, s.notifier)
}

// SubmitTo is Submit with a per-call notifier, used when notifications are
// scoped to a single request.
func (s *Submitter) SubmitTo(ctx context.Context, form *Form, notifier Notifier) Result {
	id := uuid.New()
	logger := s.logger.With(zap.String("submission_id", id.String()))
	msg := form.Values()

	var result Result
	if err := msg.Validate(); err != nil {
		result = failed(id, &ValidationError{Cause: err})
	} else if err := s.delivery.Send(ctx, msg); err != nil {
		result = failed(id, err)
	} else {
		form.Reset()
		result = delivered(id)
	}

	if result.OK() {
		logger.Info("contact message delivered", zap.String("subject", msg.Subject))
	} else {
		logger.Warn("contact message failed", zap.Error(result.Reason))
	}

	if notifier != nil {
		notifier.Notify(result.Notification())
	}
	return result
}

// ValidationError wraps a failed presence check on the submitted fields.
type ValidationError struct {
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid contact message: %v", e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
