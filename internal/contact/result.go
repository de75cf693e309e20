// Package contact forwards contact form submissions to an external email-delivery service.
package contact

import (
	"github.com/google/uuid"
)

// Notifications shown to the visitor after a submission settles.
const (
	SuccessNotification = "Your message has been sent!"
	FailureNotification = "Something went wrong. Please try again later."
)

// Outcome is the variant of a submission result.
type Outcome int

const (
	Delivered Outcome = iota + 1
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the settled state of a single submission.
// Reason is set only for Failed results.
type Result struct {
	ID      uuid.UUID
	Outcome Outcome
	Reason  error
}

// OK reports whether the message was accepted for delivery.
func (r Result) OK() bool {
	return r.Outcome == Delivered
}

// Notification returns the visitor-facing message for r.
func (r Result) Notification() string {
	if r.OK() {
		return SuccessNotification
	}
	return FailureNotification
}

func delivered(id uuid.UUID) Result {
	return Result{ID: id, Outcome: Delivered}
}

func failed(id uuid.UUID, reason error) Result {
	return Result{ID: id, Outcome: Failed, Reason: reason}
}
