package contact

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/renz/portfolio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDelivery records calls and returns a fixed error.
type fakeDelivery struct {
	mu    sync.Mutex
	err   error
	calls []types.ContactMessage
}

func (f *fakeDelivery) Send(_ context.Context, msg types.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, msg)
	return f.err
}

// recordingNotifier captures notifications in order.
type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string) {
	r.messages = append(r.messages, message)
}

func sampleMessage() types.ContactMessage {
	return types.ContactMessage{
		Name:    "Grace Hopper",
		Email:   "grace@example.com",
		Subject: "Compiler work",
		Message: "Would love to chat about your projects.",
	}
}

func TestSubmit_Success(t *testing.T) {
	delivery := &fakeDelivery{}
	notifier := &recordingNotifier{}
	s := NewSubmitter(delivery, notifier, nil)

	form := NewForm(sampleMessage())
	result := s.Submit(context.Background(), form)

	assert.True(t, result.OK())
	assert.Equal(t, Delivered, result.Outcome)
	assert.NoError(t, result.Reason)
	assert.NotEqual(t, uuid.Nil, result.ID)

	assert.True(t, form.Values().IsEmpty(), "form should be cleared")
	assert.Equal(t, []string{SuccessNotification}, notifier.messages)

	require.Len(t, delivery.calls, 1)
	assert.Equal(t, sampleMessage(), delivery.calls[0])
}

func TestSubmit_Failure(t *testing.T) {
	cause := &DeliveryError{StatusCode: 400, Message: "The Public Key is invalid"}
	delivery := &fakeDelivery{err: cause}
	notifier := &recordingNotifier{}
	s := NewSubmitter(delivery, notifier, nil)

	form := NewForm(sampleMessage())
	result := s.Submit(context.Background(), form)

	assert.False(t, result.OK())
	assert.Equal(t, Failed, result.Outcome)
	assert.ErrorIs(t, result.Reason, cause)

	assert.Equal(t, sampleMessage(), form.Values(), "form should be unchanged")
	assert.Equal(t, []string{FailureNotification}, notifier.messages)
	assert.Len(t, delivery.calls, 1)
}

func TestSubmit_NoRetry(t *testing.T) {
	delivery := &fakeDelivery{err: errors.New("connection reset")}
	s := NewSubmitter(delivery, nil, nil)

	result := s.Submit(context.Background(), NewForm(sampleMessage()))

	assert.Equal(t, Failed, result.Outcome)
	assert.Len(t, delivery.calls, 1)
}

func TestSubmit_InvalidMessageNotSent(t *testing.T) {
	delivery := &fakeDelivery{}
	notifier := &recordingNotifier{}
	s := NewSubmitter(delivery, notifier, nil)

	msg := sampleMessage()
	msg.Subject = ""
	form := NewForm(msg)
	result := s.Submit(context.Background(), form)

	assert.Equal(t, Failed, result.Outcome)
	var ve *ValidationError
	assert.ErrorAs(t, result.Reason, &ve)
	assert.Empty(t, delivery.calls)
	assert.Equal(t, msg, form.Values())
	assert.Equal(t, []string{FailureNotification}, notifier.messages)
}

func TestSubmitTo_UsesPerCallNotifier(t *testing.T) {
	shared := &recordingNotifier{}
	s := NewSubmitter(&fakeDelivery{}, shared, nil)

	var got []string
	result := s.SubmitTo(context.Background(), NewForm(sampleMessage()), NotifierFunc(func(m string) {
		got = append(got, m)
	}))

	assert.True(t, result.OK())
	assert.Equal(t, []string{SuccessNotification}, got)
	assert.Empty(t, shared.messages)
}

func TestSubmit_ConcurrentSubmissionsAllForwarded(t *testing.T) {
	delivery := &fakeDelivery{}
	s := NewSubmitter(delivery, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Submit(context.Background(), NewForm(sampleMessage()))
		}()
	}
	wg.Wait()

	assert.Len(t, delivery.calls, 5)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "delivered", Delivered.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Outcome(0).String())
}
