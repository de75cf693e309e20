package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmailJS(url string) *EmailJS {
	return NewEmailJS(EmailJSConfig{
		Endpoint:   url,
		ServiceID:  "service_test",
		TemplateID: "template_test",
		PublicKey:  "public_test",
	})
}

func TestEmailJS_SendRequestShape(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	err := newTestEmailJS(srv.URL).Send(context.Background(), sampleMessage())
	require.NoError(t, err)

	assert.Equal(t, "service_test", got.ServiceID)
	assert.Equal(t, "template_test", got.TemplateID)
	assert.Equal(t, "public_test", got.UserID)
	assert.Equal(t, map[string]string{
		"user_name":  "Grace Hopper",
		"user_email": "grace@example.com",
		"subject":    "Compiler work",
		"message":    "Would love to chat about your projects.",
	}, got.TemplateParams)
}

func TestEmailJS_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The Public Key is invalid\n"))
	}))
	defer srv.Close()

	err := newTestEmailJS(srv.URL).Send(context.Background(), sampleMessage())
	require.Error(t, err)

	var de *DeliveryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, http.StatusBadRequest, de.StatusCode)
	assert.Equal(t, "The Public Key is invalid", de.Message)
	assert.Contains(t, err.Error(), "HTTP 400")
}

func TestEmailJS_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestEmailJS(url).Send(context.Background(), sampleMessage())
	require.Error(t, err)

	var de *DeliveryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 0, de.StatusCode)
	assert.Equal(t, "HTTP request failed", de.Message)
	assert.NotNil(t, de.Unwrap())
}

func TestEmailJS_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := newTestEmailJS(srv.URL).Send(ctx, sampleMessage())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEmailJS_DefaultEndpoint(t *testing.T) {
	e := NewEmailJS(EmailJSConfig{ServiceID: "s", TemplateID: "t", PublicKey: "k"})
	assert.Equal(t, DefaultEmailJSEndpoint, e.endpoint)
	assert.NotNil(t, e.client)
}

func TestSubmit_ThroughEmailJS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	s := NewSubmitter(newTestEmailJS(srv.URL), notifier, nil)
	form := NewForm(sampleMessage())

	result := s.Submit(context.Background(), form)
	assert.True(t, result.OK())
	assert.True(t, form.Values().IsEmpty())
	assert.Equal(t, []string{SuccessNotification}, notifier.messages)
}
