package types

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessage() ContactMessage {
	return ContactMessage{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Let's work together.",
	}
}

func TestContactMessage_Validate_Valid(t *testing.T) {
	msg := validMessage()
	assert.NoError(t, msg.Validate())
}

func TestContactMessage_Validate_RequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		field string
		clear func(*ContactMessage)
	}{
		{"missing name", "Name", func(m *ContactMessage) { m.Name = "" }},
		{"missing email", "Email", func(m *ContactMessage) { m.Email = "" }},
		{"missing subject", "Subject", func(m *ContactMessage) { m.Subject = "" }},
		{"missing message", "Message", func(m *ContactMessage) { m.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validMessage()
			tt.clear(&msg)

			err := msg.Validate()
			require.Error(t, err)

			var ve validator.ValidationErrors
			require.ErrorAs(t, err, &ve)
			require.Len(t, ve, 1)
			assert.Equal(t, tt.field, ve[0].Field())
			assert.Equal(t, "required", ve[0].Tag())
		})
	}
}

func TestContactMessage_Validate_NoFormatCheck(t *testing.T) {
	// Only presence is enforced, matching the browser's required attribute.
	msg := validMessage()
	msg.Email = "not-an-email"
	assert.NoError(t, msg.Validate())
}

func TestContactMessage_Validate_WhitespaceIsPresent(t *testing.T) {
	// A browser's required attribute accepts whitespace, so the server does too.
	msg := validMessage()
	msg.Subject = "   "
	assert.NoError(t, msg.Validate())
}

func TestContactMessage_FieldNames(t *testing.T) {
	msg := validMessage()

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	var keyed map[string]string
	require.NoError(t, json.Unmarshal(data, &keyed))

	assert.Equal(t, msg.Fields(), keyed, "JSON keys match the input names")
	assert.Equal(t, map[string]string{
		"user_name":  "Ada Lovelace",
		"user_email": "ada@example.com",
		"subject":    "Hello",
		"message":    "Let's work together.",
	}, msg.Fields())
}

func TestContactMessageFromFields(t *testing.T) {
	values := url.Values{
		"user_name":  {"Ada Lovelace"},
		"user_email": {"ada@example.com"},
		"subject":    {"Hello"},
		"message":    {"Let's work together."},
		"name":       {"ignored"},
	}
	assert.Equal(t, validMessage(), ContactMessageFromFields(values.Get))
}

func TestContactMessage_IsEmpty(t *testing.T) {
	assert.True(t, ContactMessage{}.IsEmpty())
	assert.False(t, validMessage().IsEmpty())
}

func TestSkills_Groups(t *testing.T) {
	s := Skills{
		Frontend: []string{"Go templates"},
		Tools:    []string{"Git"},
	}

	groups := s.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "Frontend", groups[0].Title)
	assert.Equal(t, "Tools & Others", groups[1].Title)
}

func TestProject_HasRepo(t *testing.T) {
	assert.False(t, Project{RepoURL: "#"}.HasRepo())
	assert.False(t, Project{}.HasRepo())
	assert.True(t, Project{RepoURL: "https://github.com/x/y"}.HasRepo())
}
