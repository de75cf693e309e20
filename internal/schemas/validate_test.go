package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "tags"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"tags": {"type": "array", "items": {"type": "string"}}
	}
}`

func TestValidateBytes_Valid(t *testing.T) {
	err := ValidateBytes("test", []byte(testSchema), []byte(`{"name": "site", "tags": ["go"]}`))
	assert.NoError(t, err)
}

func TestValidateBytes_MissingField(t *testing.T) {
	err := ValidateBytes("test", []byte(testSchema), []byte(`{"name": "site"}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Error(), "tags")
}

func TestValidateBytes_WrongType(t *testing.T) {
	err := ValidateBytes("test", []byte(testSchema), []byte(`{"name": "site", "tags": [1]}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "tags.0", validationErr.Errors[0].Field)
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes("test", []byte(testSchema), []byte(`{ invalid json }`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "test", loadErr.Path)
}
