package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumePayload_Valid(t *testing.T) {
	payload := `{
		"full_name": "Jane Doe",
		"email": "jane@example.com",
		"years_of_experience": 3,
		"skills": ["Python", "React"],
		"education": [{"degree": "B.S. Computer Science", "institution": "State U", "year": "2020"}],
		"experience": [{"title": "Software Engineer", "company": "Acme", "duration": "2020-2023", "description": "Built things"}],
		"projects": [{"name": "chat app", "description": "realtime chat", "technologies": ["Go"]}]
	}`

	assert.NoError(t, ValidateResumePayload(payload))
}

func TestValidateResumePayload_SparseButValid(t *testing.T) {
	// The model may omit fields or send explicit nulls; both are acceptable.
	tests := []struct {
		name    string
		payload string
	}{
		{"empty object", `{}`},
		{"explicit nulls", `{"full_name": null, "skills": null, "years_of_experience": null}`},
		{"fractional years", `{"years_of_experience": 2.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateResumePayload(tt.payload))
		})
	}
}

func TestValidateResumePayload_WrongShape(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"skills not an array", `{"skills": "Python, React"}`},
		{"education not objects", `{"education": ["B.S."]}`},
		{"years as word", `{"years_of_experience": "three"}`},
		{"root is array", `["not", "an", "object"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResumePayload(tt.payload)
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type")
			assert.Greater(t, len(validationErr.Errors), 0)
		})
	}
}

func TestValidateResumePayload_NotJSON(t *testing.T) {
	err := ValidateResumePayload("{ invalid json }")
	require.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	assert.NoError(t, ValidateJSONString(schemaContent, jsonContent))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "skills", Message: "is not an array"},
			{Field: "years_of_experience", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "skills")
	assert.Contains(t, errorMsg, "years_of_experience")
}
