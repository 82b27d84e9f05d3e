package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validNarrative = `{
	"summary": "Strong backend match with a few infrastructure gaps.",
	"gapAnalysis": ["No Kubernetes experience listed."],
	"improvements": ["Add a metrics or observability bullet."],
	"keywordMatches": ["python", "postgresql"],
	"missingKeywords": ["kubernetes", "terraform"],
	"bulletRewrites": [
		{"original": "Worked on services.", "suggested": "Built Python services handling 2M requests/day."}
	],
	"atsNotes": ["Resume lacks a dedicated skills section."],
	"compensationFit": null,
	"compensationNotes": []
}`

func TestValidateNarrative_ValidPayload(t *testing.T) {
	err := ValidateNarrative(validNarrative)
	assert.NoError(t, err)
}

func TestValidateNarrative_CompensationFitInteger(t *testing.T) {
	payload := `{
		"summary": "ok",
		"gapAnalysis": [],
		"improvements": [],
		"keywordMatches": [],
		"missingKeywords": [],
		"bulletRewrites": [],
		"atsNotes": [],
		"compensationFit": 85,
		"compensationNotes": ["Range aligns with expectations."]
	}`

	assert.NoError(t, ValidateNarrative(payload))
}

func TestValidateNarrative_CompensationFitOmitted(t *testing.T) {
	payload := `{
		"summary": "ok",
		"gapAnalysis": [],
		"improvements": [],
		"keywordMatches": [],
		"missingKeywords": [],
		"bulletRewrites": [],
		"atsNotes": [],
		"compensationNotes": []
	}`

	assert.NoError(t, ValidateNarrative(payload))
}

func TestValidateNarrative_MissingRequiredField(t *testing.T) {
	payload := `{
		"summary": "ok",
		"improvements": [],
		"keywordMatches": [],
		"missingKeywords": [],
		"bulletRewrites": [],
		"atsNotes": [],
		"compensationNotes": []
	}`

	err := ValidateNarrative(payload)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateNarrative_WrongFieldType(t *testing.T) {
	payload := `{
		"summary": "ok",
		"gapAnalysis": "not an array",
		"improvements": [],
		"keywordMatches": [],
		"missingKeywords": [],
		"bulletRewrites": [],
		"atsNotes": [],
		"compensationFit": "high",
		"compensationNotes": []
	}`

	err := ValidateNarrative(payload)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
}

func TestValidateNarrative_BulletRewriteMissingSuggested(t *testing.T) {
	payload := `{
		"summary": "ok",
		"gapAnalysis": [],
		"improvements": [],
		"keywordMatches": [],
		"missingKeywords": [],
		"bulletRewrites": [{"original": "Did things."}],
		"atsNotes": [],
		"compensationNotes": []
	}`

	err := ValidateNarrative(payload)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateNarrative_MalformedJSON(t *testing.T) {
	err := ValidateNarrative("{ this is not json }")
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

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
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

func TestValidateJSONString_NestedFieldPath(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["person"],
		"properties": {
			"person": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string"}
				}
			}
		}
	}`
	jsonContent := `{"person": {}}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Greater(t, len(validationErr.Errors), 0)
	assert.NotEmpty(t, validationErr.Errors[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "summary", Message: "is required"},
			{Field: "compensationFit", Message: "must be an integer or null"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "summary")
	assert.Contains(t, msg, "compensationFit")
}
