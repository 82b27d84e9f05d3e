package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_NarrativePrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("narrative.json", "generate-narrative")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "Return only valid JSON")
	assert.Contains(t, prompt, "{{.ResumeText}}")
	assert.Contains(t, prompt, "{{.JobText}}")
	assert.Contains(t, prompt, "{{.MatchScore}}")
}

func TestGet_UnknownFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_UnknownKey(t *testing.T) {
	ClearCache()

	_, err := Get("narrative.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		prompt := MustGet("narrative.json", "generate-narrative")
		assert.NotEmpty(t, prompt)
	})
}

func TestFormat(t *testing.T) {
	template := "Match score: {{.MatchScore}} for {{.Role}}."
	data := map[string]string{
		"MatchScore": "72",
		"Role":       "Backend Engineer",
	}

	result := Format(template, data)
	assert.Equal(t, "Match score: 72 for Backend Engineer.", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	data := map[string]string{"Key": "Value"}

	result := Format(template, data)
	assert.Equal(t, template, result)
}

func TestFormat_MissingKeyLeavesPlaceholder(t *testing.T) {
	template := "Hello {{.Name}}"

	result := Format(template, map[string]string{})
	assert.Equal(t, template, result)
}

func TestGet_CachesParsedFile(t *testing.T) {
	ClearCache()

	first, err := Get("narrative.json", "generate-narrative")
	require.NoError(t, err)

	second, err := Get("narrative.json", "generate-narrative")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
