package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	input := "# Title\n## Requirements\nContent here"
	result := CleanText(input)

	assert.Contains(t, result, "# Title")
	assert.Contains(t, result, "## Requirements")
	assert.Contains(t, result, "Content here")
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n* Item 3"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "* Item 3")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with    multiple    spaces"
	result := CleanText(input)

	assert.Contains(t, result, "Line with multiple spaces")
	assert.NotContains(t, result, "    ")
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.NotContains(t, result, "\r")
	assert.Len(t, strings.Split(result, "\n"), 4)
}

func TestCleanText_TrimsTrailingSpaces(t *testing.T) {
	input := "Requirements:   \n- Go experience\t\t"
	result := CleanText(input)

	assert.Contains(t, result, "Requirements:\n")
	assert.NotContains(t, result, "   \n")
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
}

func TestCleanText_OnlyWhitespace(t *testing.T) {
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Test with émojis 🚀 and spéciàl chàracters"
	result := CleanText(input)

	assert.Contains(t, result, "émojis")
	assert.Contains(t, result, "🚀")
	assert.Contains(t, result, "spéciàl chàracters")
}

func TestGuard_WithinLimit(t *testing.T) {
	assert.NoError(t, Guard("short text", 100))
}

func TestGuard_ExceedsLimit(t *testing.T) {
	err := Guard(strings.Repeat("a", 101), 100)
	require.Error(t, err)

	var tooLarge *InputTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 101, tooLarge.Size)
	assert.Equal(t, 100, tooLarge.Limit)
}

func TestGuard_DefaultLimit(t *testing.T) {
	assert.NoError(t, Guard(strings.Repeat("a", DefaultMaxInputBytes), 0))

	err := Guard(strings.Repeat("a", DefaultMaxInputBytes+1), 0)
	require.Error(t, err)

	var tooLarge *InputTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, DefaultMaxInputBytes, tooLarge.Limit)
}

func TestFromFile_Success(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "job.txt")
	err := os.WriteFile(testFile, []byte("# Job Title\r\n\r\nRequirements:\n- golang"), 0644)
	require.NoError(t, err)

	text, err := FromFile(testFile, 0)
	require.NoError(t, err)

	assert.Contains(t, text, "# Job Title")
	assert.Contains(t, text, "- golang")
	assert.NotContains(t, text, "\r")
}

func TestFromFile_NotFound(t *testing.T) {
	_, err := FromFile("/nonexistent/file.txt", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestFromFile_TooLarge(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "big.txt")
	err := os.WriteFile(testFile, []byte(strings.Repeat("x", 512)), 0644)
	require.NoError(t, err)

	_, err = FromFile(testFile, 100)
	require.Error(t, err)

	var tooLarge *InputTooLargeError
	assert.ErrorAs(t, err, &tooLarge)
}
