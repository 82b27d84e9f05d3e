// Package ingestion turns raw input (pasted text, local files, job posting
// URLs) into cleaned plain text sized for analysis. Cleaning preserves line
// structure because the section segmenter works line by line.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DefaultMaxInputBytes caps a single document when no limit is configured.
const DefaultMaxInputBytes = 64 * 1024

var multiSpace = regexp.MustCompile(`\s+`)

// Guard enforces the input size cap. A non-positive maxBytes applies
// DefaultMaxInputBytes.
func Guard(text string, maxBytes int) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxInputBytes
	}
	if len(text) > maxBytes {
		return &InputTooLargeError{Size: len(text), Limit: maxBytes}
	}
	return nil
}

// CleanText normalizes text content while preserving line structure.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// CRLF and bare CR both become LF.
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line. Markdown headings and bullets keep their
// markers since the segmenter treats them as heading decoration.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	leadingSpace := len(line) - len(trimmed)
	content := multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

var blankRuns = regexp.MustCompile(`\n\n\n+`)

// removeExcessiveBlankLines reduces consecutive blank lines to at most one
// blank line between paragraphs.
func removeExcessiveBlankLines(content string) string {
	return blankRuns.ReplaceAllString(content, "\n\n")
}

// FromFile reads a local text file, enforces the size cap and cleans it.
func FromFile(path string, maxBytes int) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if err := Guard(string(content), maxBytes); err != nil {
		return "", err
	}

	return CleanText(string(content)), nil
}
