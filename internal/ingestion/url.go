package ingestion

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

// FromURL fetches a job posting, extracts its text with board-specific
// selectors, enforces the size cap and cleans the result. Headless-browser
// rendering is deliberately not attempted; postings that only exist
// client-side surface as an EmptyExtractionError.
func FromURL(ctx context.Context, urlStr string, maxBytes int, verbose bool) (string, error) {
	if verbose {
		log.Printf("[VERBOSE] Fetching job posting: %s (platform: %s)", urlStr, fetch.DetectPlatform(urlStr))
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", err
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	text, err := fetch.ExtractJobText(result.HTML, urlStr)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", &EmptyExtractionError{URL: urlStr}
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(text))
	}

	if err := Guard(text, maxBytes); err != nil {
		return "", err
	}

	return CleanText(text), nil
}
