package ingestion

import "fmt"

// InputTooLargeError reports input that exceeds the configured size cap.
type InputTooLargeError struct {
	Size  int
	Limit int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input is %d bytes, exceeding the %d byte limit", e.Size, e.Limit)
}

// EmptyExtractionError reports a page that fetched fine but yielded no text,
// usually a fully client-rendered posting.
type EmptyExtractionError struct {
	URL string
}

func (e *EmptyExtractionError) Error() string {
	return fmt.Sprintf("no text could be extracted from %s", e.URL)
}
