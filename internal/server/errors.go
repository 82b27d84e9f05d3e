package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/ingestion"
)

// HTTPStatus maps an analysis pipeline error to a response status code.
// Oversized inputs, unreachable job URLs and postings with no extractable
// text each carry a distinct status so clients can tell them apart.
func HTTPStatus(err error) int {
	var (
		validationErrs validator.ValidationErrors
		tooLarge       *ingestion.InputTooLargeError
		emptyPage      *ingestion.EmptyExtractionError
		fetchErr       *fetch.Error
	)

	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &emptyPage):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
