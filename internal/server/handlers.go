package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

// handleAnalyze scores a resume against a job description and returns the
// full AnalysisResult. The job description arrives inline as job_text or is
// fetched from job_url. LLM narrative failures never fail the request; the
// heuristic fallback fills the prose instead.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), extractValidationErrors(err))
		return
	}

	if err := ingestion.Guard(req.ResumeText, s.maxInputBytes); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobText, err := s.resolveJobText(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	apiKey := s.apiKey
	if req.UseLLM != nil && !*req.UseLLM {
		apiKey = ""
	}

	result, err := analysis.Run(r.Context(), analysis.Options{
		ResumeText:      req.ResumeText,
		JobText:         jobText,
		CandidateSalary: req.CandidateRange(),
		RoleSalary:      req.RoleRange(),
		SkillWeight:     s.skillWeight,
		APIKey:          apiKey,
		Verbose:         s.verbose,
	})
	if err != nil {
		// Run only fails when the client went away mid-request.
		log.Printf("Analysis aborted: %v", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// resolveJobText returns the job description text for the request, fetching
// and extracting the posting when only job_url is set.
func (s *Server) resolveJobText(ctx context.Context, req *types.AnalyzeRequest) (string, error) {
	if req.JobText != "" {
		if err := ingestion.Guard(req.JobText, s.maxInputBytes); err != nil {
			return "", err
		}
		return ingestion.CleanText(req.JobText), nil
	}
	return ingestion.FromURL(ctx, req.JobURL, s.maxInputBytes, s.verbose)
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		// Return first validation error for simplicity
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
