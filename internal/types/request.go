// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest represents the request body for POST /analyze.
// Exactly one of JobText or JobURL supplies the job description; salary
// bounds are optional and may arrive one-sided.
type AnalyzeRequest struct {
	ResumeText         string `json:"resume_text" validate:"required,min=1"`
	JobText            string `json:"job_text" validate:"required_without=JobURL"`
	JobURL             string `json:"job_url" validate:"omitempty,url"`
	CandidateSalaryMin *int   `json:"candidate_salary_min,omitempty" validate:"omitempty,min=0"`
	CandidateSalaryMax *int   `json:"candidate_salary_max,omitempty" validate:"omitempty,min=0"`
	RoleSalaryMin      *int   `json:"role_salary_min,omitempty" validate:"omitempty,min=0"`
	RoleSalaryMax      *int   `json:"role_salary_max,omitempty" validate:"omitempty,min=0"`
	UseLLM             *bool  `json:"use_llm,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CandidateRange builds the candidate SalaryRange from the raw bounds.
func (r *AnalyzeRequest) CandidateRange() *SalaryRange {
	return NewSalaryRange(r.CandidateSalaryMin, r.CandidateSalaryMax)
}

// RoleRange builds the role SalaryRange from the raw bounds.
func (r *AnalyzeRequest) RoleRange() *SalaryRange {
	return NewSalaryRange(r.RoleSalaryMin, r.RoleSalaryMax)
}
