package model

import "errors"

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrValidation         = errors.New("validation failed")
	ErrAssessmentExists   = errors.New("assessment already exists")
)
