package dto

import (
	"time"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

// CreateAssessmentRequest is the input DTO for opening an assessment.
// Country and RevenueBand fall back to the company's values when empty.
type CreateAssessmentRequest struct {
	CompanyID   string   `json:"company_id"`
	Name        string   `json:"name"`
	Notes       string   `json:"notes"`
	Country     string   `json:"country"`
	RevenueBand string   `json:"revenue_band"`
	RiskFactors []string `json:"risk_factors"`
}

// GetAssessmentRequest is the input DTO for retrieving an assessment.
type GetAssessmentRequest struct {
	AssessmentID string `json:"assessment_id"`
}

// ListCompanyAssessmentsRequest is the input DTO for a company's assessments.
type ListCompanyAssessmentsRequest struct {
	CompanyID string `json:"company_id"`
}

// ScoreAssessmentRequest is the input DTO for scoring a stored assessment.
type ScoreAssessmentRequest struct {
	AssessmentID string `json:"assessment_id"`
}

// ReviewAssessmentRequest is the input DTO for reviewing a scored assessment.
type ReviewAssessmentRequest struct {
	AssessmentID string `json:"assessment_id"`
}

// AssessmentResponse is the output DTO for an assessment. Scoring fields are
// omitted while the assessment is Open.
type AssessmentResponse struct {
	CreatedAt   time.Time  `json:"created_at"`
	ScoredAt    *time.Time `json:"scored_at,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	RiskScore   *int       `json:"risk_score,omitempty"`
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	Name        string     `json:"name"`
	Notes       string     `json:"notes"`
	Country     string     `json:"country"`
	RevenueBand string     `json:"revenue_band"`
	Status      string     `json:"status"`
	RiskTier    string     `json:"risk_tier,omitempty"`
	RiskFactors []string   `json:"risk_factors"`
	Reasons     []string   `json:"reasons,omitempty"`
	RedFlags    []string   `json:"red_flags,omitempty"`
	Version     int        `json:"version"`
}

// FromModel maps a domain model to the response DTO.
func FromModel(a *model.Assessment) AssessmentResponse {
	resp := AssessmentResponse{
		ID:          a.ID(),
		CompanyID:   a.CompanyID(),
		Name:        a.Name(),
		Notes:       a.Notes(),
		Country:     a.Country(),
		RevenueBand: a.RevenueBand().String(),
		RiskFactors: valueobject.RiskFactorStrings(a.RiskFactors()),
		Status:      a.Status().String(),
		CreatedAt:   a.CreatedAt(),
		Version:     a.Version(),
	}
	if scoring, ok := a.Scoring(); ok {
		score := scoring.Result.RiskScore
		scoredAt := scoring.ScoredAt
		resp.RiskScore = &score
		resp.RiskTier = scoring.Result.RiskTier.String()
		resp.Reasons = scoring.Result.Reasons
		resp.RedFlags = scoring.Result.RedFlags
		resp.ScoredAt = &scoredAt
	}
	if reviewedAt, ok := a.ReviewedAt(); ok {
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}

// FromModels maps a slice of assessments.
func FromModels(assessments []*model.Assessment) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(assessments))
	for _, a := range assessments {
		out = append(out, FromModel(a))
	}
	return out
}
