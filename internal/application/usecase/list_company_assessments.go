package usecase

import (
	"context"
	"fmt"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/port"
)

// ListCompanyAssessments is the use case for a company's assessment history.
type ListCompanyAssessments struct {
	companies   port.CompanyRepository
	assessments port.AssessmentRepository
}

// NewListCompanyAssessments creates a new ListCompanyAssessments use case.
func NewListCompanyAssessments(companies port.CompanyRepository, assessments port.AssessmentRepository) *ListCompanyAssessments {
	return &ListCompanyAssessments{companies: companies, assessments: assessments}
}

// Execute returns the company's assessments oldest first. The company must exist.
func (uc *ListCompanyAssessments) Execute(ctx context.Context, req dto.ListCompanyAssessmentsRequest) ([]dto.AssessmentResponse, error) {
	ctx, span := tracer.Start(ctx, "ListCompanyAssessments")
	defer span.End()

	if _, err := uc.companies.FindByID(ctx, req.CompanyID); err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	assessments, err := uc.assessments.ListByCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return dto.FromModels(assessments), nil
}
