package usecase

import (
	"context"
	"fmt"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/port"
)

// GetAssessment is the use case for retrieving an existing assessment.
type GetAssessment struct {
	repo port.AssessmentRepository
}

// NewGetAssessment creates a new GetAssessment use case.
func NewGetAssessment(repo port.AssessmentRepository) *GetAssessment {
	return &GetAssessment{repo: repo}
}

// Execute retrieves an assessment by ID.
func (uc *GetAssessment) Execute(ctx context.Context, req dto.GetAssessmentRequest) (dto.AssessmentResponse, error) {
	ctx, span := tracer.Start(ctx, "GetAssessment")
	defer span.End()

	assessment, err := uc.repo.FindByID(ctx, req.AssessmentID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to find assessment: %w", err)
	}

	return dto.FromModel(assessment), nil
}
