package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/port"
)

// ReviewAssessment is the use case for signing off a scored assessment.
type ReviewAssessment struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
	clock     Clock
	logger    *slog.Logger
}

// NewReviewAssessment creates a new ReviewAssessment use case.
func NewReviewAssessment(repo port.AssessmentRepository, publisher port.EventPublisher, clock Clock, logger *slog.Logger) *ReviewAssessment {
	return &ReviewAssessment{repo: repo, publisher: publisher, clock: clock, logger: logger}
}

func (uc *ReviewAssessment) Execute(ctx context.Context, req dto.ReviewAssessmentRequest) (dto.AssessmentResponse, error) {
	ctx, span := tracer.Start(ctx, "ReviewAssessment")
	defer span.End()

	updated, err := uc.repo.Update(ctx, req.AssessmentID, func(a *model.Assessment) error {
		return a.MarkReviewed(uc.clock())
	})
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to review assessment: %w", err)
	}

	publishEvents(ctx, uc.publisher, uc.logger, updated.DomainEvents())

	return dto.FromModel(updated), nil
}
