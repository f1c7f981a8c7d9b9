package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/port"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/service"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

// ScoreAssessment is the use case for running the scoring engine on a stored
// assessment and recording its output.
type ScoreAssessment struct {
	repo      port.AssessmentRepository
	scorer    service.Scorer
	observer  port.ScoringObserver
	publisher port.EventPublisher
	clock     Clock
	logger    *slog.Logger
}

// NewScoreAssessment creates a new ScoreAssessment use case. observer may be nil.
func NewScoreAssessment(
	repo port.AssessmentRepository,
	scorer service.Scorer,
	observer port.ScoringObserver,
	publisher port.EventPublisher,
	clock Clock,
	logger *slog.Logger,
) *ScoreAssessment {
	return &ScoreAssessment{
		repo:      repo,
		scorer:    scorer,
		observer:  observer,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// Execute scores the assessment and moves it from Open to Scored in a single
// repository update. Scoring an assessment that is not Open fails with
// model.ErrInvalidTransition.
func (uc *ScoreAssessment) Execute(ctx context.Context, req dto.ScoreAssessmentRequest) (dto.AssessmentResponse, error) {
	ctx, span := tracer.Start(ctx, "ScoreAssessment")
	defer span.End()
	span.SetAttributes(attribute.String("assessment.id", req.AssessmentID))

	var result valueobject.ScoringResult
	updated, err := uc.repo.Update(ctx, req.AssessmentID, func(a *model.Assessment) error {
		result = uc.scorer.Score(a.ScoringInput())
		return a.ApplyScore(result, uc.clock())
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return dto.AssessmentResponse{}, fmt.Errorf("failed to score assessment: %w", err)
	}

	span.SetAttributes(
		attribute.Int("risk.score", result.RiskScore),
		attribute.String("risk.tier", result.RiskTier.String()),
	)

	if uc.observer != nil {
		uc.observer.ObserveScore(ctx, result)
	}

	uc.logger.InfoContext(ctx, "assessment scored",
		slog.String("assessment_id", updated.ID()),
		slog.String("company_id", updated.CompanyID()),
		slog.Int("risk_score", result.RiskScore),
		slog.String("risk_tier", result.RiskTier.String()),
	)

	publishEvents(ctx, uc.publisher, uc.logger, updated.DomainEvents())

	return dto.FromModel(updated), nil
}
