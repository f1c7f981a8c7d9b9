package usecase

import (
	"context"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/service"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

// PreviewScore runs the engine on ad-hoc inputs. Nothing is stored and
// unknown labels are scored as zero, exactly as the engine does.
type PreviewScore struct {
	scorer service.Scorer
}

// NewPreviewScore creates a new PreviewScore use case.
func NewPreviewScore(scorer service.Scorer) *PreviewScore {
	return &PreviewScore{scorer: scorer}
}

func (uc *PreviewScore) Execute(ctx context.Context, req dto.PreviewScoreRequest) (dto.ScoringResultResponse, error) {
	_, span := tracer.Start(ctx, "PreviewScore")
	defer span.End()

	result := uc.scorer.Score(service.ScoringInput{
		RiskFactors: valueobject.RiskFactorsFromStrings(req.RiskFactors),
		Country:     req.Country,
		RevenueBand: valueobject.RevenueBand(req.RevenueBand),
	})
	return dto.ScoringResultFromValue(result), nil
}
