package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

// Instrument names as exported to Prometheus.
const (
	ScoredTotalName = "fraudscout_assessments_scored"
	RiskScoreName   = "fraudscout_risk_score"
)

// ScoringMetrics implements port.ScoringObserver with OpenTelemetry instruments.
type ScoringMetrics struct {
	scored metric.Int64Counter
	score  metric.Int64Histogram
}

// NewScoringMetrics registers the scoring instruments on meter.
func NewScoringMetrics(meter metric.Meter) (*ScoringMetrics, error) {
	scored, err := meter.Int64Counter(ScoredTotalName,
		metric.WithDescription("Assessments scored, by risk tier."),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", ScoredTotalName, err)
	}

	score, err := meter.Int64Histogram(RiskScoreName,
		metric.WithDescription("Distribution of clamped risk scores."),
		// Upper bounds are inclusive, so each bucket covers exactly one tier.
		metric.WithExplicitBucketBoundaries(
			valueobject.MediumThreshold-1,
			valueobject.HighThreshold-1,
			valueobject.CriticalThreshold-1,
			100,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s histogram: %w", RiskScoreName, err)
	}

	return &ScoringMetrics{scored: scored, score: score}, nil
}

// ObserveScore records one scoring outcome.
func (m *ScoringMetrics) ObserveScore(ctx context.Context, result valueobject.ScoringResult) {
	tier := metric.WithAttributes(attribute.String("tier", result.RiskTier.String()))
	m.scored.Add(ctx, 1, tier)
	m.score.Record(ctx, int64(result.RiskScore), tier)
}
