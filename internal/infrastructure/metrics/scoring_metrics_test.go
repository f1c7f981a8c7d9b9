package metrics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/metrics"
)

func TestScoringMetrics_ObserveScore(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = provider.Shutdown(ctx) }()

	m, err := metrics.NewScoringMetrics(provider.Meter("fraudscout"))
	require.NoError(t, err)

	m.ObserveScore(ctx, valueobject.ScoringResult{RiskScore: 20, RiskTier: valueobject.RiskTierLow})
	m.ObserveScore(ctx, valueobject.ScoringResult{RiskScore: 85, RiskTier: valueobject.RiskTierCritical})
	m.ObserveScore(ctx, valueobject.ScoringResult{RiskScore: 100, RiskTier: valueobject.RiskTierCritical})

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, md := range rm.ScopeMetrics[0].Metrics {
		byName[md.Name] = md
	}

	sum, ok := byName[metrics.ScoredTotalName].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		tier, _ := dp.Attributes.Value(attribute.Key("tier"))
		counts[tier.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"Low": 1, "Critical": 2}, counts)

	hist, ok := byName[metrics.RiskScoreName].Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range hist.DataPoints {
		total += dp.Sum
		assert.Equal(t, []float64{24, 49, 74, 100}, dp.Bounds)
	}
	assert.Equal(t, int64(205), total)
}
