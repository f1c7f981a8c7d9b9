package usecase

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/port"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/events"
)

// Clock supplies timestamps to use cases.
type Clock func() time.Time

// SystemClock returns the current UTC time.
func SystemClock() time.Time {
	return time.Now().UTC()
}

var tracer = otel.Tracer("github.com/georgchimion-oss/fraud-scout-lite/internal/application/usecase")

// publishEvents forwards events after the state change is committed. A broker
// failure is logged rather than returned because the write already succeeded.
func publishEvents(ctx context.Context, publisher port.EventPublisher, logger *slog.Logger, evts []events.DomainEvent) {
	if len(evts) == 0 || publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, evts...); err != nil {
		logger.WarnContext(ctx, "failed to publish events",
			slog.Int("count", len(evts)),
			slog.String("first_type", evts[0].EventType()),
			slog.String("error", err.Error()),
		)
	}
}
