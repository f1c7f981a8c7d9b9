package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/georgchimion-oss/fraud-scout-lite/pkg/events"
)

// LogPublisher implements port.EventPublisher by writing events to the log.
// It is the publisher used when no Kafka brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
	topic  string
}

// NewLogPublisher creates a publisher that logs under the given topic name.
func NewLogPublisher(topic string, logger *slog.Logger) *LogPublisher {
	return &LogPublisher{
		topic:  topic,
		logger: logger,
	}
}

// Publish logs every event at info level and its payload at debug level.
func (p *LogPublisher) Publish(ctx context.Context, domainEvents ...events.DomainEvent) error {
	for _, evt := range domainEvents {
		eventType := evt.EventType()

		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", eventType, err)
		}

		p.logger.InfoContext(ctx, "publishing event",
			slog.String("event_type", eventType),
			slog.String("event_id", evt.EventID()),
			slog.String("aggregate_id", evt.AggregateID()),
			slog.String("topic", p.topic),
			slog.Int("payload_size", len(payload)),
		)
		p.logger.DebugContext(ctx, "event payload",
			slog.String("event_type", eventType),
			slog.String("payload", string(payload)),
		)
	}

	return nil
}
