package messaging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/event"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/messaging"
)

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := messaging.NewLogPublisher("fraudscout.events", logger)

	evt := event.NewAssessmentReviewed("a-1", "c1", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, p.Publish(context.Background(), evt))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &info))
	assert.Equal(t, "publishing event", info["msg"])
	assert.Equal(t, event.EventTypeAssessmentReviewed, info["event_type"])
	assert.Equal(t, evt.EventID(), info["event_id"])
	assert.Equal(t, "a-1", info["aggregate_id"])
	assert.Equal(t, "fraudscout.events", info["topic"])

	var debug map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &debug))
	assert.Contains(t, debug["payload"], `"assessment_id":"a-1"`)
}

func TestLogPublisher_NoEvents(t *testing.T) {
	var buf bytes.Buffer
	p := messaging.NewLogPublisher("fraudscout.events", slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, p.Publish(context.Background()))
	assert.Empty(t, buf.String())
}
