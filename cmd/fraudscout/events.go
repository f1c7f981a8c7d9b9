package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/bootstrap"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/config"
	infrakafka "github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/kafka"
	pkgkafka "github.com/georgchimion-oss/fraud-scout-lite/pkg/kafka"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/observability"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect domain events published to Kafka",
	}
	cmd.AddCommand(newEventsTailCmd())
	return cmd
}

type tailFlags struct {
	topic  string
	group  string
	format string
	max    int
}

func newEventsTailCmd() *cobra.Command {
	f := &tailFlags{}

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print events from the event topic until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTail(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.topic, "topic", "", "Topic to read (default: KAFKA_TOPIC)")
	flags.StringVar(&f.group, "group", "", "Consumer group; empty reads from the oldest offset without committing")
	flags.StringVar(&f.format, "format", "text", "Output format: text or json")
	flags.IntVar(&f.max, "max", 0, "Stop after this many events (0 = unlimited)")
	return cmd
}

func runTail(ctx context.Context, out, logOut io.Writer, f *tailFlags) error {
	if f.format != "text" && f.format != "json" {
		return exitError(3, "unsupported format %q", f.format)
	}

	cfg, err := config.Load()
	if err != nil {
		return exitError(3, "invalid configuration: %v", err)
	}
	if !cfg.KafkaEnabled() {
		return exitError(3, "KAFKA_BROKERS is not set")
	}
	if f.topic == "" {
		f.topic = cfg.KafkaTopic
	}

	logger := observability.InitLogger(observability.LogConfig{
		Output: logOut,
		Level:  cfg.LogLevel,
		Format: "text",
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu   sync.Mutex
		seen int
	)
	handler := func(_ context.Context, msg pkgkafka.Message) error {
		mu.Lock()
		defer mu.Unlock()

		if err := writeEvent(out, f.format, msg); err != nil {
			return err
		}
		seen++
		if f.max > 0 && seen >= f.max {
			cancel()
		}
		return nil
	}

	consumer, err := pkgkafka.NewConsumer(bootstrap.KafkaConfig(cfg, f.group), f.topic, handler, logger)
	if err != nil {
		return err
	}
	defer consumer.Close()

	logger.Debug("tailing events", slog.String("topic", f.topic))
	return consumer.Start(ctx)
}

// tailedEvent is the json rendering of one consumed message.
type tailedEvent struct {
	Key        string          `json:"key"`
	EventType  string          `json:"event_type"`
	OccurredAt string          `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

func writeEvent(out io.Writer, format string, msg pkgkafka.Message) error {
	evt := tailedEvent{
		Key:        string(msg.Key),
		EventType:  msg.Headers[infrakafka.HeaderEventType],
		OccurredAt: msg.Headers[infrakafka.HeaderOccurredAt],
		Payload:    json.RawMessage(msg.Value),
	}
	if !json.Valid(msg.Value) {
		quoted, _ := json.Marshal(string(msg.Value))
		evt.Payload = quoted
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(evt)
	}
	_, err := fmt.Fprintf(out, "%s  %-36s  %s  %s\n", evt.OccurredAt, evt.EventType, evt.Key, evt.Payload)
	return err
}
