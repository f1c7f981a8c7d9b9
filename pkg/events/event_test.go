package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := "agg-123"

	before := time.Now().UTC()
	event := NewBaseEvent("AssessmentCreated", aggregateID, "Assessment", time.Time{})
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "AssessmentCreated" {
		t.Errorf("expected event type %q, got %q", "AssessmentCreated", event.EventType())
	}

	if event.AggregateID() != aggregateID {
		t.Errorf("expected aggregate ID %v, got %v", aggregateID, event.AggregateID())
	}

	if event.AggregateType() != "Assessment" {
		t.Errorf("expected aggregate type %q, got %q", "Assessment", event.AggregateType())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestNewBaseEventKeepsSuppliedTime(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	event := NewBaseEvent("AssessmentScored", "a-1", "Assessment", at)

	if !event.OccurredAt().Equal(at) {
		t.Errorf("expected occurredAt %v, got %v", at, event.OccurredAt())
	}
}

func TestNewBaseEventUniqueIDs(t *testing.T) {
	e1 := NewBaseEvent("Event", "agg", "Aggregate", time.Time{})
	e2 := NewBaseEvent("Event", "agg", "Aggregate", time.Time{})

	if e1.EventID() == e2.EventID() {
		t.Error("expected distinct event IDs")
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventJSONEnvelope(t *testing.T) {
	event := NewBaseEvent("DemoDataReset", "B", "Dataset", time.Time{})

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("expected valid JSON payload, got error: %v", err)
	}

	for _, key := range []string{"event_id", "event_type", "aggregate_id", "aggregate_type", "occurred_at"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("expected key %q in envelope", key)
		}
	}
}

func TestEventCollectorRecord(t *testing.T) {
	collector := &EventCollector{}
	aggregateID := "assessment-1"

	collector.Record(
		NewBaseEvent("fraudscout.assessment.scored", aggregateID, "Assessment", time.Time{}),
		NewBaseEvent("fraudscout.critical_risk.detected", aggregateID, "Assessment", time.Time{}),
	)

	evts := collector.Events()
	if len(evts) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evts))
	}
	if evts[0].EventType() != "fraudscout.assessment.scored" {
		t.Errorf("unexpected first event type %q", evts[0].EventType())
	}
	if evts[1].EventType() != "fraudscout.critical_risk.detected" {
		t.Errorf("unexpected second event type %q", evts[1].EventType())
	}
	if !collector.HasEvents() {
		t.Error("expected HasEvents to be true")
	}
}

func TestEventCollectorEventsReturnsCopy(t *testing.T) {
	collector := &EventCollector{}
	collector.Record(NewBaseEvent("Event1", "agg", "Aggregate", time.Time{}))

	evts := collector.Events()
	evts[0] = NewBaseEvent("Replaced", "agg", "Aggregate", time.Time{})

	if got := collector.Events()[0].EventType(); got != "Event1" {
		t.Errorf("expected buffered event to be unchanged, got %q", got)
	}
}

func TestEventCollectorClearEvents(t *testing.T) {
	collector := &EventCollector{}
	collector.Record(NewBaseEvent("Event1", "agg", "Aggregate", time.Time{}))
	collector.Record(NewBaseEvent("Event2", "agg", "Aggregate", time.Time{}))

	cleared := collector.ClearEvents()
	if len(cleared) != 2 {
		t.Fatalf("expected ClearEvents to return 2 events, got %d", len(cleared))
	}
	if collector.HasEvents() || collector.Events() != nil {
		t.Error("expected collector to be empty after ClearEvents")
	}
	if again := collector.ClearEvents(); again != nil {
		t.Errorf("expected nil from ClearEvents on empty collector, got %v", again)
	}
}
