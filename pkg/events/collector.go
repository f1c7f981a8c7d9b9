package events

// EventCollector is embedded in aggregates to buffer domain events raised by
// state transitions until the caller has persisted the aggregate.
type EventCollector struct {
	pending []DomainEvent
}

// Record buffers events in the order they were raised.
func (c *EventCollector) Record(evts ...DomainEvent) {
	c.pending = append(c.pending, evts...)
}

// Events returns a copy of the buffered events without clearing them.
func (c *EventCollector) Events() []DomainEvent {
	if len(c.pending) == 0 {
		return nil
	}
	out := make([]DomainEvent, len(c.pending))
	copy(out, c.pending)
	return out
}

// HasEvents reports whether any events are buffered.
func (c *EventCollector) HasEvents() bool {
	return len(c.pending) > 0
}

// ClearEvents returns the buffered events and empties the buffer.
func (c *EventCollector) ClearEvents() []DomainEvent {
	collected := c.pending
	c.pending = nil
	return collected
}
