package events

import "context"

// NoopPublisher discards all events. It is used when no broker is configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a Publisher that does nothing.
func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (NoopPublisher) Publish(context.Context, *Event) error { return nil }
func (NoopPublisher) Close() error                          { return nil }
