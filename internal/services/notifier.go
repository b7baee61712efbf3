package services

import (
	"context"

	"gulfacorns/internal/events"
	"gulfacorns/internal/logger"
)

// notifier publishes domain events after a write has committed.
type notifier struct {
	publisher events.Publisher
}

func newNotifier(publisher events.Publisher) *notifier {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	return &notifier{publisher: publisher}
}

// Notify publishes the event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (n *notifier) Notify(event *events.Event) {
	if err := n.publisher.Publish(context.Background(), event); err != nil {
		logger.Get().Errorw("failed to publish event",
			"error", err,
			"type", event.Type,
			"user_id", event.UserID,
			"resource_id", event.ResourceID,
		)
	}
}
