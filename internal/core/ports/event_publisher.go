package ports

import (
	"context"

	"swifthub/internal/core/domain/model/event"
)

// EventPublisher fans a lifecycle event out to the subscriber topics.
//
// Publication is fire-and-forget relative to order processing: calls return
// immediately, failures are logged inside the implementation, and no error
// ever reaches the orchestration path. The context only scopes the hand-off,
// not the delivery.
type EventPublisher interface {
	// Publish delivers the event to all destination topics, best effort.
	Publish(ctx context.Context, e event.Lifecycle)
}
