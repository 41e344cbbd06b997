package ports

import (
	"context"

	"orderservice/internal/core/domain/model/order"
)

// EventPublisher defines the messaging contract for domain events.
// Implementations route events to downstream consumers by the event name
// token; the wire format is an adapter concern.
//
// Publication happens after persistence has succeeded. There is no outbox:
// a publish failure after a committed write leaves storage ahead of the
// event stream, and the caller observes the error.
type EventPublisher interface {
	// Publish delivers a domain event under the given name token
	// (e.g. "order.created"). The token is a stable contract with
	// downstream consumers.
	Publish(ctx context.Context, eventName string, event order.DomainEvent) error
}
