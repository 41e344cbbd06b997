package order

import (
	"time"

	"orderservice/internal/core/domain/model/kernel"
)

// Event name tokens published to the message broker. They are a stable
// contract with downstream consumers and must not change.
const (
	OrderCreatedEventName       = "order.created"
	OrderStatusChangedEventName = "order.status.changed"
)

// DomainEvent is an immutable record of something that happened to an
// aggregate, published for external consumers.
type DomainEvent interface {
	// EventName returns the routing token of the event.
	EventName() string

	// AggregateID returns the identifier of the aggregate the event
	// belongs to, used for routing and correlation.
	AggregateID() string

	// OccurredAt returns the instant the recorded fact happened.
	OccurredAt() time.Time
}

// OrderCreatedEvent records that a new order entered the system.
type OrderCreatedEvent struct {
	orderID    kernel.OrderID
	occurredAt time.Time
}

// NewOrderCreatedEvent creates the event with the current instant.
func NewOrderCreatedEvent(orderID kernel.OrderID) OrderCreatedEvent {
	return NewOrderCreatedEventAt(orderID, time.Now().UTC())
}

// NewOrderCreatedEventAt creates the event with an explicit timestamp,
// allowing deterministic construction in tests and replays.
func NewOrderCreatedEventAt(orderID kernel.OrderID, occurredAt time.Time) OrderCreatedEvent {
	return OrderCreatedEvent{orderID: orderID, occurredAt: occurredAt}
}

// OrderID returns the identifier of the created order.
func (e OrderCreatedEvent) OrderID() kernel.OrderID {
	return e.orderID
}

func (e OrderCreatedEvent) EventName() string {
	return OrderCreatedEventName
}

func (e OrderCreatedEvent) AggregateID() string {
	return e.orderID.String()
}

func (e OrderCreatedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// OrderStatusChangedEvent records an accepted status transition, carrying
// both the previous and the new status token.
type OrderStatusChangedEvent struct {
	orderID        kernel.OrderID
	previousStatus Status
	newStatus      Status
	occurredAt     time.Time
}

// NewOrderStatusChangedEvent creates the event with the current instant.
func NewOrderStatusChangedEvent(orderID kernel.OrderID, previousStatus, newStatus Status) OrderStatusChangedEvent {
	return NewOrderStatusChangedEventAt(orderID, previousStatus, newStatus, time.Now().UTC())
}

// NewOrderStatusChangedEventAt creates the event with an explicit timestamp,
// allowing deterministic construction in tests and replays.
func NewOrderStatusChangedEventAt(
	orderID kernel.OrderID,
	previousStatus, newStatus Status,
	occurredAt time.Time,
) OrderStatusChangedEvent {
	return OrderStatusChangedEvent{
		orderID:        orderID,
		previousStatus: previousStatus,
		newStatus:      newStatus,
		occurredAt:     occurredAt,
	}
}

// OrderID returns the identifier of the order that changed.
func (e OrderStatusChangedEvent) OrderID() kernel.OrderID {
	return e.orderID
}

// PreviousStatus returns the status before the transition.
func (e OrderStatusChangedEvent) PreviousStatus() Status {
	return e.previousStatus
}

// NewStatus returns the status after the transition.
func (e OrderStatusChangedEvent) NewStatus() Status {
	return e.newStatus
}

func (e OrderStatusChangedEvent) EventName() string {
	return OrderStatusChangedEventName
}

func (e OrderStatusChangedEvent) AggregateID() string {
	return e.orderID.String()
}

func (e OrderStatusChangedEvent) OccurredAt() time.Time {
	return e.occurredAt
}
