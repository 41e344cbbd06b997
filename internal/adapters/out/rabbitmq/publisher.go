package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// orderCreatedPayload is the wire format of an order.created event.
type orderCreatedPayload struct {
	EventName  string    `json:"eventName"`
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// orderStatusChangedPayload is the wire format of an order.status.changed
// event. Statuses are the lowercase tokens shared with the HTTP API and
// the database, never numeric codes.
type orderStatusChangedPayload struct {
	EventName      string    `json:"eventName"`
	OrderID        string    `json:"orderId"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	OccurredAt     time.Time `json:"occurredAt"`
}

type publisher struct {
	ch *amqp.Channel
}

// NewPublisher creates an EventPublisher implementation using RabbitMQ.
func NewPublisher(ch *amqp.Channel) ports.EventPublisher {
	return &publisher{ch: ch}
}

func (p *publisher) Publish(ctx context.Context, eventName string, event order.DomainEvent) error {
	body, err := marshalEvent(eventName, event)
	if err != nil {
		return err
	}

	// Routing key is the event name itself (e.g. order.status.changed).
	return p.ch.PublishWithContext(ctx,
		ExchangeName, // exchange
		eventName,    // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func marshalEvent(eventName string, event order.DomainEvent) ([]byte, error) {
	switch e := event.(type) {
	case order.OrderCreatedEvent:
		return json.Marshal(orderCreatedPayload{
			EventName:  eventName,
			OrderID:    e.OrderID().String(),
			Status:     order.Created.String(),
			OccurredAt: e.OccurredAt(),
		})
	case order.OrderStatusChangedEvent:
		return json.Marshal(orderStatusChangedPayload{
			EventName:      eventName,
			OrderID:        e.OrderID().String(),
			PreviousStatus: e.PreviousStatus().String(),
			NewStatus:      e.NewStatus().String(),
			OccurredAt:     e.OccurredAt(),
		})
	default:
		return nil, fmt.Errorf("unsupported event type %T for event %s", event, eventName)
	}
}
