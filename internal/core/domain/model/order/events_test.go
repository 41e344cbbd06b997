package order_test

import (
	"testing"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreatedEvent(t *testing.T) {
	t.Run("carries the order id as aggregate id", func(t *testing.T) {
		id, _ := kernel.OrderIDFromString("order-1")

		event := order.NewOrderCreatedEvent(id)

		assert.Equal(t, "order.created", event.EventName())
		assert.Equal(t, "order-1", event.AggregateID())
		assert.True(t, event.OrderID().IsEqual(id))
		assert.False(t, event.OccurredAt().IsZero())
	})

	t.Run("accepts an injected timestamp", func(t *testing.T) {
		occurredAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

		event := order.NewOrderCreatedEventAt(kernel.NewOrderID(), occurredAt)

		assert.Equal(t, occurredAt, event.OccurredAt())
	})
}

func TestOrderStatusChangedEvent(t *testing.T) {
	t.Run("carries previous and new status", func(t *testing.T) {
		id, _ := kernel.OrderIDFromString("order-1")

		event := order.NewOrderStatusChangedEvent(id, order.Shipped, order.Delivered)

		assert.Equal(t, "order.status.changed", event.EventName())
		assert.Equal(t, "order-1", event.AggregateID())
		assert.Equal(t, order.Shipped, event.PreviousStatus())
		assert.Equal(t, order.Delivered, event.NewStatus())
		assert.False(t, event.OccurredAt().IsZero())
	})

	t.Run("accepts an injected timestamp", func(t *testing.T) {
		occurredAt := time.Date(2025, 3, 2, 12, 30, 0, 0, time.UTC)

		event := order.NewOrderStatusChangedEventAt(
			kernel.NewOrderID(), order.Created, order.Processing, occurredAt)

		assert.Equal(t, occurredAt, event.OccurredAt())
	})

	t.Run("events satisfy the domain event contract", func(t *testing.T) {
		var created order.DomainEvent = order.NewOrderCreatedEvent(kernel.NewOrderID())
		var changed order.DomainEvent = order.NewOrderStatusChangedEvent(
			kernel.NewOrderID(), order.Created, order.Processing)

		require.NotEmpty(t, created.EventName())
		require.NotEmpty(t, changed.EventName())
		assert.NotEqual(t, created.EventName(), changed.EventName())
	})
}
