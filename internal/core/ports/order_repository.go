package ports

import (
	"context"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage with upsert semantics:
	// adding twice with the same id overwrites rather than duplicating.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists an accepted status change conditionally on the
	// expected previous status, so concurrent advances of the same order
	// cannot both win. Returns an ObjectNotFoundError if the order does not
	// exist and an ObjectConcurrentlyModifiedError if another writer changed
	// the status first.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its identifier, restored exactly
	// as persisted. Returns an ObjectNotFoundError carrying the id if the
	// order does not exist.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
