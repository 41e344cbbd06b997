package order

import (
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through one of the factory functions. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder, NewOrderWithStatus or RestoreOrder")
)

// Order is the aggregate root for order tracking. It owns the order's
// identity, status and lifecycle timestamps, and is the only place a status
// change can happen.
//
// Order maintains these invariants:
//   - The identifier is assigned at creation and never changes
//   - Status only moves forward along the fixed linear sequence; Delivered
//     is terminal
//   - updatedAt is always >= createdAt and changes exactly when the status
//     changes; a rejected advance mutates nothing
//   - Instances can only be created through the factory functions
//
// The struct uses private fields to keep the invariants enforceable through
// its methods. An Order is mutable in-memory state for the duration of a
// single use-case invocation and must not be shared across concurrent
// invocations; concurrent advances of the same persisted order are resolved
// at the persistence boundary.
type Order struct {
	id        kernel.OrderID
	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a fresh order in Created status. Both timestamps are set
// to the current instant.
func NewOrder(id kernel.OrderID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Order{
		id:            id,
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// NewOrderWithStatus creates an order already in the given status, without
// history. Intended for tests and administrative backfill. Fails if the
// status is not a valid member of the sequence.
func NewOrderWithStatus(id kernel.OrderID, status Status) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Order{
		id:            id,
		status:        status,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order from persisted fields. This is a load path,
// not a business operation: the persisted status and timestamps represent
// previously accepted history and are restored exactly, without running the
// transition rules.
func RestoreOrder(id kernel.OrderID, status Status, createdAt, updatedAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct, and should be called when handling orders that
// crossed a serialization boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp. It is set once and never mutated.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last accepted status change, or the
// creation instant if the order never advanced.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Advance moves the order to the single next status in the fixed sequence
// and refreshes updatedAt. It takes no argument: callers cannot skip states
// or choose an arbitrary target, so the only possible illegal operation is
// advancing past Delivered.
//
// On failure the order is left completely unchanged.
func (o *Order) Advance() error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = time.Now().UTC()
	return nil
}

// CanAdvance reports whether Advance would currently succeed. It never fails
// and performs no mutation, so read-side responses can expose it directly.
func (o *Order) CanAdvance() bool {
	return o.status.CanAdvance()
}
