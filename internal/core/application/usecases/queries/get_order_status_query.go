// Package queries contains read-only operations against the order store.
// Query handlers go straight to the database with raw SQL and never touch
// the write-side repository, following the CQRS split used for commands.
package queries

import (
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/guard"
)

var (
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)
)

// GetOrderStatusQuery retrieves the tracking state of a single order.
//
// Example:
//
//	id, _ := kernel.OrderIDFromString("order-1")
//	query, _ := queries.NewGetOrderStatusQuery(id)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s is %s\n", resp.ID, resp.Status)
type GetOrderStatusQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for the given order identifier.
// Fails if the identifier does not pass OrderID validation.
func NewGetOrderStatusQuery(orderID kernel.OrderID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being queried.
func (q GetOrderStatusQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetOrderStatusQueryResponse represents the tracking state of an order.
// CanAdvance tells callers whether an advance request would currently
// succeed, so they can avoid invoking a failing mutation.
type GetOrderStatusQueryResponse struct {
	ID         kernel.OrderID
	Status     order.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CanAdvance bool
}
