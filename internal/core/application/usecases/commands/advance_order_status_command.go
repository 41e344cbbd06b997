package commands

import (
	"errors"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/guard"
)

var (
	ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
	)
)

// AdvanceOrderStatusCommand represents a request to move an order to the
// next status in the fixed sequence. The command deliberately carries no
// target status: advancement is always a single forward step.
type AdvanceOrderStatusCommand struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance the given order.
// Fails if the identifier does not pass OrderID validation.
func NewAdvanceOrderStatusCommand(orderID kernel.OrderID) (AdvanceOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return AdvanceOrderStatusCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderStatusCommandIsNotConstructed if validation fails.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}
