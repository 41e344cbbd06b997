package commands

import (
	"errors"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand or NewCreateOrderCommandWithID",
	)
)

// CreateOrderCommand represents a request to register a new order. The order
// identifier may be supplied by the caller or generated; either way the
// command always carries a validated identifier.
//
// Example:
//
//	cmd := commands.NewCreateOrderCommand()
//	handler := commands.NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	resp, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("order %s created with status %s", resp.ID, resp.Status)
type CreateOrderCommand struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command with a generated random order
// identifier. This is the common path for order creation.
func NewCreateOrderCommand() CreateOrderCommand {
	return CreateOrderCommand{
		orderID: kernel.NewOrderID(),
		guard:   guard.NewConstructorGuard(),
	}
}

// NewCreateOrderCommandWithID creates a command with a caller-supplied order
// identifier. Fails if the identifier does not pass OrderID validation.
func NewCreateOrderCommandWithID(orderID kernel.OrderID) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}
