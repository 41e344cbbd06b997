package commands

import (
	"context"
	"log/slog"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"
)

// CreateOrderResponse is the result of a successful order creation.
type CreateOrderResponse struct {
	ID        kernel.OrderID
	Status    order.Status
	CreatedAt time.Time
}

// CreateOrderCommandHandler handles the business logic for order creation:
// build the aggregate, persist it transactionally, then publish an
// OrderCreatedEvent.
//
// Ordering contract: persistence must succeed before publication is
// attempted, so an order is never announced that was not durably stored.
// A publish failure after a committed write leaves the order persisted and
// surfaces the error to the caller; there is no outbox.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for the creation event.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreateOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResponse{}, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID())
	if err != nil {
		return CreateOrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResponse{}, err
	}

	event := order.NewOrderCreatedEvent(newOrder.ID())
	if err = h.publisher.Publish(ctx, order.OrderCreatedEventName, event); err != nil {
		// The order is already durable; only the announcement was lost.
		h.logger.ErrorContext(ctx, "order persisted but event publish failed",
			"orderId", newOrder.ID().String(), "error", err)
		return CreateOrderResponse{}, err
	}

	h.logger.InfoContext(ctx, "order created",
		"orderId", newOrder.ID().String(), "status", newOrder.Status().String())

	return CreateOrderResponse{
		ID:        newOrder.ID(),
		Status:    newOrder.Status(),
		CreatedAt: newOrder.CreatedAt(),
	}, nil
}
