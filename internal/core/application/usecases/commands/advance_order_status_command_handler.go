package commands

import (
	"context"
	"log/slog"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"
)

// AdvanceOrderStatusResponse is the result of a successful status advance.
type AdvanceOrderStatusResponse struct {
	ID             kernel.OrderID
	PreviousStatus order.Status
	NewStatus      order.Status
	UpdatedAt      time.Time
}

// AdvanceOrderStatusCommandHandler handles the business logic for advancing
// an order: load the aggregate, apply the single-step transition, persist
// the change conditionally on the previous status, then publish an
// OrderStatusChangedEvent.
//
// Failure ordering:
//   - a missing order or rejected transition short-circuits before any
//     side effect
//   - a persistence failure aborts before publication
//   - a publish failure after a committed write leaves storage ahead of the
//     event stream and surfaces the error; there is no outbox
//
// The conditional update resolves the read-modify-write race between
// concurrent advances of the same order: the loser fails with an
// ObjectConcurrentlyModifiedError instead of silently skipping a status.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advances.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "advance_order_status_handler"),
	}
}

// Handle processes the advance command.
func (h *AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
) (AdvanceOrderStatusResponse, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceOrderStatusResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceOrderStatusResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	trackedOrder, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AdvanceOrderStatusResponse{}, err
	}

	previousStatus := trackedOrder.Status()
	if err = trackedOrder.Advance(); err != nil {
		return AdvanceOrderStatusResponse{}, err
	}

	if err = repo.Update(ctx, trackedOrder, previousStatus); err != nil {
		return AdvanceOrderStatusResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceOrderStatusResponse{}, err
	}

	event := order.NewOrderStatusChangedEvent(trackedOrder.ID(), previousStatus, trackedOrder.Status())
	if err = h.publisher.Publish(ctx, order.OrderStatusChangedEventName, event); err != nil {
		// The status change is already durable; only the announcement was lost.
		h.logger.ErrorContext(ctx, "status change persisted but event publish failed",
			"orderId", trackedOrder.ID().String(), "error", err)
		return AdvanceOrderStatusResponse{}, err
	}

	h.logger.InfoContext(ctx, "order status advanced",
		"orderId", trackedOrder.ID().String(),
		"previousStatus", previousStatus.String(),
		"newStatus", trackedOrder.Status().String())

	return AdvanceOrderStatusResponse{
		ID:             trackedOrder.ID(),
		PreviousStatus: previousStatus,
		NewStatus:      trackedOrder.Status(),
		UpdatedAt:      trackedOrder.UpdatedAt(),
	}, nil
}
