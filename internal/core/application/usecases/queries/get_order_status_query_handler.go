package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler retrieves the tracking state of an order
// directly from the database. Read-only, no side effects.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError carrying the
// requested identifier when the order does not exist.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		rawID     string
		rawStatus string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&rawID, &rawStatus, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderStatusQueryResponse{},
				errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return GetOrderStatusQueryResponse{}, err
	}

	orderID, err := kernel.OrderIDFromString(rawID)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return GetOrderStatusQueryResponse{
		ID:         orderID,
		Status:     status,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		CanAdvance: status.CanAdvance(),
	}, nil
}
