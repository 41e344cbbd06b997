package http

import (
	"errors"
	"net/http"
	"time"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order tracking API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler

	// Query handlers
	getOrderStatusHandler   queries.GetOrderStatusQueryHandler
	getOrdersSummaryHandler queries.GetOrdersSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	getOrdersSummaryHandler queries.GetOrdersSummaryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		advanceOrderStatusHandler: advanceOrderStatusHandler,
		getOrderStatusHandler:     getOrderStatusHandler,
		getOrdersSummaryHandler:   getOrdersSummaryHandler,
	}
}

// RegisterRoutes attaches all order API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/summary", s.GetOrdersSummary)
	api.GET("/orders/:id", s.GetOrderStatus)
	api.PATCH("/orders/:id/status", s.AdvanceOrderStatus)
}

// ErrorResponse is the error body returned by every failing endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest optionally carries a caller-chosen order identifier.
type CreateOrderRequest struct {
	ID string `json:"id,omitempty"`
}

// CreateOrderResponse describes a newly created order.
type CreateOrderResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderStatusResponse describes the tracking state of an order.
type OrderStatusResponse struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	CanAdvance bool      `json:"canAdvance"`
}

// AdvanceOrderStatusResponse describes an accepted status transition.
type AdvanceOrderStatusResponse struct {
	ID             string    `json:"id"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// OrdersSummaryResponse holds order counts grouped by status.
type OrdersSummaryResponse struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
//
//	@Summary		Create order
//	@Description	Creates a new order in the created status. The identifier is generated unless one is supplied in the body.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		CreateOrderRequest	false	"Optional order identifier"
//	@Success		201		{object}	CreateOrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	var cmd commands.CreateOrderCommand
	if req.ID != "" {
		orderID, err := kernel.OrderIDFromString(req.ID)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid order identifier: "+err.Error())
		}
		var err2 error
		cmd, err2 = commands.NewCreateOrderCommandWithID(orderID)
		if err2 != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err2.Error())
		}
	} else {
		cmd = commands.NewCreateOrderCommand()
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:        result.ID.String(),
		Status:    result.Status.String(),
		CreatedAt: result.CreatedAt,
	})
}

// GetOrderStatus handles GET /api/v1/orders/:id - retrieves an order's tracking state.
//
//	@Summary		Get order status
//	@Description	Returns the current status, timestamps and whether the order can still advance.
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order identifier"
//	@Success		200	{object}	OrderStatusResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/orders/{id} [get]
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order identifier: "+err.Error())
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order identifier: "+err.Error())
	}

	result, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		ID:         result.ID.String(),
		Status:     result.Status.String(),
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
		CanAdvance: result.CanAdvance,
	})
}

// AdvanceOrderStatus handles PATCH /api/v1/orders/:id/status - advances an
// order to the next status in its lifecycle.
//
//	@Summary		Advance order status
//	@Description	Moves the order one step forward (created, processing, shipped, delivered). Delivered orders cannot advance.
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order identifier"
//	@Success		200	{object}	AdvanceOrderStatusResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/orders/{id}/status [patch]
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order identifier: "+err.Error())
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order identifier: "+err.Error())
	}

	result, err := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdvanceOrderStatusResponse{
		ID:             result.ID.String(),
		PreviousStatus: result.PreviousStatus.String(),
		NewStatus:      result.NewStatus.String(),
		UpdatedAt:      result.UpdatedAt,
	})
}

// GetOrdersSummary handles GET /api/v1/orders/summary - order counts by status.
//
//	@Summary		Get orders summary
//	@Description	Returns order counts grouped by status.
//	@Tags			orders
//	@Produce		json
//	@Success		200	{object}	OrdersSummaryResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/orders/summary [get]
func (s *Server) GetOrdersSummary(ctx echo.Context) error {
	result, err := s.getOrdersSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersSummaryQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	counts := make(map[string]int64, len(result.Counts))
	for _, sc := range result.Counts {
		counts[sc.Status] = sc.Count
	}

	return ctx.JSON(http.StatusOK, OrdersSummaryResponse{
		Counts: counts,
		Total:  result.Total,
	})
}

// mapError translates domain and application errors to HTTP status codes.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrCannotAdvance):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectConcurrentlyModified):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
