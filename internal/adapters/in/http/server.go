// Package http exposes the fulfillment workflow over a JSON API.
// It coordinates between HTTP handlers and application use cases and owns
// the mapping from domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// maxTransitionAttempts bounds the retry loop on optimistic-concurrency
// conflicts. Each attempt re-reads the order, so a retry either succeeds
// against the new state or fails for a real reason.
const maxTransitionAttempts = 3

// Server handles HTTP requests for the order fulfillment API.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	transitionOrderHandler      commands.TransitionOrderCommandHandler
	attachTrackingHandler       commands.AttachTrackingNumberCommandHandler
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	attachTrackingHandler commands.AttachTrackingNumberCommandHandler,
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		transitionOrderHandler:      transitionOrderHandler,
		attachTrackingHandler:       attachTrackingHandler,
		updateShipmentStatusHandler: updateShipmentStatusHandler,
		getOrderHandler:             getOrderHandler,
		getActiveOrdersHandler:      getActiveOrdersHandler,
	}
}

// RegisterRoutes wires the API endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.TransitionOrder)
	api.PATCH("/orders/:id/shipment/tracking", s.AttachTrackingNumber)
	api.PATCH("/orders/:id/shipment/status", s.UpdateShipmentStatus)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}

// CreateOrder handles POST /api/v1/orders - registers a new pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return badRequest(ctx, "Invalid buyer_id: "+err.Error())
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product_id: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, buyerID, productID, req.Quantity, req.PriceEach)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its shipment.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(resp))
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all orders
// still moving through the workflow.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	resp, err := s.getActiveOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderResponse, len(resp))
	for i, r := range resp {
		response[i] = orderResponseFromQuery(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles PATCH /api/v1/orders/:id/status - moves an order
// to the requested fulfillment status.
//
// Concurrency conflicts are retried up to maxTransitionAttempts times; the
// command re-reads the order on every attempt, so a transition made illegal
// by a concurrent winner is rejected, not replayed.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req TransitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	var info *order.ShipmentInfo
	if target == order.Shipped {
		info = &order.ShipmentInfo{
			CourierName:    req.CourierName,
			TrackingNumber: req.TrackingNumber,
		}
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, info)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	var updated *order.Order
	for attempt := 1; ; attempt++ {
		updated, err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
		if err == nil || !errors.Is(err, errs.ErrConcurrencyConflict) {
			break
		}
		if attempt == maxTransitionAttempts {
			break
		}
	}

	metrics.ObserveTransition(target.String(), transitionOutcome(err))
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// AttachTrackingNumber handles PATCH /api/v1/orders/:id/shipment/tracking -
// records a tracking number on the order's shipment.
func (s *Server) AttachTrackingNumber(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req AttachTrackingNumberRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAttachTrackingNumberCommand(orderID, req.TrackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid tracking data: "+err.Error())
	}

	updated, err := s.attachTrackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// UpdateShipmentStatus handles PATCH /api/v1/orders/:id/shipment/status -
// records the courier-reported sub-status on the order's shipment.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req UpdateShipmentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ShipmentStatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid shipment status: "+req.Status)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	updated, err := s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

func transitionOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, order.ErrInvalidTransition):
		return metrics.OutcomeRejected
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeError
	}
}

// domainError maps domain errors to HTTP responses.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, order.ErrInvalidTransition):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return jsonError(ctx, http.StatusConflict, "Order was modified concurrently, please retry")
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return jsonError(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return jsonError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return jsonError(ctx, http.StatusBadRequest, message)
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
