// Package http exposes the order workflows over REST. It translates
// transport concerns into commands and queries and maps the error taxonomy
// onto HTTP statuses: validation failures are 400, everything the
// orchestrator absorbs stays 200 with degradation visible in the body.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"swifthub/internal/core/application/usecases/commands"
	"swifthub/internal/core/application/usecases/queries"
	"swifthub/internal/core/domain/model/order"
	"swifthub/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	orderStatusHandler  queries.GetOrderStatusQueryHandler
	systemHealthHandler queries.GetSystemHealthQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	orderStatusHandler queries.GetOrderStatusQueryHandler,
	systemHealthHandler queries.GetSystemHealthQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		updateStatusHandler: updateStatusHandler,
		cancelOrderHandler:  cancelOrderHandler,
		orderStatusHandler:  orderStatusHandler,
		systemHealthHandler: systemHealthHandler,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:orderId/status", s.GetOrderStatus)
	e.PUT("/orders/:orderId/status", s.UpdateOrderStatus)
	e.DELETE("/orders/cancel", s.CancelOrder)
	e.GET("/health", s.GetHealth)
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one line item of an incoming order.
type OrderItemRequest struct {
	ItemID      string  `json:"itemId"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	WeightKg    float64 `json:"weightKg"`
}

// CreateOrderRequest is the incoming order payload.
type CreateOrderRequest struct {
	OrderID         string             `json:"orderId"`
	ClientID        string             `json:"clientId"`
	PickupAddress   string             `json:"pickupAddress"`
	DeliveryAddress string             `json:"deliveryAddress"`
	RecipientName   string             `json:"recipientName"`
	RecipientPhone  string             `json:"recipientPhone"`
	Notes           string             `json:"notes"`
	TotalWeight     float64            `json:"totalWeight"`
	TotalItems      int                `json:"totalItems"`
	Items           []OrderItemRequest `json:"items"`
}

// CreateOrderResponse reports the orchestration outcome per system.
type CreateOrderResponse struct {
	OrderID          string          `json:"orderId"`
	Success          bool            `json:"success"`
	ClientValidation string          `json:"clientValidation"`
	CMSOrderID       string          `json:"cmsOrderId,omitempty"`
	RouteID          string          `json:"routeId,omitempty"`
	PackageID        string          `json:"packageId,omitempty"`
	Registrations    map[string]bool `json:"registrations"`
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, it := range req.Items {
		item, err := order.NewItem(it.ItemID, it.Description, it.Quantity, it.WeightKg)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid order item: " + err.Error(),
			})
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.OrderID, req.ClientID, req.PickupAddress, req.DeliveryAddress,
		req.RecipientName, req.RecipientPhone, items, req.Notes,
		req.TotalWeight, req.TotalItems,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CreateOrderResponse{
		OrderID:          result.OrderID,
		Success:          result.Success,
		ClientValidation: result.ClientValidation,
		CMSOrderID:       result.CMSOrderID,
		RouteID:          result.RouteID,
		PackageID:        result.PackageID,
		Registrations:    result.Registrations,
	})
}

// OrderStatusResponse is the consolidated status body.
type OrderStatusResponse struct {
	OrderID       string `json:"orderId"`
	CMSStatus     string `json:"cmsStatus"`
	RouteStatus   string `json:"routeStatus"`
	PackageStatus string `json:"packageStatus"`
	OverallStatus string `json:"overallStatus"`
	Timestamp     int64  `json:"timestamp"`
}

// GetOrderStatus handles GET /orders/:orderId/status.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	query, err := queries.NewGetOrderStatusQuery(ctx.Param("orderId"))
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	response, err := s.orderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID:       response.OrderID,
		CMSStatus:     response.CMSStatus.String(),
		RouteStatus:   response.RouteStatus.String(),
		PackageStatus: response.PackageStatus.String(),
		OverallStatus: response.Canonical.String(),
		Timestamp:     response.Timestamp,
	})
}

// UpdateStatusRequest is the incoming status update payload.
type UpdateStatusRequest struct {
	Status       string `json:"status"`
	TargetSystem string `json:"targetSystem"`
}

// UpdateStatusResponse carries the per-system acknowledgements.
type UpdateStatusResponse struct {
	OrderID string            `json:"orderId"`
	Status  string            `json:"status"`
	Results map[string]string `json:"results"`
}

// UpdateOrderStatus handles PUT /orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("orderId"), req.Status, req.TargetSystem)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	result, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UpdateStatusResponse{
		OrderID: result.OrderID,
		Status:  result.Status,
		Results: result.Acks,
	})
}

// CancelOrderResponse carries the per-system cancellation outcomes.
type CancelOrderResponse struct {
	OrderID string            `json:"orderId"`
	Success bool              `json:"success"`
	Results map[string]string `json:"results"`
}

// CancelOrder handles DELETE /orders/cancel?orderId=.
func (s *Server) CancelOrder(ctx echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(ctx.QueryParam("orderId"))
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	result, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CancelOrderResponse{
		OrderID: result.OrderID,
		Success: result.Success,
		Results: result.Acks,
	})
}

// HealthResponse reports per-backend and overall liveness.
type HealthResponse struct {
	Status    string            `json:"status"`
	Systems   map[string]string `json:"systems"`
	Timestamp int64             `json:"timestamp"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	response, err := s.systemHealthHandler.Handle(ctx.Request().Context(), queries.NewGetSystemHealthQuery())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, HealthResponse{
		Status:    response.Overall,
		Systems:   response.Systems,
		Timestamp: response.Timestamp,
	})
}

func (s *Server) errorJSON(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
