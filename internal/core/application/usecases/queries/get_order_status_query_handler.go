package queries

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"swifthub/internal/core/domain/services"
	"swifthub/internal/core/ports"
)

// GetOrderStatusQueryHandler collects the order status from all three
// backend systems in parallel and reduces them to one canonical status.
// Gateways never fail status queries, so neither does the handler past
// validation.
type GetOrderStatusQueryHandler struct {
	clients   ports.ClientGateway
	routes    ports.RouteGateway
	warehouse ports.WarehouseGateway
	reducer   services.StatusReducer
	logger    *slog.Logger
}

// NewGetOrderStatusQueryHandler creates a handler wired to the three
// backend gateways and the canonical status reducer.
func NewGetOrderStatusQueryHandler(
	clients ports.ClientGateway,
	routes ports.RouteGateway,
	warehouse ports.WarehouseGateway,
	reducer services.StatusReducer,
	logger *slog.Logger,
) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{
		clients:   clients,
		routes:    routes,
		warehouse: warehouse,
		reducer:   reducer,
		logger:    logger.With("component", "order_status_handler"),
	}
}

// Handle queries the three systems concurrently and derives the canonical
// status from whatever they report.
func (h GetOrderStatusQueryHandler) Handle(ctx context.Context, query GetOrderStatusQuery) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	response := GetOrderStatusQueryResponse{OrderID: query.OrderID()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		response.CMSStatus = h.clients.OrderStatus(gctx, query.OrderID())
		return nil
	})
	g.Go(func() error {
		response.RouteStatus = h.routes.RouteStatus(gctx, query.OrderID())
		return nil
	})
	g.Go(func() error {
		response.PackageStatus = h.warehouse.PackageStatus(gctx, query.OrderID())
		return nil
	})
	_ = g.Wait()

	response.Canonical = h.reducer.Reduce(response.CMSStatus, response.RouteStatus, response.PackageStatus)
	response.Timestamp = time.Now().UnixMilli()

	h.logger.InfoContext(ctx, "order status consolidated",
		"order_id", query.OrderID(), "canonical", response.Canonical.String())

	return response, nil
}
