package commands

import (
	"context"
	"log/slog"

	"swifthub/internal/core/ports"
)

// UpdateOrderStatusResult carries the per-system acknowledgements of a
// status update. Systems outside the requested scope are absent.
type UpdateOrderStatusResult struct {
	OrderID string
	Status  string
	Acks    map[string]string
}

// UpdateOrderStatusCommandHandler pushes a status change to the backend
// systems named by the command's scope. Gateways degrade to local
// acknowledgements on their own, so the handler never fails past
// validation.
type UpdateOrderStatusCommandHandler struct {
	clients   ports.ClientGateway
	routes    ports.RouteGateway
	warehouse ports.WarehouseGateway
	logger    *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler wired to the three
// backend gateways.
func NewUpdateOrderStatusCommandHandler(
	clients ports.ClientGateway,
	routes ports.RouteGateway,
	warehouse ports.WarehouseGateway,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		clients:   clients,
		routes:    routes,
		warehouse: warehouse,
		logger:    logger.With("component", "update_status_handler"),
	}
}

// Handle pushes the status to each in-scope system and collects the
// acknowledgements.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (UpdateOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	result := UpdateOrderStatusResult{
		OrderID: cmd.OrderID(),
		Status:  cmd.NewStatus(),
		Acks:    make(map[string]string, 3),
	}

	scope := cmd.TargetScope()
	if scope == ScopeAll || scope == ScopeCMS {
		result.Acks["CMS"] = h.clients.UpdateOrderStatus(ctx, cmd.OrderID(), cmd.NewStatus())
	}
	if scope == ScopeAll || scope == ScopeROS {
		result.Acks["ROS"] = h.routes.UpdateRouteStatus(ctx, cmd.OrderID(), cmd.NewStatus())
	}
	if scope == ScopeAll || scope == ScopeWMS {
		result.Acks["WMS"] = h.warehouse.UpdatePackageStatus(ctx, cmd.OrderID(), cmd.NewStatus())
	}

	h.logger.InfoContext(ctx, "status update applied",
		"order_id", cmd.OrderID(), "status", cmd.NewStatus(), "systems", len(result.Acks))

	return result, nil
}
