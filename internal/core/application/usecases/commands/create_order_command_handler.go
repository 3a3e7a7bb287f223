package commands

import (
	"context"
	"log/slog"

	"swifthub/internal/core/domain/model/event"
	"swifthub/internal/core/domain/model/order"
	"swifthub/internal/core/ports"
	"swifthub/internal/pkg/errs"
)

// registrationQuorum is the number of backend systems that must accept the
// order for the creation to count as successful.
const registrationQuorum = 2

// CreateOrderResult reports what each backend system did with the order.
type CreateOrderResult struct {
	OrderID          string
	ClientValidation string
	CMSOrderID       string
	RouteID          string
	PackageID        string
	Registrations    map[string]bool
	Success          bool
}

// CreateOrderCommandHandler orchestrates order creation: client validation
// gates the workflow, then the order is registered with the CMS, the
// routing system and the warehouse. Individual registration failures are
// tolerated as long as a quorum of systems accepts.
type CreateOrderCommandHandler struct {
	clients   ports.ClientGateway
	routes    ports.RouteGateway
	warehouse ports.WarehouseGateway
	events    ports.EventPublisher
	logger    *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler wired to the three backend
// gateways and the lifecycle event publisher.
func NewCreateOrderCommandHandler(
	clients ports.ClientGateway,
	routes ports.RouteGateway,
	warehouse ports.WarehouseGateway,
	events ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		clients:   clients,
		routes:    routes,
		warehouse: warehouse,
		events:    events,
		logger:    logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command. Client validation failures
// reject the order before any side effects. Registrations run in sequence;
// the result records which systems accepted, and Success requires at least
// two of the three.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	clientName, err := h.clients.ValidateClient(ctx, cmd.ClientID())
	if err != nil {
		return CreateOrderResult{}, errs.NewValueIsInvalidErrorWithCause("clientId", err)
	}

	o, err := order.NewDeliveryOrder(
		cmd.OrderID(), cmd.ClientID(), cmd.PickupAddress(), cmd.DeliveryAddress(),
		cmd.RecipientName(), cmd.RecipientPhone(), cmd.Items(), cmd.Notes(),
		cmd.TotalWeightKg(), cmd.TotalItems(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	result := CreateOrderResult{
		OrderID:          o.OrderID(),
		ClientValidation: clientName,
		Registrations:    make(map[string]bool, 3),
	}

	result.CMSOrderID, result.Registrations["CMS"] = h.registerWithCMS(ctx, o)
	result.RouteID, result.Registrations["ROS"] = h.registerWithROS(ctx, o)
	result.PackageID, result.Registrations["WMS"] = h.registerWithWMS(ctx, o)

	accepted := 0
	for _, ok := range result.Registrations {
		if ok {
			accepted++
		}
	}
	result.Success = accepted >= registrationQuorum

	h.logger.InfoContext(ctx, "order creation finished",
		"order_id", result.OrderID, "accepted", accepted, "success", result.Success)

	if result.Success {
		h.events.Publish(ctx, event.NewOrderCreated(
			o.OrderID(), o.ClientID(), o.DeliveryAddress(), o.PickupAddress(),
			map[string]any{
				"cmsOrderId":    result.CMSOrderID,
				"routeId":       result.RouteID,
				"packageId":     result.PackageID,
				"registrations": result.Registrations,
			},
		))
	}

	return result, nil
}

func (h *CreateOrderCommandHandler) registerWithCMS(ctx context.Context, o *order.DeliveryOrder) (string, bool) {
	id, err := h.clients.CreateOrder(ctx, o)
	if err != nil {
		h.logger.WarnContext(ctx, "cms rejected order", "order_id", o.OrderID(), "error", err)
		return "", false
	}
	return id, true
}

func (h *CreateOrderCommandHandler) registerWithROS(ctx context.Context, o *order.DeliveryOrder) (string, bool) {
	id, err := h.routes.CreateRoute(ctx, o.OrderID(), o.DeliveryAddress(), o.TotalWeightKg())
	if err != nil {
		h.logger.WarnContext(ctx, "ros rejected order", "order_id", o.OrderID(), "error", err)
		return "", false
	}
	return id, true
}

func (h *CreateOrderCommandHandler) registerWithWMS(ctx context.Context, o *order.DeliveryOrder) (string, bool) {
	id, err := h.warehouse.RegisterPackage(ctx, o)
	if err != nil {
		h.logger.WarnContext(ctx, "wms rejected order", "order_id", o.OrderID(), "error", err)
		return "", false
	}
	return id, true
}
