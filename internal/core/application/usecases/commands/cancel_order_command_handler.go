package commands

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"swifthub/internal/core/domain/model/event"
	"swifthub/internal/core/ports"
)

// CancelOrderResult carries the per-system cancellation outcomes. A system
// that could not be reached reports its error text instead of an
// acknowledgement, and the overall cancellation still succeeds.
type CancelOrderResult struct {
	OrderID string
	Acks    map[string]string
	Success bool
}

// CancelOrderCommandHandler cancels an order in the client, routing and
// warehouse systems concurrently. Cancellation is best effort per system
// and always succeeds overall.
type CancelOrderCommandHandler struct {
	clients   ports.ClientGateway
	routes    ports.RouteGateway
	warehouse ports.WarehouseGateway
	events    ports.EventPublisher
	logger    *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler wired to the three backend
// gateways and the lifecycle event publisher.
func NewCancelOrderCommandHandler(
	clients ports.ClientGateway,
	routes ports.RouteGateway,
	warehouse ports.WarehouseGateway,
	events ports.EventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		clients:   clients,
		routes:    routes,
		warehouse: warehouse,
		events:    events,
		logger:    logger.With("component", "cancel_order_handler"),
	}
}

// Handle cancels the order in all three systems concurrently and publishes
// the lifecycle event with the collected outcomes.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (CancelOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CancelOrderResult{}, err
	}

	result := CancelOrderResult{
		OrderID: cmd.OrderID(),
		Acks:    make(map[string]string, 3),
		Success: true,
	}

	var mu sync.Mutex
	record := func(system, ack string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			result.Acks[system] = "cancellation failed: " + err.Error()
			return
		}
		result.Acks[system] = ack
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ack, err := h.clients.CancelOrder(gctx, cmd.OrderID())
		record("CMS", ack, err)
		return nil
	})
	g.Go(func() error {
		ack, err := h.routes.CancelRoute(gctx, cmd.OrderID())
		record("ROS", ack, err)
		return nil
	})
	g.Go(func() error {
		ack, err := h.warehouse.CancelPackage(gctx, cmd.OrderID())
		record("WMS", ack, err)
		return nil
	})
	_ = g.Wait()

	h.logger.InfoContext(ctx, "order cancellation finished", "order_id", cmd.OrderID())

	h.events.Publish(ctx, event.NewOrderCancelled(cmd.OrderID(), map[string]any{
		"cms": result.Acks["CMS"],
		"ros": result.Acks["ROS"],
		"wms": result.Acks["WMS"],
	}))

	return result, nil
}
