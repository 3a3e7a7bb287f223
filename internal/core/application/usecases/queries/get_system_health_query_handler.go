package queries

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"swifthub/internal/core/ports"
)

const (
	// StatusUp marks a backend that answered its health probe.
	StatusUp = "UP"
	// StatusDown marks a backend that did not.
	StatusDown = "DOWN"
)

// GetSystemHealthQueryHandler probes the three backend systems in parallel.
type GetSystemHealthQueryHandler struct {
	clients   ports.ClientGateway
	routes    ports.RouteGateway
	warehouse ports.WarehouseGateway
	logger    *slog.Logger
}

// NewGetSystemHealthQueryHandler creates a handler wired to the three
// backend gateways.
func NewGetSystemHealthQueryHandler(
	clients ports.ClientGateway,
	routes ports.RouteGateway,
	warehouse ports.WarehouseGateway,
	logger *slog.Logger,
) GetSystemHealthQueryHandler {
	return GetSystemHealthQueryHandler{
		clients:   clients,
		routes:    routes,
		warehouse: warehouse,
		logger:    logger.With("component", "system_health_handler"),
	}
}

// Handle probes every backend concurrently and reports per-system and
// overall liveness.
func (h GetSystemHealthQueryHandler) Handle(ctx context.Context, query GetSystemHealthQuery) (GetSystemHealthQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSystemHealthQueryResponse{}, err
	}

	response := GetSystemHealthQueryResponse{
		Systems: make(map[string]string, 3),
		Overall: StatusUp,
	}

	var mu sync.Mutex
	record := func(system string, healthy bool) {
		mu.Lock()
		defer mu.Unlock()
		if healthy {
			response.Systems[system] = StatusUp
			return
		}
		response.Systems[system] = StatusDown
		response.Overall = StatusDown
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		record("CMS", h.clients.IsHealthy(gctx))
		return nil
	})
	g.Go(func() error {
		record("ROS", h.routes.IsHealthy(gctx))
		return nil
	})
	g.Go(func() error {
		record("WMS", h.warehouse.IsHealthy(gctx))
		return nil
	})
	_ = g.Wait()

	response.Timestamp = time.Now().UnixMilli()

	if response.Overall == StatusDown {
		h.logger.WarnContext(ctx, "backend health degraded", "systems", response.Systems)
	}

	return response, nil
}
