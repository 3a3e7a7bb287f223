// Package ports defines the interfaces between the orchestration core and
// the outside world: one gateway per backend system, the correlation store,
// and the lifecycle event publisher.
//
// Gateway contract shared by all three backends: every call performs one
// conversation per attempt with a bounded timeout, and calls are stateless
// across invocations (the warehouse gateway additionally consults the
// correlation store). Status queries never return a transport error: the
// gateway resolves retry-across-shape and then a deterministic fallback
// internally. Create and cancel calls do return errors, which the
// orchestration layer records as per-system failure flags.
package ports

import (
	"context"

	"swifthub/internal/core/domain/model/order"
	"swifthub/internal/core/domain/model/status"
)

// ClientGateway talks SOAP to the client-management system.
type ClientGateway interface {
	// ValidateClient fetches client data and reports whether the client is
	// valid. The returned string is the client description used in
	// responses. An error means the client must be rejected.
	ValidateClient(ctx context.Context, clientID string) (string, error)

	// CreateOrder registers the order and returns the CMS order identifier.
	CreateOrder(ctx context.Context, o *order.DeliveryOrder) (string, error)

	// OrderStatus returns the CMS order status, falling back to a
	// deterministic placeholder when the backend is unreachable.
	OrderStatus(ctx context.Context, orderID string) status.OrderStatus

	// UpdateOrderStatus applies a status update and returns an
	// acknowledgement. It degrades to a locally derived acknowledgement
	// rather than failing.
	UpdateOrderStatus(ctx context.Context, orderID, newStatus string) string

	// CancelOrder cancels the order in the CMS.
	CancelOrder(ctx context.Context, orderID string) (string, error)

	// IsHealthy probes the backend with a bounded timeout.
	IsHealthy(ctx context.Context) bool
}

// RouteGateway talks JSON/REST to the route-optimization system.
type RouteGateway interface {
	// CreateRoute requests an optimized route for the order and returns the
	// route identifier.
	CreateRoute(ctx context.Context, orderID, deliveryAddress string, totalWeightKg float64) (string, error)

	// RouteStatus returns the route status, falling back to a deterministic
	// placeholder when every candidate endpoint fails.
	RouteStatus(ctx context.Context, orderID string) status.RouteStatus

	// UpdateRouteStatus applies a status update and returns an
	// acknowledgement, degrading locally rather than failing.
	UpdateRouteStatus(ctx context.Context, orderID, newStatus string) string

	// CancelRoute cancels the order's route.
	CancelRoute(ctx context.Context, orderID string) (string, error)

	// IsHealthy probes the backend with a bounded timeout.
	IsHealthy(ctx context.Context) bool
}

// WarehouseGateway talks the binary TCP protocol to the warehouse-management
// system. It owns the correlation store: package registration records the
// order→package mapping consulted by later cancel calls.
type WarehouseGateway interface {
	// RegisterPackage registers the order's package and returns the
	// warehouse package identifier.
	RegisterPackage(ctx context.Context, o *order.DeliveryOrder) (string, error)

	// PackageStatus returns the package status, falling back to a
	// deterministic placeholder when the backend is unreachable.
	PackageStatus(ctx context.Context, orderID string) status.PackageStatus

	// UpdatePackageStatus applies a status update and returns an
	// acknowledgement, degrading locally rather than failing.
	UpdatePackageStatus(ctx context.Context, orderID, newStatus string) string

	// CancelPackage cancels the package registered for the order, resolving
	// the package identifier through the correlation store.
	CancelPackage(ctx context.Context, orderID string) (string, error)

	// IsHealthy probes the backend with a bounded timeout.
	IsHealthy(ctx context.Context) bool
}
