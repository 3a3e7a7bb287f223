package services

import "swifthub/internal/core/domain/model/status"

// StatusReducer reduces the three backend status vocabularies into one
// canonical order state.
type StatusReducer interface {
	Reduce(cms status.OrderStatus, route status.RouteStatus, pkg status.PackageStatus) status.Canonical
}

type statusReducer struct{}

// NewStatusReducer creates the canonical status reduction service.
func NewStatusReducer() StatusReducer {
	return &statusReducer{}
}

// Reduce applies a fixed precedence over the three inputs; the first
// matching rule wins. This is a priority rule, not a set union, and the
// rule order must not be reordered. The function is pure: the same inputs always
// produce the same canonical state.
func (r *statusReducer) Reduce(
	cms status.OrderStatus,
	route status.RouteStatus,
	pkg status.PackageStatus,
) status.Canonical {
	switch {
	case pkg == status.PackageDelivered || route == status.RouteCompleted:
		return status.CanonicalDelivered
	case route == status.RouteInProgress || pkg == status.PackageLoaded:
		return status.CanonicalInTransit
	case cms == status.OrderConfirmed && pkg == status.PackageReadyForLoading:
		return status.CanonicalReadyForDispatch
	case cms == status.OrderProcessing || pkg == status.PackageProcessing:
		return status.CanonicalProcessing
	case cms == status.OrderPending:
		return status.CanonicalPending
	case cms == status.OrderCancelled || route == status.RouteCancelled:
		return status.CanonicalCancelled
	default:
		return status.CanonicalUnknown
	}
}
