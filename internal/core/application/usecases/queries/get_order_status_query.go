package queries

import (
	"errors"

	"swifthub/internal/core/domain/model/status"
	"swifthub/internal/pkg/errs"
	"swifthub/internal/pkg/guard"
)

// ErrGetOrderStatusQueryIsNotConstructed signals direct struct
// initialization.
var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the consolidated status of an order across
// the client, routing and warehouse systems.
//
// Example:
//
//	query, err := NewGetOrderStatusQuery("ORD-1")
//	if err != nil {
//	    return err
//	}
//	response, _ := handler.Handle(ctx, query)
//	fmt.Println(response.Canonical)
type GetOrderStatusQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a status query for the given order.
func NewGetOrderStatusQuery(orderID string) (GetOrderStatusQuery, error) {
	if orderID == "" {
		return GetOrderStatusQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the order whose status is queried.
func (q GetOrderStatusQuery) OrderID() string { return q.orderID }

// GetOrderStatusQueryResponse carries the three per-system statuses and the
// canonical status derived from them.
type GetOrderStatusQueryResponse struct {
	OrderID       string
	CMSStatus     status.OrderStatus
	RouteStatus   status.RouteStatus
	PackageStatus status.PackageStatus
	Canonical     status.Canonical
	Timestamp     int64
}
