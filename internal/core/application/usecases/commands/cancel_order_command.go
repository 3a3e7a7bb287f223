package commands

import (
	"errors"

	"swifthub/internal/pkg/errs"
	"swifthub/internal/pkg/guard"
)

// ErrCancelOrderCommandIsNotConstructed signals direct struct
// initialization.
var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order in every
// backend system.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command for the given order.
func NewCancelOrderCommand(orderID string) (CancelOrderCommand, error) {
	if orderID == "" {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return CancelOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() string { return c.orderID }
