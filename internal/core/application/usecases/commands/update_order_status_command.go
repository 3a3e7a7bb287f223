package commands

import (
	"errors"
	"strings"

	"swifthub/internal/pkg/errs"
	"swifthub/internal/pkg/guard"
)

// ErrUpdateOrderStatusCommandIsNotConstructed signals direct struct
// initialization.
var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// Scope names the backend system an update targets. ScopeAll fans the
// update out to every system.
type Scope string

const (
	ScopeAll Scope = ""
	ScopeCMS Scope = "cms"
	ScopeROS Scope = "ros"
	ScopeWMS Scope = "wms"
)

// UpdateOrderStatusCommand represents a request to push a status change to
// one backend system or to all of them.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	newStatus string
	scope     Scope

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status update command. The scope is
// case-insensitive; empty means all systems.
func NewUpdateOrderStatusCommand(orderID, newStatus, scope string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
		cmd.setScope(scope),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status changes.
func (c UpdateOrderStatusCommand) OrderID() string { return c.orderID }

// NewStatus returns the status to push, verbatim.
func (c UpdateOrderStatusCommand) NewStatus() string { return c.newStatus }

// TargetScope returns the system the update is aimed at.
func (c UpdateOrderStatusCommand) TargetScope() Scope { return c.scope }

func (c *UpdateOrderStatusCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus string) error {
	if newStatus == "" {
		return errs.NewValueIsRequiredError("status")
	}

	c.newStatus = newStatus
	return nil
}

func (c *UpdateOrderStatusCommand) setScope(scope string) error {
	switch Scope(strings.ToLower(scope)) {
	case ScopeAll, ScopeCMS, ScopeROS, ScopeWMS:
		c.scope = Scope(strings.ToLower(scope))
		return nil
	default:
		return errs.NewValueIsInvalidError("targetSystem")
	}
}
