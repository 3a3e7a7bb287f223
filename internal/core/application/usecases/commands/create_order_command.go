package commands

import (
	"errors"

	"swifthub/internal/core/domain/model/order"
	"swifthub/internal/pkg/errs"
	"swifthub/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed signals direct struct initialization.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a delivery order
// across the client, routing and warehouse systems.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("", "CLIENT001", "10 Depot Rd", "221B Baker St",
//	    "John Watson", "0771234567", nil, "fragile", 2.5, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         string
	clientID        string
	pickupAddress   string
	deliveryAddress string
	recipientName   string
	recipientPhone  string
	items           []order.Item
	notes           string
	totalWeightKg   float64
	totalItems      int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a delivery order.
// An empty orderID means one will be generated. Client id and delivery
// address are required; weight and item count must not be negative.
func NewCreateOrderCommand(
	orderID, clientID, pickupAddress, deliveryAddress, recipientName, recipientPhone string,
	items []order.Item, notes string, totalWeightKg float64, totalItems int,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderID:        orderID,
		pickupAddress:  pickupAddress,
		recipientName:  recipientName,
		recipientPhone: recipientPhone,
		items:          append([]order.Item(nil), items...),
		notes:          notes,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setTotalWeightKg(totalWeightKg),
		cmd.setTotalItems(totalItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the caller-supplied order identifier, empty when one
// should be generated.
func (c CreateOrderCommand) OrderID() string { return c.orderID }

// ClientID returns the identifier of the client placing the order.
func (c CreateOrderCommand) ClientID() string { return c.clientID }

// PickupAddress returns the pickup address.
func (c CreateOrderCommand) PickupAddress() string { return c.pickupAddress }

// DeliveryAddress returns the delivery destination address.
func (c CreateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// RecipientName returns the recipient name.
func (c CreateOrderCommand) RecipientName() string { return c.recipientName }

// RecipientPhone returns the recipient phone number.
func (c CreateOrderCommand) RecipientPhone() string { return c.recipientPhone }

// Items returns the line items of the order.
func (c CreateOrderCommand) Items() []order.Item { return append([]order.Item(nil), c.items...) }

// Notes returns free-form delivery notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// TotalWeightKg returns the declared total weight.
func (c CreateOrderCommand) TotalWeightKg() float64 { return c.totalWeightKg }

// TotalItems returns the declared item count.
func (c CreateOrderCommand) TotalItems() int { return c.totalItems }

func (c *CreateOrderCommand) setClientID(clientID string) error {
	if clientID == "" {
		return errs.NewValueIsRequiredError("clientId")
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setTotalWeightKg(totalWeightKg float64) error {
	if totalWeightKg < 0 {
		return errs.NewValueIsInvalidError("totalWeight")
	}

	c.totalWeightKg = totalWeightKg
	return nil
}

func (c *CreateOrderCommand) setTotalItems(totalItems int) error {
	if totalItems < 0 {
		return errs.NewValueIsInvalidError("totalItems")
	}

	c.totalItems = totalItems
	return nil
}
