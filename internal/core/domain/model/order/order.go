package order

import (
	"errors"
	"fmt"

	"swifthub/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIsNotConstructed is returned when a DeliveryOrder instance was not
// created through the NewDeliveryOrder factory method.
var ErrOrderIsNotConstructed = errors.New("DeliveryOrder must be created via NewDeliveryOrder constructor")

// DeliveryOrder is the canonical order request flowing through the hub.
// It is constructed by the inbound adapter from whatever representation
// arrives, consumed by the orchestration handlers, and never persisted.
//
// Invariants:
//   - Client identifier and delivery address are required
//   - Items are immutable once set; quantities and unit weights are non-negative
//   - Total weight and item count are derived from items when not supplied
//   - An order identifier is generated when the caller omits one
type DeliveryOrder struct {
	orderID         string
	clientID        string
	pickupAddress   string
	deliveryAddress string
	recipientName   string
	recipientPhone  string
	items           []Item
	notes           string
	totalWeightKg   float64
	totalItems      int
	metadata        map[string]any

	isConstructed bool
}

// NewDeliveryOrder creates a validated DeliveryOrder. An empty orderID is
// replaced with a generated "ORD-<uuid>" identifier. When totalWeightKg or
// totalItems are zero they are derived from the item list.
func NewDeliveryOrder(
	orderID string,
	clientID string,
	pickupAddress string,
	deliveryAddress string,
	recipientName string,
	recipientPhone string,
	items []Item,
	notes string,
	totalWeightKg float64,
	totalItems int,
) (*DeliveryOrder, error) {
	if clientID == "" {
		return nil, errs.NewValueIsRequiredError("clientId")
	}
	if deliveryAddress == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if totalWeightKg < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalWeight",
			fmt.Errorf("%v is not greater or equal to 0", totalWeightKg))
	}
	if totalItems < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalItems",
			fmt.Errorf("%d is not greater or equal to 0", totalItems))
	}

	if orderID == "" {
		orderID = "ORD-" + uuid.NewString()
	}

	o := &DeliveryOrder{
		orderID:         orderID,
		clientID:        clientID,
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
		recipientName:   recipientName,
		recipientPhone:  recipientPhone,
		items:           append([]Item(nil), items...),
		notes:           notes,
		totalWeightKg:   totalWeightKg,
		totalItems:      totalItems,
		metadata:        make(map[string]any),
		isConstructed:   true,
	}

	if o.totalWeightKg == 0 {
		for _, item := range o.items {
			o.totalWeightKg += float64(item.Quantity()) * item.UnitWeightKg()
		}
	}
	if o.totalItems == 0 {
		for _, item := range o.items {
			o.totalItems += item.Quantity()
		}
	}

	return o, nil
}

// Validate ensures the order was created through NewDeliveryOrder.
func (o *DeliveryOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// OrderID returns the order identifier.
func (o *DeliveryOrder) OrderID() string {
	return o.orderID
}

// ClientID returns the client identifier.
func (o *DeliveryOrder) ClientID() string {
	return o.clientID
}

// PickupAddress returns the pickup address.
func (o *DeliveryOrder) PickupAddress() string {
	return o.pickupAddress
}

// DeliveryAddress returns the delivery address.
func (o *DeliveryOrder) DeliveryAddress() string {
	return o.deliveryAddress
}

// RecipientName returns the recipient's name.
func (o *DeliveryOrder) RecipientName() string {
	return o.recipientName
}

// RecipientPhone returns the recipient's phone number.
func (o *DeliveryOrder) RecipientPhone() string {
	return o.recipientPhone
}

// Items returns a copy of the ordered item list.
func (o *DeliveryOrder) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Notes returns the free-text order notes.
func (o *DeliveryOrder) Notes() string {
	return o.notes
}

// TotalWeightKg returns the total order weight in kilograms.
func (o *DeliveryOrder) TotalWeightKg() float64 {
	return o.totalWeightKg
}

// TotalItems returns the total ordered item count.
func (o *DeliveryOrder) TotalItems() int {
	return o.totalItems
}

// SetMetadata attaches an enrichment value (e.g., a computed route id)
// to the order.
func (o *DeliveryOrder) SetMetadata(key string, value any) {
	o.metadata[key] = value
}

// Metadata returns the enrichment value stored under key.
func (o *DeliveryOrder) Metadata(key string) (any, bool) {
	v, ok := o.metadata[key]
	return v, ok
}
