// Package event defines the lifecycle event payload fanned out to the
// subscriber topics after an order is created or cancelled. Events are
// best-effort: they are neither retried nor persisted when publication
// fails.
package event

import "time"

// Kind identifies the lifecycle transition the event describes.
type Kind string

const (
	OrderCreated   Kind = "ORDER_CREATED"
	OrderCancelled Kind = "ORDER_CANCELLED"
)

// Lifecycle is the payload published to every destination topic. The same
// payload shape goes to all four topics; only the routing key differs.
type Lifecycle struct {
	EventType        Kind           `json:"eventType"`
	OrderID          string         `json:"orderId"`
	ClientID         string         `json:"clientId,omitempty"`
	DeliveryAddress  string         `json:"deliveryAddress,omitempty"`
	PickupAddress    string         `json:"pickupAddress,omitempty"`
	ProcessingResult map[string]any `json:"processingResult"`
	Timestamp        int64          `json:"timestamp"`
	Source           string         `json:"source"`
}

// NewOrderCreated builds an ORDER_CREATED event carrying the orchestration
// result for the given order.
func NewOrderCreated(orderID, clientID, deliveryAddress, pickupAddress string, result map[string]any) Lifecycle {
	return Lifecycle{
		EventType:        OrderCreated,
		OrderID:          orderID,
		ClientID:         clientID,
		DeliveryAddress:  deliveryAddress,
		PickupAddress:    pickupAddress,
		ProcessingResult: result,
		Timestamp:        time.Now().UnixMilli(),
		Source:           "ESB",
	}
}

// NewOrderCancelled builds an ORDER_CANCELLED event carrying the per-system
// cancellation outcomes.
func NewOrderCancelled(orderID string, result map[string]any) Lifecycle {
	return Lifecycle{
		EventType:        OrderCancelled,
		OrderID:          orderID,
		ProcessingResult: result,
		Timestamp:        time.Now().UnixMilli(),
		Source:           "ESB",
	}
}
