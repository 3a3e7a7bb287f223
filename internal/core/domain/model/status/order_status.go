package status

import "strings"

// OrderStatus is the CMS order status vocabulary.
type OrderStatus int

const (
	// OrderUnrecognized represents any CMS status string outside the
	// known vocabulary, including the empty string.
	OrderUnrecognized OrderStatus = iota
	OrderPending
	OrderConfirmed
	OrderProcessing
	OrderShipped
	OrderDelivered
	OrderCancelled
)

func orderStatusStrings() map[OrderStatus]string {
	return map[OrderStatus]string{
		OrderPending:    "pending",
		OrderConfirmed:  "confirmed",
		OrderProcessing: "processing",
		OrderShipped:    "shipped",
		OrderDelivered:  "delivered",
		OrderCancelled:  "cancelled",
	}
}

// ParseOrderStatus maps a raw CMS status string into the vocabulary,
// case-insensitively. Unrecognized input yields OrderUnrecognized.
func ParseOrderStatus(raw string) OrderStatus {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for s, str := range orderStatusStrings() {
		if str == normalized {
			return s
		}
	}
	return OrderUnrecognized
}

// String returns the CMS spelling of the status, or "unknown" for
// unrecognized values.
func (s OrderStatus) String() string {
	if str, ok := orderStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
