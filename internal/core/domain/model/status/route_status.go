package status

import "strings"

// RouteStatus is the ROS route status vocabulary.
type RouteStatus int

const (
	// RouteUnrecognized represents any ROS status string outside the
	// known vocabulary, including the empty string.
	RouteUnrecognized RouteStatus = iota
	RoutePlanned
	RouteInProgress
	RouteCompleted
	RouteCancelled
)

func routeStatusStrings() map[RouteStatus]string {
	return map[RouteStatus]string{
		RoutePlanned:    "planned",
		RouteInProgress: "in_progress",
		RouteCompleted:  "completed",
		RouteCancelled:  "cancelled",
	}
}

// ParseRouteStatus maps a raw ROS status string into the vocabulary,
// case-insensitively. Unrecognized input yields RouteUnrecognized.
func ParseRouteStatus(raw string) RouteStatus {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for s, str := range routeStatusStrings() {
		if str == normalized {
			return s
		}
	}
	return RouteUnrecognized
}

// String returns the ROS spelling of the status, or "unknown" for
// unrecognized values.
func (s RouteStatus) String() string {
	if str, ok := routeStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
