package ros

import "encoding/json"

// routeRequest is the optimization request the ROS accepts. Coordinates are
// fixed to the depot region until geocoding is available upstream.
type routeRequest struct {
	VehicleID         string            `json:"vehicle_id"`
	DeliveryAddresses []deliveryAddress `json:"delivery_addresses"`
	Priority          string            `json:"priority"`
	TotalWeight       float64           `json:"total_weight"`
}

type deliveryAddress struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	OrderID string  `json:"order_id"`
}

const (
	defaultVehicleID = "VEH001"
	depotLat         = 6.9271
	depotLng         = 79.8612
)

func newRouteRequest(orderID, address string, totalWeightKg float64) routeRequest {
	return routeRequest{
		VehicleID: defaultVehicleID,
		DeliveryAddresses: []deliveryAddress{
			{Address: address, Lat: depotLat, Lng: depotLng, OrderID: orderID},
		},
		Priority:    "normal",
		TotalWeight: totalWeightKg,
	}
}

// extractField digs the first of the given keys out of a JSON object body.
// Values are stringified; missing keys and non-object bodies yield "".
func extractField(body []byte, keys ...string) string {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return ""
	}
	for _, key := range keys {
		if value, ok := doc[key]; ok && value != nil {
			switch v := value.(type) {
			case string:
				return v
			case bool:
				if v {
					return "true"
				}
				return "false"
			case float64:
				return jsonNumber(v)
			default:
				raw, err := json.Marshal(v)
				if err != nil {
					continue
				}
				return string(raw)
			}
		}
	}
	return ""
}

func jsonNumber(v float64) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}
