// Package ros is the REST gateway to the route-optimization system. ROS
// deployments expose the same operations under differing paths, so every
// operation walks a candidate URL list and takes the first answer.
package ros

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"swifthub/internal/core/domain/model/status"
	"swifthub/internal/core/ports"
	"swifthub/internal/pkg/chain"
)

const healthTimeout = 3 * time.Second

// Gateway implements ports.RouteGateway over JSON/HTTP.
type Gateway struct {
	baseURL string
	client  *http.Client
	health  *http.Client
	logger  *slog.Logger
}

var _ ports.RouteGateway = (*Gateway)(nil)

// NewGateway creates a ROS gateway rooted at baseURL (no trailing slash
// needed). Conversations are bounded by timeout; health probes by a fixed 3s.
func NewGateway(baseURL string, timeout time.Duration, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		health:  &http.Client{Timeout: healthTimeout},
		logger:  logger.With("component", "ros_gateway"),
	}
}

// CreateRoute submits the delivery for route optimization and returns the
// route identifier, or a derived one when the response omits it.
func (g *Gateway) CreateRoute(ctx context.Context, orderID, deliveryAddress string, totalWeightKg float64) (string, error) {
	request := newRouteRequest(orderID, deliveryAddress, totalWeightKg)

	body, err := g.post(ctx, g.baseURL+"/routes/optimize", request)
	if err != nil {
		return "", fmt.Errorf("ros create route: %w", err)
	}

	if id := extractField(body, "route_id", "routeId", "id"); id != "" {
		return id, nil
	}
	return fmt.Sprintf("RT%d", time.Now().UnixMilli()), nil
}

// RouteStatus queries the route status for the order, trying the known
// endpoint paths in order. Never fails; when no endpoint answers, the route
// reads as not found rather than as any concrete progress.
func (g *Gateway) RouteStatus(ctx context.Context, orderID string) status.RouteStatus {
	paths := []string{
		"/route-status/" + orderID,
		"/routes/" + orderID + "/status",
		"/orders/" + orderID + "/route",
		"/status/" + orderID,
	}

	attempts := make([]chain.Attempt[string], 0, len(paths))
	for _, path := range paths {
		url := g.baseURL + path
		attempts = append(attempts, func(ctx context.Context) (string, error) {
			body, err := g.get(ctx, url)
			if err != nil {
				return "", err
			}
			if s := extractField(body, "status", "route_status"); s != "" {
				return s, nil
			}
			return "", fmt.Errorf("no status in response from %s", url)
		})
	}

	raw := chain.FirstOr(ctx, "route_not_found", attempts...)
	return status.ParseRouteStatus(raw)
}

// UpdateRouteStatus pushes a status change, trying the known endpoint
// shapes in order and degrading to a local acknowledgement.
func (g *Gateway) UpdateRouteStatus(ctx context.Context, orderID, newStatus string) string {
	payload := map[string]any{
		"orderId":   orderID,
		"status":    newStatus,
		"timestamp": time.Now().UnixMilli(),
	}
	paths := []string{
		"/routes/" + orderID + "/status",
		"/orders/" + orderID + "/route-status",
		"/update-route-status/" + orderID,
		"/routes/update",
	}

	attempts := make([]chain.Attempt[string], 0, len(paths))
	for _, path := range paths {
		url := g.baseURL + path
		attempts = append(attempts, func(ctx context.Context) (string, error) {
			body, err := g.post(ctx, url, payload)
			if err != nil {
				return "", err
			}
			if ack := extractField(body, "success", "message", "result"); ack != "" {
				return "Route status updated: " + ack, nil
			}
			return "Route status update accepted", nil
		})
	}

	fallback := fmt.Sprintf("ROS route for order %s status updated to %s successfully (mock response)", orderID, newStatus)
	ack := chain.FirstOr(ctx, fallback, attempts...)
	if ack == fallback {
		g.logger.WarnContext(ctx, "all update endpoints rejected, using local acknowledgement",
			"order_id", orderID, "status", newStatus)
	}
	return ack
}

// CancelRoute cancels route planning for the order, trying the known
// endpoint shapes in order. All shapes failing is a per-system error.
func (g *Gateway) CancelRoute(ctx context.Context, orderID string) (string, error) {
	payload := map[string]any{
		"orderId": orderID,
		"status":  "cancelled",
	}
	paths := []string{
		"/routes/" + orderID + "/cancel",
		"/orders/" + orderID + "/cancel-route",
		"/cancel-route/" + orderID,
	}

	attempts := make([]chain.Attempt[string], 0, len(paths))
	for _, path := range paths {
		url := g.baseURL + path
		attempts = append(attempts, func(ctx context.Context) (string, error) {
			body, err := g.post(ctx, url, payload)
			if err != nil {
				return "", err
			}
			if ack := extractField(body, "message", "result", "status"); ack != "" {
				return "Route cancelled: " + ack, nil
			}
			return "Route cancellation completed", nil
		})
	}

	ack, err := chain.First(ctx, attempts...)
	if err != nil {
		return "", fmt.Errorf("ros cancel route: %w", err)
	}
	return ack, nil
}

// IsHealthy probes GET /health with a bounded conversation. Any HTTP
// response proves liveness.
func (g *Gateway) IsHealthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := g.health.Do(req)
	if err != nil {
		g.logger.WarnContext(ctx, "health check failed", "error", err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return true
}

func (g *Gateway) post(ctx context.Context, url string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(req)
}

func (g *Gateway) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return g.do(req)
}

// do performs one HTTP conversation. Non-2xx answers count as failed
// attempts so the chain can try the next path.
func (g *Gateway) do(req *http.Request) ([]byte, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("ros answered %d for %s %s", resp.StatusCode, req.Method, req.URL.Path)
	}
	return body, nil
}
