package ros_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"swifthub/internal/adapters/out/ros"
	"swifthub/internal/core/domain/model/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGateway_CreateRoute(t *testing.T) {
	t.Run("submits_optimization_request_and_returns_route_id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/routes/optimize", r.URL.Path)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "VEH001", req["vehicle_id"])
			assert.Equal(t, "normal", req["priority"])
			assert.Equal(t, 2.5, req["total_weight"])
			addresses, ok := req["delivery_addresses"].([]any)
			require.True(t, ok)
			require.Len(t, addresses, 1)
			first, ok := addresses[0].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "ORD1", first["order_id"])
			assert.Equal(t, "221B Baker St", first["address"])

			_ = json.NewEncoder(w).Encode(map[string]any{"route_id": "RT-9"})
		}))
		defer srv.Close()

		g := ros.NewGateway(srv.URL, time.Second, discardLogger())

		id, err := g.CreateRoute(context.Background(), "ORD1", "221B Baker St", 2.5)
		require.NoError(t, err)
		assert.Equal(t, "RT-9", id)
	})

	t.Run("derives_id_when_response_omits_it", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"optimized": true})
		}))
		defer srv.Close()

		g := ros.NewGateway(srv.URL, time.Second, discardLogger())

		id, err := g.CreateRoute(context.Background(), "ORD1", "221B Baker St", 2.5)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(id, "RT"))
	})

	t.Run("unreachable_backend_is_an_error", func(t *testing.T) {
		g := ros.NewGateway("http://127.0.0.1:1", 100*time.Millisecond, discardLogger())

		_, err := g.CreateRoute(context.Background(), "ORD1", "221B Baker St", 2.5)
		require.Error(t, err)
	})
}

func TestGateway_RouteStatus(t *testing.T) {
	t.Run("takes_status_from_first_answering_path", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/route-status/ORD1" {
				http.NotFound(w, r)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "completed"})
		}))
		defer srv.Close()

		g := ros.NewGateway(srv.URL, time.Second, discardLogger())

		assert.Equal(t, status.RouteCompleted, g.RouteStatus(context.Background(), "ORD1"))
	})

	t.Run("walks_paths_until_one_answers", func(t *testing.T) {
		var paths []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			if r.URL.Path != "/orders/ORD1/route" {
				http.NotFound(w, r)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"route_status": "planned"})
		}))
		defer srv.Close()

		g := ros.NewGateway(srv.URL, time.Second, discardLogger())

		assert.Equal(t, status.RoutePlanned, g.RouteStatus(context.Background(), "ORD1"))
		assert.Equal(t, []string{"/route-status/ORD1", "/routes/ORD1/status", "/orders/ORD1/route"}, paths)
	})

	t.Run("unreachable_backend_reads_as_route_not_found", func(t *testing.T) {
		g := ros.NewGateway("http://127.0.0.1:1", 100*time.Millisecond, discardLogger())

		got := g.RouteStatus(context.Background(), "ORD1")
		assert.Equal(t, status.RouteUnrecognized, got, "an outage must not read as delivery progress")
	})

	t.Run("status_key_wins_over_route_status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "cancelled", "route_status": "planned"})
		}))
		defer srv.Close()

		g := ros.NewGateway(srv.URL, time.Second, discardLogger())

		assert.Equal(t, status.RouteCancelled, g.RouteStatus(context.Background(), "ORD1"))
	})
}

func TestGateway_UpdateRouteStatus(t *testing.T) {
	t.Run("acknowledges_from_first_accepting_endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/orders/ORD1/route-status" {
				http.NotFound(w, r)
				return
			}
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "ORD1", payload["orderId"])
			assert.Equal(t, "completed", payload["status"])
			assert.NotNil(t, payload["timestamp"])

			_ = json.NewEncoder(w).Encode(map[string]any{"message": "route updated"})
		}))
		defer srv.Close()

		g := ros.NewGateway(srv.URL, time.Second, discardLogger())

		ack := g.UpdateRouteStatus(context.Background(), "ORD1", "completed")
		assert.Equal(t, "Route status updated: route updated", ack)
	})

	t.Run("unreachable_backend_degrades_to_local_ack", func(t *testing.T) {
		g := ros.NewGateway("http://127.0.0.1:1", 100*time.Millisecond, discardLogger())

		ack := g.UpdateRouteStatus(context.Background(), "ORD1", "completed")
		assert.Contains(t, ack, "ORD1")
		assert.Contains(t, ack, "completed")
	})
}

func TestGateway_CancelRoute(t *testing.T) {
	t.Run("cancels_via_first_accepting_endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "route removed"})
		}))
		defer srv.Close()

		g := ros.NewGateway(srv.URL, time.Second, discardLogger())

		ack, err := g.CancelRoute(context.Background(), "ORD1")
		require.NoError(t, err)
		assert.Equal(t, "Route cancelled: route removed", ack)
	})

	t.Run("unreachable_backend_is_a_per_system_error", func(t *testing.T) {
		g := ros.NewGateway("http://127.0.0.1:1", 100*time.Millisecond, discardLogger())

		_, err := g.CancelRoute(context.Background(), "ORD1")
		require.Error(t, err)
	})
}

func TestGateway_IsHealthy(t *testing.T) {
	t.Run("reachable_backend_is_healthy", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "UP"})
		}))
		defer srv.Close()

		g := ros.NewGateway(srv.URL, time.Second, discardLogger())
		assert.True(t, g.IsHealthy(context.Background()))
	})

	t.Run("unreachable_backend_is_unhealthy", func(t *testing.T) {
		g := ros.NewGateway("http://127.0.0.1:1", time.Second, discardLogger())
		assert.False(t, g.IsHealthy(context.Background()))
	})
}
