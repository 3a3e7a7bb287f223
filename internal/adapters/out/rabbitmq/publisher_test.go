package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swifthub/internal/adapters/out/rabbitmq"
	"swifthub/internal/core/domain/model/event"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type published struct {
	exchange   string
	routingKey string
	body       []byte
}

// fakeBroker records declarations and publications, optionally failing them.
type fakeBroker struct {
	mu         sync.Mutex
	declared   []string
	sent       []published
	publishErr error
	declareErr error

	publishedCh chan published
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{publishedCh: make(chan published, 16)}
}

func (b *fakeBroker) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.declareErr != nil {
		return b.declareErr
	}
	if kind != "topic" || !durable {
		return errors.New("unexpected exchange configuration")
	}
	b.declared = append(b.declared, name)
	return nil
}

func (b *fakeBroker) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.publishErr != nil {
		return b.publishErr
	}
	p := published{exchange: exchange, routingKey: key, body: msg.Body}
	b.sent = append(b.sent, p)
	b.publishedCh <- p
	return nil
}

func (b *fakeBroker) waitFor(t *testing.T, n int) []published {
	t.Helper()
	var got []published
	for len(got) < n {
		select {
		case p := <-b.publishedCh:
			got = append(got, p)
		case <-time.After(2 * time.Second):
			t.Fatalf("only %d of %d publications arrived", len(got), n)
		}
	}
	return got
}

func TestNewPublisher(t *testing.T) {
	t.Run("declares_all_four_exchanges", func(t *testing.T) {
		broker := newFakeBroker()

		_, err := rabbitmq.NewPublisher(broker, discardLogger())
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{
			"order.notifications.exchange",
			"order.routing.exchange",
			"order.warehouse.exchange",
			"order.events.exchange",
		}, broker.declared)
	})

	t.Run("declaration_failure_is_an_error", func(t *testing.T) {
		broker := newFakeBroker()
		broker.declareErr = errors.New("broker refused")

		_, err := rabbitmq.NewPublisher(broker, discardLogger())
		require.Error(t, err)
	})

	t.Run("nil_broker_runs_log_only", func(t *testing.T) {
		p, err := rabbitmq.NewPublisher(nil, discardLogger())
		require.NoError(t, err)

		// Must not panic; the event is logged and dropped.
		p.Publish(context.Background(), event.NewOrderCreated("ORD1", "C1", "addr", "", nil))
	})
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("fans_created_event_out_to_all_topics", func(t *testing.T) {
		broker := newFakeBroker()
		p, err := rabbitmq.NewPublisher(broker, discardLogger())
		require.NoError(t, err)

		e := event.NewOrderCreated("ORD1", "C1", "221B Baker St", "10 Warehouse Rd",
			map[string]any{"success": true})
		p.Publish(context.Background(), e)

		sent := broker.waitFor(t, 4)
		routes := map[string]string{}
		for _, pub := range sent {
			routes[pub.exchange] = pub.routingKey

			var payload map[string]any
			require.NoError(t, json.Unmarshal(pub.body, &payload))
			assert.Equal(t, "ORDER_CREATED", payload["eventType"])
			assert.Equal(t, "ORD1", payload["orderId"])
			assert.Equal(t, "ESB", payload["source"])
		}
		assert.Equal(t, map[string]string{
			"order.notifications.exchange": "order.created",
			"order.routing.exchange":       "route.optimize",
			"order.warehouse.exchange":     "package.register",
			"order.events.exchange":        "order.lifecycle",
		}, routes)
	})

	t.Run("fans_cancelled_event_out_with_cancel_routing_keys", func(t *testing.T) {
		broker := newFakeBroker()
		p, err := rabbitmq.NewPublisher(broker, discardLogger())
		require.NoError(t, err)

		p.Publish(context.Background(), event.NewOrderCancelled("ORD1", map[string]any{"success": true}))

		sent := broker.waitFor(t, 4)
		routes := map[string]string{}
		for _, pub := range sent {
			routes[pub.exchange] = pub.routingKey
		}
		assert.Equal(t, map[string]string{
			"order.notifications.exchange": "order.cancelled",
			"order.routing.exchange":       "route.cancelled",
			"order.warehouse.exchange":     "package.cancelled",
			"order.events.exchange":        "order.lifecycle",
		}, routes)
	})

	t.Run("broker_failure_never_reaches_the_caller", func(t *testing.T) {
		broker := newFakeBroker()
		p, err := rabbitmq.NewPublisher(broker, discardLogger())
		require.NoError(t, err)
		broker.mu.Lock()
		broker.publishErr = errors.New("connection lost")
		broker.mu.Unlock()

		// No error surface to assert on: the contract is that this call
		// returns immediately and never panics.
		p.Publish(context.Background(), event.NewOrderCreated("ORD1", "C1", "addr", "", nil))
		time.Sleep(50 * time.Millisecond)
	})
}
