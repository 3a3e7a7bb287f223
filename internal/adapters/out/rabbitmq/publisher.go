// Package rabbitmq fans lifecycle events out to the downstream topic
// exchanges. Publishing is fire and forget: a broker outage degrades the
// hub to log-only, never failing the order workflow that emitted the event.
package rabbitmq

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"swifthub/internal/core/domain/model/event"
	"swifthub/internal/core/ports"
)

const publishTimeout = 5 * time.Second

const (
	NotificationsExchange = "order.notifications.exchange"
	RoutingExchange       = "order.routing.exchange"
	WarehouseExchange     = "order.warehouse.exchange"
	EventsExchange        = "order.events.exchange"
)

// destination is one exchange/routing-key pair an event is copied to.
type destination struct {
	exchange   string
	routingKey string
}

var destinationsByKind = map[event.Kind][]destination{
	event.OrderCreated: {
		{NotificationsExchange, "order.created"},
		{RoutingExchange, "route.optimize"},
		{WarehouseExchange, "package.register"},
		{EventsExchange, "order.lifecycle"},
	},
	event.OrderCancelled: {
		{NotificationsExchange, "order.cancelled"},
		{RoutingExchange, "route.cancelled"},
		{WarehouseExchange, "package.cancelled"},
		{EventsExchange, "order.lifecycle"},
	},
}

// Broker is the slice of the AMQP channel the publisher uses.
// *amqp091.Channel satisfies it.
type Broker interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher implements ports.EventPublisher over RabbitMQ topic exchanges.
// A nil broker is a valid degraded mode: events are logged and dropped.
type Publisher struct {
	broker Broker
	logger *slog.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher declares the four topic exchanges on the broker and returns
// the publisher. Pass a nil broker to run log-only.
func NewPublisher(broker Broker, logger *slog.Logger) (*Publisher, error) {
	p := &Publisher{broker: broker, logger: logger.With("component", "event_publisher")}
	if broker == nil {
		logger.Warn("no message broker configured, lifecycle events will only be logged")
		return p, nil
	}

	for _, exchange := range []string{NotificationsExchange, RoutingExchange, WarehouseExchange, EventsExchange} {
		if err := broker.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Publish copies the event to every exchange bound to its kind. Delivery
// happens on a background goroutine with its own deadline; failures are
// logged and swallowed.
func (p *Publisher) Publish(_ context.Context, e event.Lifecycle) {
	body, err := json.Marshal(e)
	if err != nil {
		p.logger.Error("event not serializable, dropped", "event_type", e.EventType, "error", err)
		return
	}

	p.logger.Info("publishing lifecycle event",
		"event_type", e.EventType, "order_id", e.OrderID)

	if p.broker == nil {
		return
	}

	destinations := destinationsByKind[e.EventType]
	go p.deliver(e, body, destinations)
}

func (p *Publisher) deliver(e event.Lifecycle, body []byte, destinations []destination) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	for _, dst := range destinations {
		err := p.broker.PublishWithContext(ctx, dst.exchange, dst.routingKey, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		})
		if err != nil {
			p.logger.Error("event publish failed",
				"event_type", e.EventType, "order_id", e.OrderID,
				"exchange", dst.exchange, "routing_key", dst.routingKey, "error", err)
		}
	}
}
