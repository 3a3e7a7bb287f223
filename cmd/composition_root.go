package cmd

import (
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"swifthub/internal/adapters/out/cms"
	"swifthub/internal/adapters/out/inmemory"
	"swifthub/internal/adapters/out/rabbitmq"
	"swifthub/internal/adapters/out/ros"
	"swifthub/internal/adapters/out/wms"
	"swifthub/internal/core/application/usecases/commands"
	"swifthub/internal/core/application/usecases/queries"
	"swifthub/internal/core/domain/services"
	"swifthub/internal/core/ports"
)

// CompositionRoot wires the gateways, the correlation store and the event
// publisher, and produces the command and query handlers for the HTTP
// adapter and the jobs.
type CompositionRoot struct {
	clients   ports.ClientGateway
	routes    ports.RouteGateway
	warehouse ports.WarehouseGateway
	events    ports.EventPublisher
	reducer   services.StatusReducer
	logger    *slog.Logger
}

// NewCompositionRoot builds the object graph from the config. A broker
// outage does not prevent startup: the publisher degrades to log-only.
func NewCompositionRoot(configs Config, logger *slog.Logger) (CompositionRoot, error) {
	store := inmemory.NewCorrelationStore()

	events, err := buildPublisher(configs.RabbitMQURL, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		clients:   cms.NewGateway(configs.CMSURL, configs.BackendTimeout, logger),
		routes:    ros.NewGateway(configs.ROSBaseURL, configs.BackendTimeout, logger),
		warehouse: wms.NewGateway(configs.WMSAddr, configs.BackendTimeout, store, logger),
		events:    events,
		reducer:   services.NewStatusReducer(),
		logger:    logger,
	}, nil
}

func buildPublisher(url string, logger *slog.Logger) (*rabbitmq.Publisher, error) {
	if url == "" {
		return rabbitmq.NewPublisher(nil, logger)
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		logger.Warn("message broker unreachable, lifecycle events degrade to log-only", "error", err)
		return rabbitmq.NewPublisher(nil, logger)
	}

	channel, err := conn.Channel()
	if err != nil {
		logger.Warn("message broker channel failed, lifecycle events degrade to log-only", "error", err)
		return rabbitmq.NewPublisher(nil, logger)
	}

	return rabbitmq.NewPublisher(channel, logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.clients, c.routes, c.warehouse, c.events, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.clients, c.routes, c.warehouse, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.clients, c.routes, c.warehouse, c.events, c.logger)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.clients, c.routes, c.warehouse, c.reducer, c.logger)
}

func (c *CompositionRoot) CreateGetSystemHealthQueryHandler() queries.GetSystemHealthQueryHandler {
	return queries.NewGetSystemHealthQueryHandler(c.clients, c.routes, c.warehouse, c.logger)
}
