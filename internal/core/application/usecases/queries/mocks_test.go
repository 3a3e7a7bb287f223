package queries_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"swifthub/internal/core/domain/model/order"
	"swifthub/internal/core/domain/model/status"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockClientGateway struct{ mock.Mock }

func (m *MockClientGateway) ValidateClient(ctx context.Context, clientID string) (string, error) {
	args := m.Called(ctx, clientID)
	return args.String(0), args.Error(1)
}
func (m *MockClientGateway) CreateOrder(ctx context.Context, o *order.DeliveryOrder) (string, error) {
	args := m.Called(ctx, o)
	return args.String(0), args.Error(1)
}
func (m *MockClientGateway) OrderStatus(ctx context.Context, orderID string) status.OrderStatus {
	args := m.Called(ctx, orderID)
	return args.Get(0).(status.OrderStatus)
}
func (m *MockClientGateway) UpdateOrderStatus(ctx context.Context, orderID, newStatus string) string {
	args := m.Called(ctx, orderID, newStatus)
	return args.String(0)
}
func (m *MockClientGateway) CancelOrder(ctx context.Context, orderID string) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}
func (m *MockClientGateway) IsHealthy(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

type MockRouteGateway struct{ mock.Mock }

func (m *MockRouteGateway) CreateRoute(ctx context.Context, orderID, deliveryAddress string, totalWeightKg float64) (string, error) {
	args := m.Called(ctx, orderID, deliveryAddress, totalWeightKg)
	return args.String(0), args.Error(1)
}
func (m *MockRouteGateway) RouteStatus(ctx context.Context, orderID string) status.RouteStatus {
	args := m.Called(ctx, orderID)
	return args.Get(0).(status.RouteStatus)
}
func (m *MockRouteGateway) UpdateRouteStatus(ctx context.Context, orderID, newStatus string) string {
	args := m.Called(ctx, orderID, newStatus)
	return args.String(0)
}
func (m *MockRouteGateway) CancelRoute(ctx context.Context, orderID string) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}
func (m *MockRouteGateway) IsHealthy(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

type MockWarehouseGateway struct{ mock.Mock }

func (m *MockWarehouseGateway) RegisterPackage(ctx context.Context, o *order.DeliveryOrder) (string, error) {
	args := m.Called(ctx, o)
	return args.String(0), args.Error(1)
}
func (m *MockWarehouseGateway) PackageStatus(ctx context.Context, orderID string) status.PackageStatus {
	args := m.Called(ctx, orderID)
	return args.Get(0).(status.PackageStatus)
}
func (m *MockWarehouseGateway) UpdatePackageStatus(ctx context.Context, orderID, newStatus string) string {
	args := m.Called(ctx, orderID, newStatus)
	return args.String(0)
}
func (m *MockWarehouseGateway) CancelPackage(ctx context.Context, orderID string) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}
func (m *MockWarehouseGateway) IsHealthy(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}
