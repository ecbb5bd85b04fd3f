package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/rack"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindByBarcode(ctx context.Context, barcode kernel.Barcode) (*shipment.Shipment, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindActiveOccupant(ctx context.Context, rackID kernel.RackID) (*shipment.Shipment, error) {
	args := m.Called(ctx, rackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllConfirmed(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) GetTariff(ctx context.Context) (services.Tariff, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.Tariff), args.Error(1)
}

func (m *MockSettingsRepository) SaveTariff(ctx context.Context, tariff services.Tariff) error {
	args := m.Called(ctx, tariff)
	return args.Error(0)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockUoW struct{ MockShipmentUoW }

func (m *MockUoW) SettingsRepository() ports.SettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingsRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// confirmedShipment builds a Confirmed shipment with a deterministic intake
// time for handler tests.
func confirmedShipment(t *testing.T, pieceCount int) *shipment.Shipment {
	t.Helper()

	intakeAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	weight, err := kernel.NewWeight(10)
	require.NoError(t, err)

	shp, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.GenerateBarcode(intakeAt),
		"Acme Logistics",
		"Jane Smith",
		weight,
		pieceCount,
		intakeAt,
		"",
	)
	require.NoError(t, err)
	return shp
}

// testRackMap builds a one-zone map used across handler tests.
func testRackMap(t *testing.T) *rack.Map {
	t.Helper()

	rackMap, err := rack.NewMap([]string{"A"}, 2, 2)
	require.NoError(t, err)
	return rackMap
}

func mustRackID(t *testing.T, zone, row, column string) kernel.RackID {
	t.Helper()

	rackID, err := kernel.NewRackID(zone, row, column)
	require.NoError(t, err)
	return rackID
}
