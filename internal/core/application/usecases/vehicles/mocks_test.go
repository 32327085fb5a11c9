package vehicles_test

import (
	"context"

	"transport/internal/core/application/usecases/vehicles"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/vehicle"
	"transport/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Add(ctx context.Context, veh *vehicle.Vehicle) error {
	args := m.Called(ctx, veh)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, veh *vehicle.Vehicle) error {
	args := m.Called(ctx, veh)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(
	ctx context.Context, id kernel.UUID, includeDeleted bool,
) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ExistsWithRegistrationNumber(
	ctx context.Context, registrationNumber string, excludeID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, registrationNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVehicleRepository) GetAll(
	ctx context.Context, filter ports.VehicleFilter,
) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type MockVehicleUoW struct {
	mock.Mock
}

func (m *MockVehicleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockVehicleUoWFactory struct {
	mock.Mock
}

func (m *MockVehicleUoWFactory) Create() vehicles.VehicleUoW {
	args := m.Called()
	return args.Get(0).(vehicles.VehicleUoW)
}

func mustNewVehicle() *vehicle.Vehicle {
	veh, err := vehicle.NewVehicle(
		"NS-101-AB",
		"Solaris Urbino 12",
		85,
		2019,
		vehicle.StatusActive,
		"low floor",
	)
	if err != nil {
		panic(err)
	}
	return veh
}
