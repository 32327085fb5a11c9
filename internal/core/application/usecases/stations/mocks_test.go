package stations_test

import (
	"context"

	"transport/internal/core/application/usecases/stations"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/station"
	"transport/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) Add(ctx context.Context, st *station.Station) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockStationRepository) Update(ctx context.Context, st *station.Station) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockStationRepository) Get(
	ctx context.Context, id kernel.UUID, includeDeleted bool,
) (*station.Station, error) {
	args := m.Called(ctx, id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Station), args.Error(1)
}

func (m *MockStationRepository) ExistsWithName(
	ctx context.Context, name string, excludeID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStationRepository) GetAll(
	ctx context.Context, filter ports.StationFilter,
) ([]*station.Station, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*station.Station), args.Error(1)
}

type MockStationUoW struct {
	mock.Mock
}

func (m *MockStationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStationUoW) StationRepository() ports.StationRepository {
	args := m.Called()
	return args.Get(0).(ports.StationRepository)
}

type MockStationUoWFactory struct {
	mock.Mock
}

func (m *MockStationUoWFactory) Create() stations.StationUoW {
	args := m.Called()
	return args.Get(0).(stations.StationUoW)
}
