package drivers_test

import (
	"context"
	"time"

	"transport/internal/core/application/usecases/drivers"
	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Add(ctx context.Context, drv *driver.Driver) error {
	args := m.Called(ctx, drv)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, drv *driver.Driver) error {
	args := m.Called(ctx, drv)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(
	ctx context.Context, id kernel.UUID, includeDeleted bool,
) (*driver.Driver, error) {
	args := m.Called(ctx, id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) ExistsWithLicenseNumber(
	ctx context.Context, licenseNumber string, excludeID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, licenseNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDriverRepository) GetAll(
	ctx context.Context, filter ports.DriverFilter,
) ([]*driver.Driver, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockDriverUoW struct {
	mock.Mock
}

func (m *MockDriverUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockDriverUoWFactory struct {
	mock.Mock
}

func (m *MockDriverUoWFactory) Create() drivers.DriverUoW {
	args := m.Called()
	return args.Get(0).(drivers.DriverUoW)
}

func mustNewDriver() *driver.Driver {
	drv, err := driver.NewDriver(
		"Marko Petrov",
		"DL-99001",
		"+381641234567",
		time.Now().AddDate(-2, 0, 0),
		time.Now().AddDate(3, 0, 0),
		driver.StatusActive,
		"",
		"night shift",
	)
	if err != nil {
		panic(err)
	}
	return drv
}
