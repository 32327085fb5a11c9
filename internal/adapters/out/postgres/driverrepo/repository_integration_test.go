package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"transport/internal/adapters/out/postgres/driverrepo"
	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DriverRepositoryIntegrationTestSuite provides integration tests for
// GormDriverRepository using PostgreSQL containers.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	original := suite.createTestDriver("Marko Petrov", "RS-100234", driver.StatusActive)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()

	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID(), false)
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.FullName(), retrieved.FullName())
	suite.Equal(original.LicenseNumber(), retrieved.LicenseNumber())
	suite.Equal(original.PhoneNumber(), retrieved.PhoneNumber())
	suite.Equal(original.Status(), retrieved.Status())
	suite.Equal(original.Notes(), retrieved.Notes())
	suite.Equal(
		original.LicenseIssuedDate().Format("2006-01-02"),
		retrieved.LicenseIssuedDate().Format("2006-01-02"))
	suite.Equal(
		original.LicenseExpiryDate().Format("2006-01-02"),
		retrieved.LicenseExpiryDate().Format("2006-01-02"))
	suite.False(retrieved.IsDeleted())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateID_TranslatesToAlreadyExists() {
	ctx := context.Background()

	original := suite.createTestDriver("Marko Petrov", "RS-100234", driver.StatusActive)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	err := suite.repository.Add(ctx, original)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_SoftDeletedDriver_VisibilityDependsOnFlag() {
	ctx := context.Background()

	deleted := suite.createTestDriver("Zoran Savic", "RS-100235", driver.StatusActive)
	deleted.Delete()
	suite.tracker.On("TrackAggregate", deleted.ID(), deleted).Once()
	suite.Require().NoError(suite.repository.Add(ctx, deleted))

	_, err := suite.repository.Get(ctx, deleted.ID(), false)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	retrieved, err := suite.repository.Get(ctx, deleted.ID(), true)
	suite.Require().NoError(err)
	suite.True(retrieved.IsDeleted())
	suite.NotNil(retrieved.DeletedAt())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestExistsWithLicenseNumber() {
	ctx := context.Background()

	existing := suite.createTestDriver("Ana Babic", "RS-200100", driver.StatusActive)
	suite.tracker.On("TrackAggregate", existing.ID(), existing).Once()
	suite.Require().NoError(suite.repository.Add(ctx, existing))

	exists, err := suite.repository.ExistsWithLicenseNumber(ctx, "RS-200100", kernel.UUID{})
	suite.Require().NoError(err)
	suite.True(exists)

	// The driver itself is excluded when its own ID is passed.
	exists, err = suite.repository.ExistsWithLicenseNumber(ctx, "RS-200100", existing.ID())
	suite.Require().NoError(err)
	suite.False(exists)

	exists, err = suite.repository.ExistsWithLicenseNumber(ctx, "RS-999999", kernel.UUID{})
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestExistsWithLicenseNumber_IgnoresDeletedDrivers() {
	ctx := context.Background()

	deleted := suite.createTestDriver("Retired Driver", "RS-300300", driver.StatusActive)
	deleted.Delete()
	suite.tracker.On("TrackAggregate", deleted.ID(), deleted).Once()
	suite.Require().NoError(suite.repository.Add(ctx, deleted))

	exists, err := suite.repository.ExistsWithLicenseNumber(ctx, "RS-300300", kernel.UUID{})
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_NonExistentDriver_ReturnsNotFoundError() {
	ctx := context.Background()

	ghost := suite.createTestDriver("Ghost Driver", "RS-000000", driver.StatusActive)

	err := suite.repository.Update(ctx, ghost)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAll_StatusFilterSearchAndOrdering() {
	ctx := context.Background()

	for _, spec := range []struct {
		fullName string
		license  string
		status   driver.Status
	}{
		{"Zoran Savic", "RS-100235", driver.StatusOnLeave},
		{"Ana Babic", "RS-200100", driver.StatusActive},
		{"Marko Petrov", "RS-100234", driver.StatusActive},
	} {
		drv := suite.createTestDriver(spec.fullName, spec.license, spec.status)
		suite.tracker.On("TrackAggregate", drv.ID(), drv).Once()
		suite.Require().NoError(suite.repository.Add(ctx, drv))
	}

	deleted := suite.createTestDriver("Deleted Driver", "RS-400400", driver.StatusActive)
	deleted.Delete()
	suite.tracker.On("TrackAggregate", deleted.ID(), deleted).Once()
	suite.Require().NoError(suite.repository.Add(ctx, deleted))

	// Default listing hides deleted drivers and sorts by full name.
	result, err := suite.repository.GetAll(ctx, ports.DriverFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Ana Babic", result[0].FullName())
	suite.Equal("Marko Petrov", result[1].FullName())
	suite.Equal("Zoran Savic", result[2].FullName())

	// Status filter selects by the stored integer value.
	result, err = suite.repository.GetAll(ctx, ports.DriverFilter{Status: driver.StatusOnLeave})
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Zoran Savic", result[0].FullName())

	// Case-insensitive search matches the license number column.
	result, err = suite.repository.GetAll(ctx, ports.DriverFilter{Search: "rs-2001"})
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Ana Babic", result[0].FullName())

	// Search also matches the notes column.
	result, err = suite.repository.GetAll(ctx, ports.DriverFilter{Search: "night shift"})
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	// includeDeleted surfaces the deleted driver.
	result, err = suite.repository.GetAll(ctx, ports.DriverFilter{IncludeDeleted: true})
	suite.Require().NoError(err)
	suite.Require().Len(result, 4)
	suite.Equal("Deleted Driver", result[1].FullName())
	suite.True(result[1].IsDeleted())
}

// createTestDriver creates a driver with default license dates and notes.
func (suite *DriverRepositoryIntegrationTestSuite) createTestDriver(
	fullName, licenseNumber string, status driver.Status,
) *driver.Driver {
	drv, err := driver.NewDriver(
		fullName, licenseNumber, "+381641234567",
		time.Now().AddDate(-2, 0, 0), time.Now().AddDate(3, 0, 0),
		status, "", "night shift")
	suite.Require().NoError(err)
	return drv
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
