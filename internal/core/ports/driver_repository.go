package ports

import (
	"context"

	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
)

// DriverFilter narrows the result set of DriverRepository.GetAll.
// The zero value matches all non-deleted drivers.
type DriverFilter struct {
	// Search is an optional case-insensitive substring matched against
	// full name, license number, phone number, and notes.
	Search string
	// Status filters by operational status when it is a valid status.
	Status driver.Status
	// IncludeDeleted also yields soft-deleted drivers when true.
	IncludeDeleted bool
}

// DriverRepository defines the persistence contract for driver aggregates.
// Results of GetAll are sorted by full name ascending.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, driver *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, driver *driver.Driver) error

	// Get retrieves a driver by its unique identifier. With includeDeleted
	// false, soft-deleted drivers are treated as absent.
	Get(ctx context.Context, id kernel.UUID, includeDeleted bool) (*driver.Driver, error)

	// ExistsWithLicenseNumber reports whether a non-deleted driver with the
	// given license number exists, excluding the driver identified by
	// excludeID when it is a valid identifier. The license number is
	// matched as stored, i.e. upper-cased.
	ExistsWithLicenseNumber(ctx context.Context, licenseNumber string, excludeID kernel.UUID) (bool, error)

	// GetAll retrieves drivers matching the filter, sorted by full name.
	GetAll(ctx context.Context, filter DriverFilter) ([]*driver.Driver, error)
}
