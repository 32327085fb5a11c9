package ports

import (
	"context"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/vehicle"
)

// VehicleFilter narrows the result set of VehicleRepository.GetAll.
// The zero value matches all non-deleted vehicles.
type VehicleFilter struct {
	// Search is an optional case-insensitive substring matched against
	// registration number, model, and notes.
	Search string
	// Status filters by operational status when it is a valid status.
	Status vehicle.Status
	// IncludeDeleted also yields soft-deleted vehicles when true.
	IncludeDeleted bool
}

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Results of GetAll are sorted by registration number ascending.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Get retrieves a vehicle by its unique identifier. With includeDeleted
	// false, soft-deleted vehicles are treated as absent.
	Get(ctx context.Context, id kernel.UUID, includeDeleted bool) (*vehicle.Vehicle, error)

	// ExistsWithRegistrationNumber reports whether a non-deleted vehicle
	// with the given registration number exists, excluding the vehicle
	// identified by excludeID when it is a valid identifier. The
	// registration number is matched as stored, i.e. upper-cased.
	ExistsWithRegistrationNumber(ctx context.Context, registrationNumber string, excludeID kernel.UUID) (bool, error)

	// GetAll retrieves vehicles matching the filter, sorted by registration number.
	GetAll(ctx context.Context, filter VehicleFilter) ([]*vehicle.Vehicle, error)
}
