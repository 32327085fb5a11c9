// Package ports defines repository interfaces for the transport domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
//
// All read operations take an explicit includeDeleted flag instead of an
// ambient filter, so soft-delete visibility is visible at every call site.
package ports

import (
	"context"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/station"
)

// StationFilter narrows the result set of StationRepository.GetAll.
// The zero value matches all non-deleted stations.
type StationFilter struct {
	// Search is an optional case-insensitive substring matched against
	// name, address, and description.
	Search string
	// IncludeDeleted also yields soft-deleted stations when true.
	IncludeDeleted bool
}

// StationRepository defines the persistence contract for station aggregates.
// Results of GetAll are sorted by station name ascending.
type StationRepository interface {
	// Add persists a new station aggregate to storage.
	Add(ctx context.Context, station *station.Station) error

	// Update persists changes to an existing station aggregate.
	Update(ctx context.Context, station *station.Station) error

	// Get retrieves a station by its unique identifier. With
	// includeDeleted false, soft-deleted stations are treated as absent.
	Get(ctx context.Context, id kernel.UUID, includeDeleted bool) (*station.Station, error)

	// ExistsWithName reports whether a non-deleted station with the given
	// name exists, excluding the station identified by excludeID when it is
	// a valid identifier.
	ExistsWithName(ctx context.Context, name string, excludeID kernel.UUID) (bool, error)

	// GetAll retrieves stations matching the filter, sorted by name.
	GetAll(ctx context.Context, filter StationFilter) ([]*station.Station, error)
}
