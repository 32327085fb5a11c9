package vehicles

import (
	"transport/internal/core/domain/model/vehicle"
	"transport/internal/pkg/guard"
)

// GetAllVehiclesQuery retrieves vehicles with optional filtering.
// A zero-value status means no status filter.
type GetAllVehiclesQuery struct {
	search         string
	status         vehicle.Status
	includeDeleted bool

	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a query to retrieve vehicles. Search is an
// optional case-insensitive substring matched against registration number,
// model, and notes. StatusUnknown disables the status filter.
func NewGetAllVehiclesQuery(search string, status vehicle.Status, includeDeleted bool) GetAllVehiclesQuery {
	return GetAllVehiclesQuery{
		search:         search,
		status:         status,
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}
}

// Search returns the optional search term.
func (q GetAllVehiclesQuery) Search() string {
	return q.search
}

// Status returns the optional status filter, StatusUnknown when absent.
func (q GetAllVehiclesQuery) Status() vehicle.Status {
	return q.status
}

// IncludeDeleted reports whether soft-deleted vehicles are included.
func (q GetAllVehiclesQuery) IncludeDeleted() bool {
	return q.includeDeleted
}
