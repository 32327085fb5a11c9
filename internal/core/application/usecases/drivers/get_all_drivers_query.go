package drivers

import (
	"transport/internal/core/domain/model/driver"
	"transport/internal/pkg/guard"
)

// GetAllDriversQuery retrieves drivers with optional filtering.
// A zero-value status means no status filter.
type GetAllDriversQuery struct {
	search         string
	status         driver.Status
	includeDeleted bool

	guard guard.ConstructorGuard
}

// NewGetAllDriversQuery creates a query to retrieve drivers. Search is an
// optional case-insensitive substring matched against full name, license
// number, phone number, and notes. StatusUnknown disables the status filter.
func NewGetAllDriversQuery(search string, status driver.Status, includeDeleted bool) GetAllDriversQuery {
	return GetAllDriversQuery{
		search:         search,
		status:         status,
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}
}

// Search returns the optional search term.
func (q GetAllDriversQuery) Search() string {
	return q.search
}

// Status returns the optional status filter, StatusUnknown when absent.
func (q GetAllDriversQuery) Status() driver.Status {
	return q.status
}

// IncludeDeleted reports whether soft-deleted drivers are included.
func (q GetAllDriversQuery) IncludeDeleted() bool {
	return q.includeDeleted
}
