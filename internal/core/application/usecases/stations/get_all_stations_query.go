package stations

import (
	"transport/internal/pkg/guard"
)

// GetAllStationsQuery retrieves stations with optional filtering.
// The zero search string matches everything; IncludeDeleted also yields
// soft-deleted stations.
type GetAllStationsQuery struct {
	search         string
	includeDeleted bool

	guard guard.ConstructorGuard
}

// NewGetAllStationsQuery creates a query to retrieve stations. Search is an
// optional case-insensitive substring matched against name, address, and
// description.
func NewGetAllStationsQuery(search string, includeDeleted bool) GetAllStationsQuery {
	return GetAllStationsQuery{
		search:         search,
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}
}

// Search returns the optional search term.
func (q GetAllStationsQuery) Search() string {
	return q.search
}

// IncludeDeleted reports whether soft-deleted stations are included.
func (q GetAllStationsQuery) IncludeDeleted() bool {
	return q.includeDeleted
}
