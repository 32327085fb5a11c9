package stations

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrGetStationQueryIsNotConstructed = errors.New(
	"GetStationQuery must be created via NewGetStationQuery constructor",
)

// GetStationQuery retrieves a single non-deleted station by identifier.
type GetStationQuery struct { //nolint:recvcheck //using for validation
	stationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStationQuery creates a query to retrieve a station by identifier.
func NewGetStationQuery(stationID kernel.UUID) (GetStationQuery, error) {
	query := GetStationQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStationID(stationID); err != nil {
		return GetStationQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStationQuery) Validate() error {
	return q.guard.Validate(ErrGetStationQueryIsNotConstructed)
}

// StationID returns the target station identifier.
func (q GetStationQuery) StationID() kernel.UUID {
	return q.stationID
}

func (q *GetStationQuery) setStationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.stationID = id
	return nil
}
