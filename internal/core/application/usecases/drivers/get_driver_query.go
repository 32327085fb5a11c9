package drivers

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery retrieves a single non-deleted driver by identifier.
type GetDriverQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverQuery creates a query to retrieve a driver by identifier.
func NewGetDriverQuery(driverID kernel.UUID) (GetDriverQuery, error) {
	query := GetDriverQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return GetDriverQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

// DriverID returns the target driver identifier.
func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetDriverQuery) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.driverID = id
	return nil
}
