package vehicles

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrGetVehicleQueryIsNotConstructed = errors.New(
	"GetVehicleQuery must be created via NewGetVehicleQuery constructor",
)

// GetVehicleQuery retrieves a single non-deleted vehicle by identifier.
type GetVehicleQuery struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVehicleQuery creates a query to retrieve a vehicle by identifier.
func NewGetVehicleQuery(vehicleID kernel.UUID) (GetVehicleQuery, error) {
	query := GetVehicleQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setVehicleID(vehicleID); err != nil {
		return GetVehicleQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleQueryIsNotConstructed)
}

// VehicleID returns the target vehicle identifier.
func (q GetVehicleQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}

func (q *GetVehicleQuery) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.vehicleID = id
	return nil
}
