package vehicles

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/vehicle"
	"transport/internal/pkg/guard"
)

var ErrChangeVehicleStatusCommandIsNotConstructed = errors.New(
	"ChangeVehicleStatusCommand must be created via NewChangeVehicleStatusCommand constructor",
)

// ChangeVehicleStatusCommand represents a request to transition a vehicle to
// a new operational status.
type ChangeVehicleStatusCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	newStatus vehicle.Status

	guard guard.ConstructorGuard
}

// NewChangeVehicleStatusCommand creates a command to change a vehicle's status.
func NewChangeVehicleStatusCommand(
	vehicleID kernel.UUID, newStatus vehicle.Status,
) (ChangeVehicleStatusCommand, error) {
	command := ChangeVehicleStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setVehicleID(vehicleID); err != nil {
		return ChangeVehicleStatusCommand{}, err
	}
	if err := command.setNewStatus(newStatus); err != nil {
		return ChangeVehicleStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeVehicleStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeVehicleStatusCommandIsNotConstructed)
}

// VehicleID returns the target vehicle identifier.
func (c ChangeVehicleStatusCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// NewStatus returns the requested operational status.
func (c ChangeVehicleStatusCommand) NewStatus() vehicle.Status {
	return c.newStatus
}

func (c *ChangeVehicleStatusCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

func (c *ChangeVehicleStatusCommand) setNewStatus(status vehicle.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.newStatus = status
	return nil
}
