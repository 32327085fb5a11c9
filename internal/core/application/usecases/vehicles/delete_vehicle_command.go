package vehicles

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

// DeleteVehicleCommand represents a request to soft-delete a vehicle.
type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVehicleCommand creates a command to soft-delete a vehicle.
func NewDeleteVehicleCommand(vehicleID kernel.UUID) (DeleteVehicleCommand, error) {
	command := DeleteVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setVehicleID(vehicleID); err != nil {
		return DeleteVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

// VehicleID returns the target vehicle identifier.
func (c DeleteVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *DeleteVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}
