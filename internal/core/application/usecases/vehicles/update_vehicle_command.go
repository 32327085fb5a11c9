package vehicles

import (
	"errors"
	"strings"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// UpdateVehicleCommand represents a request to change an existing vehicle's
// fields. The registration number and status are not updatable through this
// command.
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID       kernel.UUID
	model           string
	capacity        int
	manufactureYear int
	notes           string

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a command to update a vehicle.
func NewUpdateVehicleCommand(
	vehicleID kernel.UUID,
	model string,
	capacity int,
	manufactureYear int,
	notes string,
) (UpdateVehicleCommand, error) {
	command := UpdateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setVehicleID(vehicleID); err != nil {
		return UpdateVehicleCommand{}, err
	}
	if err := command.setModel(model); err != nil {
		return UpdateVehicleCommand{}, err
	}
	command.capacity = capacity
	command.manufactureYear = manufactureYear
	command.notes = notes

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

// VehicleID returns the target vehicle identifier.
func (c UpdateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Model returns the new manufacturer and model name.
func (c UpdateVehicleCommand) Model() string {
	return c.model
}

// Capacity returns the new seating capacity.
func (c UpdateVehicleCommand) Capacity() int {
	return c.capacity
}

// ManufactureYear returns the new manufacture year.
func (c UpdateVehicleCommand) ManufactureYear() int {
	return c.manufactureYear
}

// Notes returns the new optional notes.
func (c UpdateVehicleCommand) Notes() string {
	return c.notes
}

func (c *UpdateVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

func (c *UpdateVehicleCommand) setModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return errs.NewValueIsRequiredError("model")
	}

	c.model = model
	return nil
}
