package vehicles

import (
	"errors"
	"strings"

	"transport/internal/core/domain/model/vehicle"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a new vehicle.
// Field content beyond required-ness is validated by the aggregate itself.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	registrationNumber string
	model              string
	capacity           int
	manufactureYear    int
	status             vehicle.Status
	notes              string

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
func NewCreateVehicleCommand(
	registrationNumber string,
	model string,
	capacity int,
	manufactureYear int,
	status vehicle.Status,
	notes string,
) (CreateVehicleCommand, error) {
	command := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRegistrationNumber(registrationNumber); err != nil {
		return CreateVehicleCommand{}, err
	}
	if err := command.setModel(model); err != nil {
		return CreateVehicleCommand{}, err
	}
	if err := command.setStatus(status); err != nil {
		return CreateVehicleCommand{}, err
	}
	command.capacity = capacity
	command.manufactureYear = manufactureYear
	command.notes = notes

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// RegistrationNumber returns the registration number from the command, upper-cased.
func (c CreateVehicleCommand) RegistrationNumber() string {
	return c.registrationNumber
}

// Model returns the manufacturer and model name from the command.
func (c CreateVehicleCommand) Model() string {
	return c.model
}

// Capacity returns the seating capacity from the command.
func (c CreateVehicleCommand) Capacity() int {
	return c.capacity
}

// ManufactureYear returns the manufacture year from the command.
func (c CreateVehicleCommand) ManufactureYear() int {
	return c.manufactureYear
}

// Status returns the initial operational status from the command.
func (c CreateVehicleCommand) Status() vehicle.Status {
	return c.status
}

// Notes returns the optional notes from the command.
func (c CreateVehicleCommand) Notes() string {
	return c.notes
}

func (c *CreateVehicleCommand) setRegistrationNumber(registrationNumber string) error {
	registrationNumber = strings.TrimSpace(registrationNumber)
	if registrationNumber == "" {
		return errs.NewValueIsRequiredError("registrationNumber")
	}

	c.registrationNumber = strings.ToUpper(registrationNumber)
	return nil
}

func (c *CreateVehicleCommand) setModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return errs.NewValueIsRequiredError("model")
	}

	c.model = model
	return nil
}

func (c *CreateVehicleCommand) setStatus(status vehicle.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
