package drivers

import (
	"errors"

	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrChangeDriverStatusCommandIsNotConstructed = errors.New(
	"ChangeDriverStatusCommand must be created via NewChangeDriverStatusCommand constructor",
)

// ChangeDriverStatusCommand represents a request to transition a driver to
// a new operational status.
type ChangeDriverStatusCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	newStatus driver.Status

	guard guard.ConstructorGuard
}

// NewChangeDriverStatusCommand creates a command to change a driver's status.
func NewChangeDriverStatusCommand(
	driverID kernel.UUID, newStatus driver.Status,
) (ChangeDriverStatusCommand, error) {
	command := ChangeDriverStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return ChangeDriverStatusCommand{}, err
	}
	if err := command.setNewStatus(newStatus); err != nil {
		return ChangeDriverStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverStatusCommandIsNotConstructed)
}

// DriverID returns the target driver identifier.
func (c ChangeDriverStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// NewStatus returns the requested operational status.
func (c ChangeDriverStatusCommand) NewStatus() driver.Status {
	return c.newStatus
}

func (c *ChangeDriverStatusCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *ChangeDriverStatusCommand) setNewStatus(status driver.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.newStatus = status
	return nil
}
