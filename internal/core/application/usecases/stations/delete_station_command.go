package stations

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrDeleteStationCommandIsNotConstructed = errors.New(
	"DeleteStationCommand must be created via NewDeleteStationCommand constructor",
)

// DeleteStationCommand represents a request to soft-delete a station.
type DeleteStationCommand struct { //nolint:recvcheck //using for validation
	stationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteStationCommand creates a command to soft-delete a station.
func NewDeleteStationCommand(stationID kernel.UUID) (DeleteStationCommand, error) {
	command := DeleteStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setStationID(stationID); err != nil {
		return DeleteStationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteStationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStationCommandIsNotConstructed)
}

// StationID returns the target station identifier.
func (c DeleteStationCommand) StationID() kernel.UUID {
	return c.stationID
}

func (c *DeleteStationCommand) setStationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.stationID = id
	return nil
}
