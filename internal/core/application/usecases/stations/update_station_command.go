package stations

import (
	"errors"
	"strings"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrUpdateStationCommandIsNotConstructed = errors.New(
	"UpdateStationCommand must be created via NewUpdateStationCommand constructor",
)

// UpdateStationCommand represents a request to change an existing station's
// fields. The target is addressed by its identifier.
type UpdateStationCommand struct { //nolint:recvcheck //using for validation
	stationID   kernel.UUID
	name        string
	latitude    float64
	longitude   float64
	address     string
	description string

	guard guard.ConstructorGuard
}

// NewUpdateStationCommand creates a command to update a station.
func NewUpdateStationCommand(
	stationID kernel.UUID, name string, latitude, longitude float64, address, description string,
) (UpdateStationCommand, error) {
	command := UpdateStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setStationID(stationID); err != nil {
		return UpdateStationCommand{}, err
	}
	if err := command.setName(name); err != nil {
		return UpdateStationCommand{}, err
	}
	if err := command.setAddress(address); err != nil {
		return UpdateStationCommand{}, err
	}
	command.latitude = latitude
	command.longitude = longitude
	command.description = description

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStationCommandIsNotConstructed)
}

// StationID returns the target station identifier.
func (c UpdateStationCommand) StationID() kernel.UUID {
	return c.stationID
}

// Name returns the new station name.
func (c UpdateStationCommand) Name() string {
	return c.name
}

// Latitude returns the new latitude.
func (c UpdateStationCommand) Latitude() float64 {
	return c.latitude
}

// Longitude returns the new longitude.
func (c UpdateStationCommand) Longitude() float64 {
	return c.longitude
}

// Address returns the new address.
func (c UpdateStationCommand) Address() string {
	return c.address
}

// Description returns the new optional description.
func (c UpdateStationCommand) Description() string {
	return c.description
}

func (c *UpdateStationCommand) setStationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.stationID = id
	return nil
}

func (c *UpdateStationCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateStationCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}
