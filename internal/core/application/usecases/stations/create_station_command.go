package stations

import (
	"errors"
	"strings"

	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrCreateStationCommandIsNotConstructed = errors.New(
	"CreateStationCommand must be created via NewCreateStationCommand constructor",
)

// CreateStationCommand represents a request to register a new station.
// Field content beyond required-ness is validated by the aggregate itself.
type CreateStationCommand struct { //nolint:recvcheck //using for validation
	name        string
	latitude    float64
	longitude   float64
	address     string
	description string

	guard guard.ConstructorGuard
}

// NewCreateStationCommand creates a command to register a new station.
// Name and address must be non-blank; coordinate ranges and field lengths
// are checked by the aggregate.
func NewCreateStationCommand(
	name string, latitude, longitude float64, address, description string,
) (CreateStationCommand, error) {
	command := CreateStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setName(name); err != nil {
		return CreateStationCommand{}, err
	}
	if err := command.setAddress(address); err != nil {
		return CreateStationCommand{}, err
	}
	command.latitude = latitude
	command.longitude = longitude
	command.description = description

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStationCommand) Validate() error {
	return c.guard.Validate(ErrCreateStationCommandIsNotConstructed)
}

// Name returns the station name from the command.
func (c CreateStationCommand) Name() string {
	return c.name
}

// Latitude returns the latitude from the command.
func (c CreateStationCommand) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude from the command.
func (c CreateStationCommand) Longitude() float64 {
	return c.longitude
}

// Address returns the address from the command.
func (c CreateStationCommand) Address() string {
	return c.address
}

// Description returns the optional description from the command.
func (c CreateStationCommand) Description() string {
	return c.description
}

func (c *CreateStationCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateStationCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}
