package drivers

import (
	"errors"
	"strings"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand represents a request to change an existing driver's
// fields. The license number and status are not updatable through this
// command.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID          kernel.UUID
	fullName          string
	phoneNumber       string
	licenseIssuedDate time.Time
	licenseExpiryDate time.Time
	notes             string

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to update a driver.
func NewUpdateDriverCommand(
	driverID kernel.UUID,
	fullName string,
	phoneNumber string,
	licenseIssuedDate time.Time,
	licenseExpiryDate time.Time,
	notes string,
) (UpdateDriverCommand, error) {
	command := UpdateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return UpdateDriverCommand{}, err
	}
	if err := command.setFullName(fullName); err != nil {
		return UpdateDriverCommand{}, err
	}
	if err := command.setPhoneNumber(phoneNumber); err != nil {
		return UpdateDriverCommand{}, err
	}
	command.licenseIssuedDate = licenseIssuedDate
	command.licenseExpiryDate = licenseExpiryDate
	command.notes = notes

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the target driver identifier.
func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// FullName returns the new full name.
func (c UpdateDriverCommand) FullName() string {
	return c.fullName
}

// PhoneNumber returns the new phone number.
func (c UpdateDriverCommand) PhoneNumber() string {
	return c.phoneNumber
}

// LicenseIssuedDate returns the new license issued date.
func (c UpdateDriverCommand) LicenseIssuedDate() time.Time {
	return c.licenseIssuedDate
}

// LicenseExpiryDate returns the new license expiry date.
func (c UpdateDriverCommand) LicenseExpiryDate() time.Time {
	return c.licenseExpiryDate
}

// Notes returns the new optional notes.
func (c UpdateDriverCommand) Notes() string {
	return c.notes
}

func (c *UpdateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *UpdateDriverCommand) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return errs.NewValueIsRequiredError("fullName")
	}

	c.fullName = fullName
	return nil
}

func (c *UpdateDriverCommand) setPhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}

	c.phoneNumber = phoneNumber
	return nil
}
