package drivers

import (
	"errors"
	"strings"
	"time"

	"transport/internal/core/domain/model/driver"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver.
// Field content beyond required-ness is validated by the aggregate itself.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	fullName          string
	licenseNumber     string
	phoneNumber       string
	licenseIssuedDate time.Time
	licenseExpiryDate time.Time
	status            driver.Status
	userID            string
	notes             string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// The userID optionally links the new driver to a system user account.
func NewCreateDriverCommand(
	fullName string,
	licenseNumber string,
	phoneNumber string,
	licenseIssuedDate time.Time,
	licenseExpiryDate time.Time,
	status driver.Status,
	userID string,
	notes string,
) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setFullName(fullName); err != nil {
		return CreateDriverCommand{}, err
	}
	if err := command.setLicenseNumber(licenseNumber); err != nil {
		return CreateDriverCommand{}, err
	}
	if err := command.setPhoneNumber(phoneNumber); err != nil {
		return CreateDriverCommand{}, err
	}
	if err := command.setStatus(status); err != nil {
		return CreateDriverCommand{}, err
	}
	command.licenseIssuedDate = licenseIssuedDate
	command.licenseExpiryDate = licenseExpiryDate
	command.userID = userID
	command.notes = notes

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// FullName returns the driver's full name from the command.
func (c CreateDriverCommand) FullName() string {
	return c.fullName
}

// LicenseNumber returns the license number from the command, upper-cased.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

// PhoneNumber returns the phone number from the command.
func (c CreateDriverCommand) PhoneNumber() string {
	return c.phoneNumber
}

// LicenseIssuedDate returns the license issued date from the command.
func (c CreateDriverCommand) LicenseIssuedDate() time.Time {
	return c.licenseIssuedDate
}

// LicenseExpiryDate returns the license expiry date from the command.
func (c CreateDriverCommand) LicenseExpiryDate() time.Time {
	return c.licenseExpiryDate
}

// Status returns the initial operational status from the command.
func (c CreateDriverCommand) Status() driver.Status {
	return c.status
}

// UserID returns the optional system user account link from the command.
func (c CreateDriverCommand) UserID() string {
	return c.userID
}

// Notes returns the optional notes from the command.
func (c CreateDriverCommand) Notes() string {
	return c.notes
}

func (c *CreateDriverCommand) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return errs.NewValueIsRequiredError("fullName")
	}

	c.fullName = fullName
	return nil
}

func (c *CreateDriverCommand) setLicenseNumber(licenseNumber string) error {
	licenseNumber = strings.TrimSpace(licenseNumber)
	if licenseNumber == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}

	c.licenseNumber = strings.ToUpper(licenseNumber)
	return nil
}

func (c *CreateDriverCommand) setPhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}

	c.phoneNumber = phoneNumber
	return nil
}

func (c *CreateDriverCommand) setStatus(status driver.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
