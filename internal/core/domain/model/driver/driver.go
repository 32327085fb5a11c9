package driver

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

const (
	// MaxFullNameLength is the maximum length of a driver's full name.
	MaxFullNameLength = 100
	// MaxLicenseNumberLength is the maximum length of a license number.
	MaxLicenseNumberLength = 50
	// MaxPhoneNumberLength is the maximum length of a phone number.
	MaxPhoneNumberLength = 20
	// MaxNotesLength is the maximum length of the free-form notes.
	MaxNotesLength = 500
)

// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver represents a driver employed by the transport operator.
// It is an aggregate root that manages driver identity, license validity,
// operational status, and an optional link to a system user account.
//
// Business rules:
//   - Full name is required and at most 100 characters
//   - License number is required, at most 50 characters, stored upper-cased
//   - Phone number is required and at most 20 characters
//   - License issued date cannot lie in the future
//   - License expiry date must be strictly after the issued date
//   - Both license dates are stored truncated to the UTC date
//   - Notes are optional, at most 500 characters
//   - Validation is fail-fast: the first violated rule aborts the operation
type Driver struct {
	kernel.SoftDeletableEntity
	// fullName is the driver's display name
	fullName string
	// licenseNumber is unique among non-deleted drivers, kept upper-cased
	licenseNumber string
	// phoneNumber is the driver's contact number
	phoneNumber string
	// licenseIssuedDate is the UTC date the license was issued
	licenseIssuedDate time.Time
	// licenseExpiryDate is the UTC date the license expires
	licenseExpiryDate time.Time
	// status is the driver's operational state
	status Status
	// userID optionally links the driver to a system user account, empty when unlinked
	userID string
	// notes carries optional free-form information, empty when absent
	notes string
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified parameters.
// Fields are validated in declaration order and validation stops at the
// first violation. The driver starts non-deleted with the given status.
func NewDriver(
	fullName string,
	licenseNumber string,
	phoneNumber string,
	licenseIssuedDate time.Time,
	licenseExpiryDate time.Time,
	status Status,
	userID string,
	notes string,
) (*Driver, error) {
	drv := &Driver{
		SoftDeletableEntity: kernel.NewSoftDeletableEntity(),
		userID:              userID,
		guard:               guard.NewConstructorGuard(),
	}

	if err := drv.setFullName(fullName); err != nil {
		return nil, err
	}
	if err := drv.setLicenseNumber(licenseNumber); err != nil {
		return nil, err
	}
	if err := drv.setPhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	if err := drv.setLicenseDates(licenseIssuedDate, licenseExpiryDate); err != nil {
		return nil, err
	}
	if err := drv.setStatus(status); err != nil {
		return nil, err
	}
	if err := drv.setNotes(notes); err != nil {
		return nil, err
	}

	return drv, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// preserving its identity, audit timestamps, soft-delete state, and the
// optional user link.
func RestoreDriver(
	id kernel.UUID,
	fullName string,
	licenseNumber string,
	phoneNumber string,
	licenseIssuedDate time.Time,
	licenseExpiryDate time.Time,
	status Status,
	userID string,
	notes string,
	createdAt time.Time,
	updatedAt *time.Time,
	isDeleted bool,
	deletedAt *time.Time,
) (*Driver, error) {
	base, err := kernel.RestoreSoftDeletableEntity(id, createdAt, updatedAt, isDeleted, deletedAt)
	if err != nil {
		return nil, err
	}

	drv := &Driver{
		SoftDeletableEntity: base,
		userID:              userID,
		guard:               guard.NewConstructorGuard(),
	}

	if err = drv.setFullName(fullName); err != nil {
		return nil, err
	}
	if err = drv.setLicenseNumber(licenseNumber); err != nil {
		return nil, err
	}
	if err = drv.setPhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	if err = drv.setLicenseDates(licenseIssuedDate, licenseExpiryDate); err != nil {
		return nil, err
	}
	if err = drv.setStatus(status); err != nil {
		return nil, err
	}
	if err = drv.setNotes(notes); err != nil {
		return nil, err
	}

	return drv, nil
}

// Update replaces the driver's mutable fields after validating all of them.
// The license number and status are not updatable through this method.
// The driver is left unchanged if any field is invalid. On success the
// modification timestamp is stamped.
func (d *Driver) Update(
	fullName string,
	phoneNumber string,
	licenseIssuedDate time.Time,
	licenseExpiryDate time.Time,
	notes string,
) error {
	updated := *d

	if err := updated.setFullName(fullName); err != nil {
		return err
	}
	if err := updated.setPhoneNumber(phoneNumber); err != nil {
		return err
	}
	if err := updated.setLicenseDates(licenseIssuedDate, licenseExpiryDate); err != nil {
		return err
	}
	if err := updated.setNotes(notes); err != nil {
		return err
	}

	updated.MarkUpdated()
	*d = updated
	return nil
}

// ChangeStatus transitions the driver to a new operational status.
// Changing to the current status is a no-op and does not stamp the
// modification timestamp.
func (d *Driver) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if d.status == newStatus {
		return nil
	}

	d.status = newStatus
	d.MarkUpdated()
	return nil
}

// LinkToUser associates the driver with a system user account.
func (d *Driver) LinkToUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	d.userID = userID
	d.MarkUpdated()
	return nil
}

// UnlinkFromUser removes the association with a system user account.
func (d *Driver) UnlinkFromUser() {
	d.userID = ""
	d.MarkUpdated()
}

// HasValidLicense reports whether the driver's license has not expired.
// The expiry date is compared against today's UTC date, inclusive.
func (d *Driver) HasValidLicense() bool {
	return !d.licenseExpiryDate.Before(truncateToDate(time.Now().UTC()))
}

// IsAvailable reports whether the driver can be assigned to work: active
// status, a valid license, and not soft-deleted.
func (d *Driver) IsAvailable() bool {
	return d.status == StatusActive && d.HasValidLicense() && !d.IsDeleted()
}

// IsEqual compares two drivers for equality based on their identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.ID().IsEqual(other.ID())
}

// Validate checks if the Driver was properly constructed using a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// FullName returns the driver's display name.
func (d *Driver) FullName() string {
	return d.fullName
}

// LicenseNumber returns the upper-cased license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// PhoneNumber returns the driver's contact number.
func (d *Driver) PhoneNumber() string {
	return d.phoneNumber
}

// LicenseIssuedDate returns the UTC date the license was issued.
func (d *Driver) LicenseIssuedDate() time.Time {
	return d.licenseIssuedDate
}

// LicenseExpiryDate returns the UTC date the license expires.
func (d *Driver) LicenseExpiryDate() time.Time {
	return d.licenseExpiryDate
}

// Status returns the driver's operational status.
func (d *Driver) Status() Status {
	return d.status
}

// UserID returns the linked system user account id, empty when unlinked.
func (d *Driver) UserID() string {
	return d.userID
}

// Notes returns the optional free-form notes, empty when absent.
func (d *Driver) Notes() string {
	return d.notes
}

// String returns "FullName (LICENSE)" for logging and diagnostics.
func (d *Driver) String() string {
	return fmt.Sprintf("%s (%s)", d.fullName, d.licenseNumber)
}

func (d *Driver) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	if length := utf8.RuneCountInString(fullName); length > MaxFullNameLength {
		return errs.NewValueIsTooLongError("fullName", MaxFullNameLength, length)
	}

	d.fullName = fullName
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	licenseNumber = strings.TrimSpace(licenseNumber)
	if licenseNumber == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	if length := utf8.RuneCountInString(licenseNumber); length > MaxLicenseNumberLength {
		return errs.NewValueIsTooLongError("licenseNumber", MaxLicenseNumberLength, length)
	}

	d.licenseNumber = strings.ToUpper(licenseNumber)
	return nil
}

func (d *Driver) setPhoneNumber(phoneNumber string) error {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}
	if length := utf8.RuneCountInString(phoneNumber); length > MaxPhoneNumberLength {
		return errs.NewValueIsTooLongError("phoneNumber", MaxPhoneNumberLength, length)
	}

	d.phoneNumber = phoneNumber
	return nil
}

// setLicenseDates validates both license dates together since the expiry
// rule depends on the issued date. Dates are stored truncated to the UTC
// date, but the future check runs against the full current time so a date
// of "today" always passes.
func (d *Driver) setLicenseDates(issued, expiry time.Time) error {
	if issued.After(time.Now().UTC()) {
		return errs.NewInvalidDateOrderError("licenseIssuedDate", "cannot be in the future")
	}
	if !expiry.After(issued) {
		return errs.NewInvalidDateOrderError("licenseExpiryDate", "must be after the issued date")
	}

	d.licenseIssuedDate = truncateToDate(issued)
	d.licenseExpiryDate = truncateToDate(expiry)
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	d.status = status
	return nil
}

func (d *Driver) setNotes(notes string) error {
	if length := utf8.RuneCountInString(notes); length > MaxNotesLength {
		return errs.NewValueIsTooLongError("notes", MaxNotesLength, length)
	}

	d.notes = strings.TrimSpace(notes)
	return nil
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
