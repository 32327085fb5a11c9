package vehicle

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
	// MaxRegistrationNumberLength is the maximum length of a registration number.
	MaxRegistrationNumberLength = 20
	// MaxModelLength is the maximum length of a vehicle model name.
	MaxModelLength = 50
	// MaxNotesLength is the maximum length of the free-form notes.
	MaxNotesLength = 500

	// MinCapacity is the minimum seating capacity.
	MinCapacity = 1
	// MaxCapacity is the maximum seating capacity.
	MaxCapacity = 200

	// MinManufactureYear is the earliest accepted manufacture year. The
	// upper bound is the current wall-clock year plus one, so it shifts on
	// January 1st.
	MinManufactureYear = 1900
)

// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle represents a bus in the transport fleet.
// It is an aggregate root that manages vehicle identity, capacity, and
// operational status.
//
// Business rules:
//   - Registration number is required, at most 20 characters, stored upper-cased
//   - Model is required and at most 50 characters
//   - Capacity is between 1 and 200 seats
//   - Manufacture year is between 1900 and next year
//   - Notes are optional, at most 500 characters
//   - Validation is fail-fast: the first violated rule aborts the operation
type Vehicle struct {
	kernel.SoftDeletableEntity
	// registrationNumber is unique among non-deleted vehicles, kept upper-cased
	registrationNumber string
	// model is the manufacturer and model name
	model string
	// capacity is the seating capacity
	capacity int
	// manufactureYear is the year the vehicle was built
	manufactureYear int
	// status is the vehicle's operational state
	status Status
	// notes carries optional free-form information, empty when absent
	notes string
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle with the specified parameters.
// Fields are validated in declaration order and validation stops at the
// first violation.
func NewVehicle(
	registrationNumber string,
	model string,
	capacity int,
	manufactureYear int,
	status Status,
	notes string,
) (*Vehicle, error) {
	veh := &Vehicle{
		SoftDeletableEntity: kernel.NewSoftDeletableEntity(),
		guard:               guard.NewConstructorGuard(),
	}

	if err := veh.setRegistrationNumber(registrationNumber); err != nil {
		return nil, err
	}
	if err := veh.setModel(model); err != nil {
		return nil, err
	}
	if err := veh.setCapacity(capacity); err != nil {
		return nil, err
	}
	if err := veh.setManufactureYear(manufactureYear); err != nil {
		return nil, err
	}
	if err := veh.setStatus(status); err != nil {
		return nil, err
	}
	if err := veh.setNotes(notes); err != nil {
		return nil, err
	}

	return veh, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage,
// preserving its identity, audit timestamps, and soft-delete state.
func RestoreVehicle(
	id kernel.UUID,
	registrationNumber string,
	model string,
	capacity int,
	manufactureYear int,
	status Status,
	notes string,
	createdAt time.Time,
	updatedAt *time.Time,
	isDeleted bool,
	deletedAt *time.Time,
) (*Vehicle, error) {
	base, err := kernel.RestoreSoftDeletableEntity(id, createdAt, updatedAt, isDeleted, deletedAt)
	if err != nil {
		return nil, err
	}

	veh := &Vehicle{
		SoftDeletableEntity: base,
		guard:               guard.NewConstructorGuard(),
	}

	if err = veh.setRegistrationNumber(registrationNumber); err != nil {
		return nil, err
	}
	if err = veh.setModel(model); err != nil {
		return nil, err
	}
	if err = veh.setCapacity(capacity); err != nil {
		return nil, err
	}
	if err = veh.setManufactureYear(manufactureYear); err != nil {
		return nil, err
	}
	if err = veh.setStatus(status); err != nil {
		return nil, err
	}
	if err = veh.setNotes(notes); err != nil {
		return nil, err
	}

	return veh, nil
}

// Update replaces the vehicle's mutable fields after validating all of them.
// The registration number and status are not updatable through this method.
// The vehicle is left unchanged if any field is invalid. On success the
// modification timestamp is stamped.
func (v *Vehicle) Update(model string, capacity int, manufactureYear int, notes string) error {
	updated := *v

	if err := updated.setModel(model); err != nil {
		return err
	}
	if err := updated.setCapacity(capacity); err != nil {
		return err
	}
	if err := updated.setManufactureYear(manufactureYear); err != nil {
		return err
	}
	if err := updated.setNotes(notes); err != nil {
		return err
	}

	updated.MarkUpdated()
	*v = updated
	return nil
}

// ChangeStatus transitions the vehicle to a new operational status.
// Changing to the current status is a no-op and does not stamp the
// modification timestamp.
func (v *Vehicle) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if v.status == newStatus {
		return nil
	}

	v.status = newStatus
	v.MarkUpdated()
	return nil
}

// IsAvailable reports whether the vehicle can be assigned to service:
// active status and not soft-deleted.
func (v *Vehicle) IsAvailable() bool {
	return v.status == StatusActive && !v.IsDeleted()
}

// IsEqual compares two vehicles for equality based on their identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	if other == nil {
		return false
	}
	return v.ID().IsEqual(other.ID())
}

// Validate checks if the Vehicle was properly constructed using a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// RegistrationNumber returns the upper-cased registration number.
func (v *Vehicle) RegistrationNumber() string {
	return v.registrationNumber
}

// Model returns the manufacturer and model name.
func (v *Vehicle) Model() string {
	return v.model
}

// Capacity returns the seating capacity.
func (v *Vehicle) Capacity() int {
	return v.capacity
}

// ManufactureYear returns the year the vehicle was built.
func (v *Vehicle) ManufactureYear() int {
	return v.manufactureYear
}

// Status returns the vehicle's operational status.
func (v *Vehicle) Status() Status {
	return v.status
}

// Notes returns the optional free-form notes, empty when absent.
func (v *Vehicle) Notes() string {
	return v.notes
}

// String returns "Model (REGISTRATION)" for logging and diagnostics.
func (v *Vehicle) String() string {
	return fmt.Sprintf("%s (%s)", v.model, v.registrationNumber)
}

func (v *Vehicle) setRegistrationNumber(registrationNumber string) error {
	registrationNumber = strings.TrimSpace(registrationNumber)
	if registrationNumber == "" {
		return errs.NewValueIsRequiredError("registrationNumber")
	}
	if length := utf8.RuneCountInString(registrationNumber); length > MaxRegistrationNumberLength {
		return errs.NewValueIsTooLongError("registrationNumber", MaxRegistrationNumberLength, length)
	}

	v.registrationNumber = strings.ToUpper(registrationNumber)
	return nil
}

func (v *Vehicle) setModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	if length := utf8.RuneCountInString(model); length > MaxModelLength {
		return errs.NewValueIsTooLongError("model", MaxModelLength, length)
	}

	v.model = model
	return nil
}

func (v *Vehicle) setCapacity(capacity int) error {
	if capacity < MinCapacity || capacity > MaxCapacity {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, MinCapacity, MaxCapacity)
	}

	v.capacity = capacity
	return nil
}

// setManufactureYear validates against the wall-clock year, so the upper
// bound shifts on January 1st.
func (v *Vehicle) setManufactureYear(manufactureYear int) error {
	maxYear := time.Now().UTC().Year() + 1
	if manufactureYear < MinManufactureYear || manufactureYear > maxYear {
		return errs.NewValueIsOutOfRangeError("manufactureYear", manufactureYear, MinManufactureYear, maxYear)
	}

	v.manufactureYear = manufactureYear
	return nil
}

func (v *Vehicle) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	v.status = status
	return nil
}

func (v *Vehicle) setNotes(notes string) error {
	if length := utf8.RuneCountInString(notes); length > MaxNotesLength {
		return errs.NewValueIsTooLongError("notes", MaxNotesLength, length)
	}

	v.notes = strings.TrimSpace(notes)
	return nil
}
