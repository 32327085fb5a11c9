package station

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
	// MaxNameLength is the maximum length of a station name.
	MaxNameLength = 100
	// MaxAddressLength is the maximum length of a station address.
	MaxAddressLength = 200
	// MaxDescriptionLength is the maximum length of a station description.
	MaxDescriptionLength = 500
)

// ErrStationIsNotConstructed is returned when using an improperly initialized Station.
var ErrStationIsNotConstructed = errors.New("Station must be created via NewStation constructor")

// Station represents a transport station in the system.
// It is an aggregate root that manages the station's identity, location, and
// soft-delete lifecycle.
//
// Business rules:
//   - Name is required and at most 100 characters
//   - Address is required and at most 200 characters
//   - Description is optional, at most 500 characters
//   - Coordinates are a validated GPS position
//   - String fields are trimmed before storage
//   - Validation is fail-fast: the first violated rule aborts the operation
//
// Stations are never physically removed. Delete marks them as soft-deleted
// and Restore reverses that.
type Station struct {
	kernel.SoftDeletableEntity
	// name is the human-readable station name, unique among non-deleted stations
	name string
	// coordinates is the geographic position of the station
	coordinates kernel.GPSCoordinate
	// address is the postal address of the station
	address string
	// description carries optional free-form information, empty when absent
	description string
	// guard ensures the station was properly constructed
	guard guard.ConstructorGuard
}

// NewStation creates a new Station with the specified parameters.
// All fields are validated in declaration order and validation stops at the
// first violation. Returns a fully initialized, non-deleted station on
// success.
func NewStation(name string, latitude, longitude float64, address, description string) (*Station, error) {
	station := &Station{
		SoftDeletableEntity: kernel.NewSoftDeletableEntity(),
		guard:               guard.NewConstructorGuard(),
	}

	if err := station.setName(name); err != nil {
		return nil, err
	}
	if err := station.setCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	if err := station.setAddress(address); err != nil {
		return nil, err
	}
	if err := station.setDescription(description); err != nil {
		return nil, err
	}

	return station, nil
}

// RestoreStation reconstructs a Station aggregate from persistent storage,
// preserving its identity, audit timestamps, and soft-delete state. The
// restored station behaves identically to one created through NewStation.
func RestoreStation(
	id kernel.UUID,
	name string,
	coordinates kernel.GPSCoordinate,
	address string,
	description string,
	createdAt time.Time,
	updatedAt *time.Time,
	isDeleted bool,
	deletedAt *time.Time,
) (*Station, error) {
	base, err := kernel.RestoreSoftDeletableEntity(id, createdAt, updatedAt, isDeleted, deletedAt)
	if err != nil {
		return nil, err
	}
	if err = coordinates.Validate(); err != nil {
		return nil, err
	}

	station := &Station{
		SoftDeletableEntity: base,
		coordinates:         coordinates,
		guard:               guard.NewConstructorGuard(),
	}

	if err = station.setName(name); err != nil {
		return nil, err
	}
	if err = station.setAddress(address); err != nil {
		return nil, err
	}
	if err = station.setDescription(description); err != nil {
		return nil, err
	}

	return station, nil
}

// Update replaces the station's mutable fields after validating all of them.
// The station is left unchanged if any field is invalid. On success the
// modification timestamp is stamped.
func (s *Station) Update(name string, latitude, longitude float64, address, description string) error {
	updated := *s

	if err := updated.setName(name); err != nil {
		return err
	}
	if err := updated.setCoordinates(latitude, longitude); err != nil {
		return err
	}
	if err := updated.setAddress(address); err != nil {
		return err
	}
	if err := updated.setDescription(description); err != nil {
		return err
	}

	updated.MarkUpdated()
	*s = updated
	return nil
}

// IsEqual compares two stations for equality based on their identifiers.
func (s *Station) IsEqual(other *Station) bool {
	if other == nil {
		return false
	}
	return s.ID().IsEqual(other.ID())
}

// Validate checks if the Station was properly constructed using a constructor.
func (s *Station) Validate() error {
	if s == nil {
		return ErrStationIsNotConstructed
	}
	return s.guard.Validate(ErrStationIsNotConstructed)
}

// Name returns the station name.
func (s *Station) Name() string {
	return s.name
}

// Coordinates returns the geographic position of the station.
func (s *Station) Coordinates() kernel.GPSCoordinate {
	return s.coordinates
}

// Address returns the postal address of the station.
func (s *Station) Address() string {
	return s.address
}

// Description returns the optional description, empty when absent.
func (s *Station) Description() string {
	return s.description
}

// DistanceTo calculates the great-circle distance in kilometers between this
// station and another one.
func (s *Station) DistanceTo(other *Station) (float64, error) {
	if other == nil {
		return 0, errs.NewValueIsRequiredError("other")
	}
	return s.coordinates.DistanceTo(other.coordinates)
}

// String returns "Name (lat, lon)" for logging and diagnostics.
func (s *Station) String() string {
	return fmt.Sprintf("%s %s", s.name, s.coordinates)
}

func (s *Station) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if length := utf8.RuneCountInString(name); length > MaxNameLength {
		return errs.NewValueIsTooLongError("name", MaxNameLength, length)
	}

	s.name = name
	return nil
}

func (s *Station) setCoordinates(latitude, longitude float64) error {
	coordinates, err := kernel.NewGPSCoordinate(latitude, longitude)
	if err != nil {
		return err
	}

	s.coordinates = coordinates
	return nil
}

func (s *Station) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if length := utf8.RuneCountInString(address); length > MaxAddressLength {
		return errs.NewValueIsTooLongError("address", MaxAddressLength, length)
	}

	s.address = address
	return nil
}

func (s *Station) setDescription(description string) error {
	if length := utf8.RuneCountInString(description); length > MaxDescriptionLength {
		return errs.NewValueIsTooLongError("description", MaxDescriptionLength, length)
	}

	s.description = strings.TrimSpace(description)
	return nil
}
