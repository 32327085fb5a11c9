package kernel

import (
	"fmt"
	"math"

	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

const (
	// MinLatitude is the minimum valid latitude in decimal degrees.
	MinLatitude float64 = -90
	// MaxLatitude is the maximum valid latitude in decimal degrees.
	MaxLatitude float64 = 90
	// MinLongitude is the minimum valid longitude in decimal degrees.
	MinLongitude float64 = -180
	// MaxLongitude is the maximum valid longitude in decimal degrees.
	MaxLongitude float64 = 180

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0

	// coordinateTolerance is the maximum difference in degrees at which two
	// coordinate components are still considered equal.
	coordinateTolerance = 1e-6
)

// ErrGPSCoordinateIsNotConstructed is returned when attempting to use an
// improperly initialized GPSCoordinate. Coordinates must be created via
// NewGPSCoordinate to ensure validity.
var ErrGPSCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"GPS coordinate must be created via NewGPSCoordinate constructor")

// GPSCoordinate represents a geographic position in decimal degrees.
// GPSCoordinate is an immutable value object that ensures latitude and
// longitude are always within valid bounds. The zero value is invalid and
// will fail validation.
//
// Example:
//
//	pos, err := kernel.NewGPSCoordinate(48.8566, 2.3522)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(pos) // Output: (48.856600, 2.352200)
type GPSCoordinate struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGPSCoordinate creates a GPSCoordinate from latitude and longitude in
// decimal degrees. Latitude must be within [-90, 90] and longitude within
// [-180, 180]. Validation stops at the first violated rule.
func NewGPSCoordinate(latitude float64, longitude float64) (GPSCoordinate, error) {
	coordinate := GPSCoordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := coordinate.setLatitude(latitude); err != nil {
		return GPSCoordinate{}, err
	}
	if err := coordinate.setLongitude(longitude); err != nil {
		return GPSCoordinate{}, err
	}

	return coordinate, nil
}

// Validate checks if the GPSCoordinate was properly constructed.
// The zero value fails this validation.
func (c GPSCoordinate) Validate() error {
	return c.guard.Validate(ErrGPSCoordinateIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (c GPSCoordinate) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in decimal degrees.
func (c GPSCoordinate) Longitude() float64 {
	return c.longitude
}

// String returns the coordinate formatted as "(lat, lon)" with six decimal
// places. Implements fmt.Stringer.
func (c GPSCoordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.latitude, c.longitude)
}

// IsEqual compares two coordinates for equality with a tolerance of 1e-6
// degrees on each component. Both coordinates must be properly constructed.
func (c GPSCoordinate) IsEqual(other GPSCoordinate) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return math.Abs(c.latitude-other.latitude) < coordinateTolerance &&
		math.Abs(c.longitude-other.longitude) < coordinateTolerance, nil
}

// DistanceTo calculates the great-circle distance in kilometers between two
// coordinates using the haversine formula. Both coordinates must be properly
// constructed.
func (c GPSCoordinate) DistanceTo(other GPSCoordinate) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if err := other.Validate(); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(c.latitude)
	lat2 := degreesToRadians(other.latitude)
	dLat := degreesToRadians(other.latitude - c.latitude)
	dLon := degreesToRadians(other.longitude - c.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	cc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * cc, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers to enable self-encapsulated validation during construction.
func (c *GPSCoordinate) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	c.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers to enable self-encapsulated validation during construction.
func (c *GPSCoordinate) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	c.longitude = longitude
	return nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
