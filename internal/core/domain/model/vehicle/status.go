package vehicle

import (
	"fmt"

	"transport/internal/pkg/errs"
)

// Status represents the operational state of a vehicle.
// It is a closed set with no transition restrictions between valid states.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusActive indicates the vehicle is in service and assignable.
	StatusActive

	// StatusMaintenance indicates the vehicle is undergoing maintenance.
	StatusMaintenance

	// StatusOutOfService indicates the vehicle is withdrawn from service.
	StatusOutOfService
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "Unknown",
		StatusActive:       "Active",
		StatusMaintenance:  "Maintenance",
		StatusOutOfService: "OutOfService",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:       "Active",
		StatusMaintenance:  "Maintenance",
		StatusOutOfService: "OutOfService",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid vehicle status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status by its name ("Active", "Maintenance",
// "OutOfService"). Unrecognized names yield a validation error.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("'%s' is not a valid vehicle status", value))
}
