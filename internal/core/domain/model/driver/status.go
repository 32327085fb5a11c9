package driver

import (
	"fmt"

	"transport/internal/pkg/errs"
)

// Status represents the operational state of a driver.
// It is a closed set: a driver is either actively working, temporarily on
// leave, or suspended. There are no transition restrictions between the
// valid states.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusActive indicates the driver is working and assignable.
	StatusActive

	// StatusOnLeave indicates the driver is temporarily unavailable.
	StatusOnLeave

	// StatusSuspended indicates the driver is barred from assignment.
	StatusSuspended
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusActive:    "Active",
		StatusOnLeave:   "OnLeave",
		StatusSuspended: "Suspended",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:    "Active",
		StatusOnLeave:   "OnLeave",
		StatusSuspended: "Suspended",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid driver status", s))
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

// StatusFromString parses a status by its name ("Active", "OnLeave",
// "Suspended"). Unrecognized names yield a validation error.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("'%s' is not a valid driver status", value))
}
