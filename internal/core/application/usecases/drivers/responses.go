package drivers

import (
	"time"

	"transport/internal/core/domain/model/driver"
)

// DriverResponse is the read model returned by all driver operations.
// HasValidLicense and IsAvailable are derived at projection time.
type DriverResponse struct {
	ID                string     `json:"id"`
	FullName          string     `json:"fullName"`
	LicenseNumber     string     `json:"licenseNumber"`
	PhoneNumber       string     `json:"phoneNumber"`
	LicenseIssuedDate time.Time  `json:"licenseIssuedDate"`
	LicenseExpiryDate time.Time  `json:"licenseExpiryDate"`
	Status            string     `json:"status"`
	HasValidLicense   bool       `json:"hasValidLicense"`
	IsAvailable       bool       `json:"isAvailable"`
	UserID            *string    `json:"userId"`
	Notes             *string    `json:"notes"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         *time.Time `json:"updatedAt"`
	IsDeleted         bool       `json:"isDeleted"`
}

// NewDriverResponse projects a driver aggregate to its response shape.
func NewDriverResponse(drv *driver.Driver) DriverResponse {
	return DriverResponse{
		ID:                drv.ID().String(),
		FullName:          drv.FullName(),
		LicenseNumber:     drv.LicenseNumber(),
		PhoneNumber:       drv.PhoneNumber(),
		LicenseIssuedDate: drv.LicenseIssuedDate(),
		LicenseExpiryDate: drv.LicenseExpiryDate(),
		Status:            drv.Status().String(),
		HasValidLicense:   drv.HasValidLicense(),
		IsAvailable:       drv.IsAvailable(),
		UserID:            optionalString(drv.UserID()),
		Notes:             optionalString(drv.Notes()),
		CreatedAt:         drv.CreatedAt(),
		UpdatedAt:         drv.UpdatedAt(),
		IsDeleted:         drv.IsDeleted(),
	}
}

// NewDriverResponses projects a slice of driver aggregates.
func NewDriverResponses(drvs []*driver.Driver) []DriverResponse {
	responses := make([]DriverResponse, 0, len(drvs))
	for _, drv := range drvs {
		responses = append(responses, NewDriverResponse(drv))
	}
	return responses
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
