package vehicles

import (
	"time"

	"transport/internal/core/domain/model/vehicle"
)

// VehicleResponse is the read model returned by all vehicle operations.
// IsAvailable is derived at projection time.
type VehicleResponse struct {
	ID                 string     `json:"id"`
	RegistrationNumber string     `json:"registrationNumber"`
	Model              string     `json:"model"`
	Capacity           int        `json:"capacity"`
	ManufactureYear    int        `json:"manufactureYear"`
	Status             string     `json:"status"`
	IsAvailable        bool       `json:"isAvailable"`
	Notes              *string    `json:"notes"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt"`
	IsDeleted          bool       `json:"isDeleted"`
}

// NewVehicleResponse projects a vehicle aggregate to its response shape.
func NewVehicleResponse(veh *vehicle.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                 veh.ID().String(),
		RegistrationNumber: veh.RegistrationNumber(),
		Model:              veh.Model(),
		Capacity:           veh.Capacity(),
		ManufactureYear:    veh.ManufactureYear(),
		Status:             veh.Status().String(),
		IsAvailable:        veh.IsAvailable(),
		Notes:              optionalString(veh.Notes()),
		CreatedAt:          veh.CreatedAt(),
		UpdatedAt:          veh.UpdatedAt(),
		IsDeleted:          veh.IsDeleted(),
	}
}

// NewVehicleResponses projects a slice of vehicle aggregates.
func NewVehicleResponses(vehs []*vehicle.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, 0, len(vehs))
	for _, veh := range vehs {
		responses = append(responses, NewVehicleResponse(veh))
	}
	return responses
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
