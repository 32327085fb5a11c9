// Package vehiclerepo provides the GORM-backed repository for vehicle
// aggregates, handling the conversion between domain entities and their
// database representation.
package vehiclerepo

import (
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
// The status is stored as its integer value.
type VehicleDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	RegistrationNumber string    `gorm:"type:varchar(20);not null;index"`
	Model              string    `gorm:"type:varchar(50);not null"`
	Capacity           int       `gorm:"type:int;not null"`
	ManufactureYear    int       `gorm:"type:int;not null"`
	Status             int       `gorm:"type:int;not null;index"`
	Notes              string    `gorm:"type:varchar(500)"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          *time.Time
	IsDeleted          bool `gorm:"not null;index"`
	DeletedAt          *time.Time
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(veh *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:                 veh.ID().Bytes(),
		RegistrationNumber: veh.RegistrationNumber(),
		Model:              veh.Model(),
		Capacity:           veh.Capacity(),
		ManufactureYear:    veh.ManufactureYear(),
		Status:             int(veh.Status()),
		Notes:              veh.Notes(),
		CreatedAt:          veh.CreatedAt(),
		UpdatedAt:          veh.UpdatedAt(),
		IsDeleted:          veh.IsDeleted(),
		DeletedAt:          veh.DeletedAt(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id,
		dto.RegistrationNumber,
		dto.Model,
		dto.Capacity,
		dto.ManufactureYear,
		vehicle.Status(dto.Status),
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.IsDeleted,
		dto.DeletedAt,
	)
}
