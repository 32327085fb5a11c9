// Package stationrepo provides the GORM-backed repository for station
// aggregates, handling the conversion between domain entities and their
// database representation.
package stationrepo

import (
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// StationDTO represents the database structure for persisting station aggregates.
type StationDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(100);not null;index"`
	Coordinates CoordinatesDTO `gorm:"embedded;embeddedPrefix:coordinates_"`
	Address     string         `gorm:"type:varchar(200);not null"`
	Description string         `gorm:"type:varchar(500)"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   *time.Time
	IsDeleted   bool `gorm:"not null;index"`
	DeletedAt   *time.Time
}

// TableName overrides GORM's default naming to use "stations".
func (StationDTO) TableName() string {
	return "stations"
}

// CoordinatesDTO represents the embedded GPS coordinates within the station table.
type CoordinatesDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

func fromDomain(st *station.Station) StationDTO {
	return StationDTO{
		ID:   st.ID().Bytes(),
		Name: st.Name(),
		Coordinates: CoordinatesDTO{
			Latitude:  st.Coordinates().Latitude(),
			Longitude: st.Coordinates().Longitude(),
		},
		Address:     st.Address(),
		Description: st.Description(),
		CreatedAt:   st.CreatedAt(),
		UpdatedAt:   st.UpdatedAt(),
		IsDeleted:   st.IsDeleted(),
		DeletedAt:   st.DeletedAt(),
	}
}

func toDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	coordinates, err := kernel.NewGPSCoordinate(dto.Coordinates.Latitude, dto.Coordinates.Longitude)
	if err != nil {
		return nil, err
	}

	return station.RestoreStation(
		id,
		dto.Name,
		coordinates,
		dto.Address,
		dto.Description,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.IsDeleted,
		dto.DeletedAt,
	)
}
