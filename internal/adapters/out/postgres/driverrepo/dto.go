// Package driverrepo provides the GORM-backed repository for driver
// aggregates, handling the conversion between domain entities and their
// database representation.
package driverrepo

import (
	"time"

	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The status is stored as its integer value.
type DriverDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName          string    `gorm:"type:varchar(100);not null;index"`
	LicenseNumber     string    `gorm:"type:varchar(50);not null;index"`
	PhoneNumber       string    `gorm:"type:varchar(20);not null"`
	LicenseIssuedDate time.Time `gorm:"type:date;not null"`
	LicenseExpiryDate time.Time `gorm:"type:date;not null"`
	Status            int       `gorm:"type:int;not null;index"`
	UserID            string    `gorm:"type:varchar(100)"`
	Notes             string    `gorm:"type:varchar(500)"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         *time.Time
	IsDeleted         bool `gorm:"not null;index"`
	DeletedAt         *time.Time
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(drv *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:                drv.ID().Bytes(),
		FullName:          drv.FullName(),
		LicenseNumber:     drv.LicenseNumber(),
		PhoneNumber:       drv.PhoneNumber(),
		LicenseIssuedDate: drv.LicenseIssuedDate(),
		LicenseExpiryDate: drv.LicenseExpiryDate(),
		Status:            int(drv.Status()),
		UserID:            drv.UserID(),
		Notes:             drv.Notes(),
		CreatedAt:         drv.CreatedAt(),
		UpdatedAt:         drv.UpdatedAt(),
		IsDeleted:         drv.IsDeleted(),
		DeletedAt:         drv.DeletedAt(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.FullName,
		dto.LicenseNumber,
		dto.PhoneNumber,
		dto.LicenseIssuedDate,
		dto.LicenseExpiryDate,
		driver.Status(dto.Status),
		dto.UserID,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.IsDeleted,
		dto.DeletedAt,
	)
}
