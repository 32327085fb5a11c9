package driverrepo

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("driver", aggregate.LicenseNumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID. With includeDeleted false, soft-deleted
// drivers are reported as not found.
func (r *GormDriverRepository) Get(
	ctx context.Context, id kernel.UUID, includeDeleted bool,
) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("id = ?", id.Bytes())
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var dto DriverDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithLicenseNumber reports whether a non-deleted driver with the
// given license number exists. A valid excludeID removes that driver from
// consideration.
func (r *GormDriverRepository) ExistsWithLicenseNumber(
	ctx context.Context, licenseNumber string, excludeID kernel.UUID,
) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("license_number = ?", licenseNumber).
		Where("is_deleted = ?", false)
	if excludeID.Validate() == nil {
		query = query.Where("id <> ?", excludeID.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll retrieves drivers matching the filter, sorted by full name ascending.
func (r *GormDriverRepository) GetAll(
	ctx context.Context, filter ports.DriverFilter,
) ([]*driver.Driver, error) {
	query := r.db.WithContext(ctx).Model(&DriverDTO{})
	if !filter.IncludeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if filter.Status.Validate() == nil {
		query = query.Where("status = ?", int(filter.Status))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"full_name ILIKE ? OR license_number ILIKE ? OR phone_number ILIKE ? OR notes ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var dtos []DriverDTO
	if err := query.Order("full_name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drvs := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		drv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drvs = append(drvs, drv)
	}

	return drvs, nil
}
