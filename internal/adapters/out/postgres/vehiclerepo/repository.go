package vehiclerepo

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/vehicle"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"vehicle", aggregate.RegistrationNumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vehicle to the database.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle by ID. With includeDeleted false, soft-deleted
// vehicles are reported as not found.
func (r *GormVehicleRepository) Get(
	ctx context.Context, id kernel.UUID, includeDeleted bool,
) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("id = ?", id.Bytes())
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var dto VehicleDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithRegistrationNumber reports whether a non-deleted vehicle with the
// given registration number exists. A valid excludeID removes that vehicle
// from consideration.
func (r *GormVehicleRepository) ExistsWithRegistrationNumber(
	ctx context.Context, registrationNumber string, excludeID kernel.UUID,
) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("registration_number = ?", registrationNumber).
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

// GetAll retrieves vehicles matching the filter, sorted by registration
// number ascending.
func (r *GormVehicleRepository) GetAll(
	ctx context.Context, filter ports.VehicleFilter,
) ([]*vehicle.Vehicle, error) {
	query := r.db.WithContext(ctx).Model(&VehicleDTO{})
	if !filter.IncludeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if filter.Status.Validate() == nil {
		query = query.Where("status = ?", int(filter.Status))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"registration_number ILIKE ? OR model ILIKE ? OR notes ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var dtos []VehicleDTO
	if err := query.Order("registration_number ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	vehs := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		veh, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehs = append(vehs, veh)
	}

	return vehs, nil
}
