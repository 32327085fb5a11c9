package stationrepo

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/station"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStationRepository implements ports.StationRepository using GORM.
type GormStationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStationRepository creates a new GORM station repository.
func NewGormStationRepository(db *gorm.DB, tracker aggregateTracker) *GormStationRepository {
	return &GormStationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new station to the database.
func (r *GormStationRepository) Add(ctx context.Context, aggregate *station.Station) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("station", aggregate.Name(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing station to the database.
func (r *GormStationRepository) Update(ctx context.Context, aggregate *station.Station) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("station", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a station by ID. With includeDeleted false, soft-deleted
// stations are reported as not found.
func (r *GormStationRepository) Get(
	ctx context.Context, id kernel.UUID, includeDeleted bool,
) (*station.Station, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("id = ?", id.Bytes())
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var dto StationDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("station", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithName reports whether a non-deleted station with the given name
// exists. A valid excludeID removes that station from consideration.
func (r *GormStationRepository) ExistsWithName(
	ctx context.Context, name string, excludeID kernel.UUID,
) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&StationDTO{}).
		Where("name = ?", name).
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

// GetAll retrieves stations matching the filter, sorted by name ascending.
func (r *GormStationRepository) GetAll(
	ctx context.Context, filter ports.StationFilter,
) ([]*station.Station, error) {
	query := r.db.WithContext(ctx).Model(&StationDTO{})
	if !filter.IncludeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR address ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var dtos []StationDTO
	if err := query.Order("name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	stations := make([]*station.Station, 0, len(dtos))
	for _, dto := range dtos {
		st, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stations = append(stations, st)
	}

	return stations, nil
}
