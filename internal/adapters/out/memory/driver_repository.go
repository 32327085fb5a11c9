package memory

import (
	"context"
	"sort"

	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"
)

// DriverRepository implements ports.DriverRepository over the in-memory store.
type DriverRepository struct {
	uow *UnitOfWork
}

// Add stages a new driver for the current transaction.
func (r *DriverRepository) Add(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.stagedDrivers[aggregate.ID().String()] = cloneDriver(aggregate)
	return nil
}

// Update stages changes to an existing driver.
func (r *DriverRepository) Update(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().String()
	if _, ok := r.lookup(id); !ok {
		return errs.NewObjectNotFoundError("driver", id)
	}

	r.uow.stagedDrivers[id] = cloneDriver(aggregate)
	return nil
}

// Get retrieves a driver by ID. With includeDeleted false, soft-deleted
// drivers are reported as not found.
func (r *DriverRepository) Get(
	_ context.Context, id kernel.UUID, includeDeleted bool,
) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	drv, ok := r.lookup(id.String())
	if !ok || (!includeDeleted && drv.IsDeleted()) {
		return nil, errs.NewObjectNotFoundError("driver", id.String())
	}

	return cloneDriver(drv), nil
}

// ExistsWithLicenseNumber reports whether a non-deleted driver with the given
// license number exists, excluding the driver identified by excludeID when valid.
func (r *DriverRepository) ExistsWithLicenseNumber(
	_ context.Context, licenseNumber string, excludeID kernel.UUID,
) (bool, error) {
	exclude := ""
	if excludeID.Validate() == nil {
		exclude = excludeID.String()
	}

	for id, drv := range r.merged() {
		if id == exclude || drv.IsDeleted() {
			continue
		}
		if drv.LicenseNumber() == licenseNumber {
			return true, nil
		}
	}

	return false, nil
}

// GetAll retrieves drivers matching the filter, sorted by full name ascending.
func (r *DriverRepository) GetAll(
	_ context.Context, filter ports.DriverFilter,
) ([]*driver.Driver, error) {
	statusFilter := filter.Status.Validate() == nil

	result := make([]*driver.Driver, 0)
	for _, drv := range r.merged() {
		if !filter.IncludeDeleted && drv.IsDeleted() {
			continue
		}
		if statusFilter && drv.Status() != filter.Status {
			continue
		}
		if filter.Search != "" && !matchesDriverSearch(drv, filter.Search) {
			continue
		}
		result = append(result, cloneDriver(drv))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].FullName() < result[j].FullName()
	})

	return result, nil
}

func matchesDriverSearch(drv *driver.Driver, search string) bool {
	return containsFold(drv.FullName(), search) ||
		containsFold(drv.LicenseNumber(), search) ||
		containsFold(drv.PhoneNumber(), search) ||
		containsFold(drv.Notes(), search)
}

func (r *DriverRepository) lookup(id string) (*driver.Driver, bool) {
	if drv, ok := r.uow.stagedDrivers[id]; ok {
		return drv, true
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	drv, ok := r.uow.store.drivers[id]
	return drv, ok
}

func (r *DriverRepository) merged() map[string]*driver.Driver {
	r.uow.store.mu.RLock()
	view := make(map[string]*driver.Driver, len(r.uow.store.drivers))
	for id, drv := range r.uow.store.drivers {
		view[id] = drv
	}
	r.uow.store.mu.RUnlock()

	for id, drv := range r.uow.stagedDrivers {
		view[id] = drv
	}

	return view
}
