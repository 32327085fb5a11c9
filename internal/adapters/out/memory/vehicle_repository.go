package memory

import (
	"context"
	"sort"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/vehicle"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"
)

// VehicleRepository implements ports.VehicleRepository over the in-memory store.
type VehicleRepository struct {
	uow *UnitOfWork
}

// Add stages a new vehicle for the current transaction.
func (r *VehicleRepository) Add(_ context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.stagedVehicles[aggregate.ID().String()] = cloneVehicle(aggregate)
	return nil
}

// Update stages changes to an existing vehicle.
func (r *VehicleRepository) Update(_ context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().String()
	if _, ok := r.lookup(id); !ok {
		return errs.NewObjectNotFoundError("vehicle", id)
	}

	r.uow.stagedVehicles[id] = cloneVehicle(aggregate)
	return nil
}

// Get retrieves a vehicle by ID. With includeDeleted false, soft-deleted
// vehicles are reported as not found.
func (r *VehicleRepository) Get(
	_ context.Context, id kernel.UUID, includeDeleted bool,
) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	veh, ok := r.lookup(id.String())
	if !ok || (!includeDeleted && veh.IsDeleted()) {
		return nil, errs.NewObjectNotFoundError("vehicle", id.String())
	}

	return cloneVehicle(veh), nil
}

// ExistsWithRegistrationNumber reports whether a non-deleted vehicle with the
// given registration number exists, excluding the vehicle identified by
// excludeID when valid.
func (r *VehicleRepository) ExistsWithRegistrationNumber(
	_ context.Context, registrationNumber string, excludeID kernel.UUID,
) (bool, error) {
	exclude := ""
	if excludeID.Validate() == nil {
		exclude = excludeID.String()
	}

	for id, veh := range r.merged() {
		if id == exclude || veh.IsDeleted() {
			continue
		}
		if veh.RegistrationNumber() == registrationNumber {
			return true, nil
		}
	}

	return false, nil
}

// GetAll retrieves vehicles matching the filter, sorted by registration
// number ascending.
func (r *VehicleRepository) GetAll(
	_ context.Context, filter ports.VehicleFilter,
) ([]*vehicle.Vehicle, error) {
	statusFilter := filter.Status.Validate() == nil

	result := make([]*vehicle.Vehicle, 0)
	for _, veh := range r.merged() {
		if !filter.IncludeDeleted && veh.IsDeleted() {
			continue
		}
		if statusFilter && veh.Status() != filter.Status {
			continue
		}
		if filter.Search != "" && !matchesVehicleSearch(veh, filter.Search) {
			continue
		}
		result = append(result, cloneVehicle(veh))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].RegistrationNumber() < result[j].RegistrationNumber()
	})

	return result, nil
}

func matchesVehicleSearch(veh *vehicle.Vehicle, search string) bool {
	return containsFold(veh.RegistrationNumber(), search) ||
		containsFold(veh.Model(), search) ||
		containsFold(veh.Notes(), search)
}

func (r *VehicleRepository) lookup(id string) (*vehicle.Vehicle, bool) {
	if veh, ok := r.uow.stagedVehicles[id]; ok {
		return veh, true
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	veh, ok := r.uow.store.vehicles[id]
	return veh, ok
}

func (r *VehicleRepository) merged() map[string]*vehicle.Vehicle {
	r.uow.store.mu.RLock()
	view := make(map[string]*vehicle.Vehicle, len(r.uow.store.vehicles))
	for id, veh := range r.uow.store.vehicles {
		view[id] = veh
	}
	r.uow.store.mu.RUnlock()

	for id, veh := range r.uow.stagedVehicles {
		view[id] = veh
	}

	return view
}
