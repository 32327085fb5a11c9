package memory

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/station"
	"transport/internal/core/domain/model/vehicle"
	"transport/internal/core/ports"
)

// ErrNoActiveTransaction is returned when Commit or Rollback is called
// without a preceding Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates in-memory unit of work instances sharing one store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork instance with its own staging area.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes until Commit and applies them atomically under
// the store lock. Reads within the transaction see staged writes first.
type UnitOfWork struct {
	store  *Store
	active bool

	stagedStations map[string]*station.Station
	stagedDrivers  map[string]*driver.Driver
	stagedVehicles map[string]*vehicle.Vehicle
}

// Begin starts a transaction. Calling Begin on an active instance is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.active = true
	uow.stagedStations = make(map[string]*station.Station)
	uow.stagedDrivers = make(map[string]*driver.Driver)
	uow.stagedVehicles = make(map[string]*vehicle.Vehicle)
	return nil
}

// Commit applies all staged writes to the store atomically.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()

	for id, st := range uow.stagedStations {
		uow.store.stations[id] = st
	}
	for id, drv := range uow.stagedDrivers {
		uow.store.drivers[id] = drv
	}
	for id, veh := range uow.stagedVehicles {
		uow.store.vehicles[id] = veh
	}

	uow.reset()
	return nil
}

// Rollback discards all staged writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.reset()
	return nil
}

// StationRepository returns a station repository bound to this unit of work.
func (uow *UnitOfWork) StationRepository() ports.StationRepository {
	return &StationRepository{uow: uow}
}

// DriverRepository returns a driver repository bound to this unit of work.
func (uow *UnitOfWork) DriverRepository() ports.DriverRepository {
	return &DriverRepository{uow: uow}
}

// VehicleRepository returns a vehicle repository bound to this unit of work.
func (uow *UnitOfWork) VehicleRepository() ports.VehicleRepository {
	return &VehicleRepository{uow: uow}
}

func (uow *UnitOfWork) reset() {
	uow.active = false
	uow.stagedStations = nil
	uow.stagedDrivers = nil
	uow.stagedVehicles = nil
}
