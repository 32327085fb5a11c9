// Package memory provides an in-memory implementation of the persistence
// gateway. It honors the same contracts as the PostgreSQL adapter, including
// soft-delete visibility, uniqueness among non-deleted rows, filter
// semantics, and transactional staging, which makes it suitable for tests
// and local development without a database.
package memory

import (
	"sync"

	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/station"
	"transport/internal/core/domain/model/vehicle"
)

// Store is the shared backing state for all in-memory unit of work
// instances. Aggregates are stored by their identifier string and copied on
// the way in and out, so callers never alias stored state.
type Store struct {
	mu       sync.RWMutex
	stations map[string]*station.Station
	drivers  map[string]*driver.Driver
	vehicles map[string]*vehicle.Vehicle
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		stations: make(map[string]*station.Station),
		drivers:  make(map[string]*driver.Driver),
		vehicles: make(map[string]*vehicle.Vehicle),
	}
}

func cloneStation(st *station.Station) *station.Station {
	copied := *st
	return &copied
}

func cloneDriver(drv *driver.Driver) *driver.Driver {
	copied := *drv
	return &copied
}

func cloneVehicle(veh *vehicle.Vehicle) *vehicle.Vehicle {
	copied := *veh
	return &copied
}
