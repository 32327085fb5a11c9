// Package vehicles contains the application operations for the vehicle
// aggregate: create, update, delete, change status, and the read queries.
package vehicles

import (
	"context"

	"transport/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for the vehicle
// handlers. Handlers depend on these narrow abstractions instead of the
// full ports.UnitOfWork.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}
)
