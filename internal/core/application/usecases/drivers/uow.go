// Package drivers contains the application operations for the driver
// aggregate: create, update, delete, change status, and the read queries.
// All operations follow the same template: validate the command, open a
// unit of work, perform at most one read-then-write round trip, commit,
// and project the aggregate to a response shape.
package drivers

import (
	"context"

	"transport/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for the driver
// handlers. Handlers depend on these narrow abstractions instead of the
// full ports.UnitOfWork.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}
)
