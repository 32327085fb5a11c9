// Package stations contains the application operations for the station
// aggregate: create, update, delete, and the read queries. All operations
// follow the same template: validate the command, open a unit of work,
// perform at most one read-then-write round trip, commit, and project the
// aggregate to a response shape.
package stations

import (
	"context"

	"transport/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for the station
// handlers. Handlers depend on these narrow abstractions instead of the
// full ports.UnitOfWork.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// StationRepoFactory provides access to the station repository within a transaction.
	StationRepoFactory interface {
		StationRepository() ports.StationRepository
	}

	// StationUoW manages transactions for station-only operations.
	StationUoW interface {
		TxManager
		StationRepoFactory
	}

	// StationUoWFactory creates new station unit of work instances.
	StationUoWFactory interface {
		Create() StationUoW
	}
)
