package stations

import (
	"context"

	"transport/internal/pkg/errs"
)

// DeleteStationCommandHandler handles station soft-deletion. The lookup
// bypasses the soft-delete filter so deleting an already deleted station
// yields an "already deleted" error instead of a generic not-found.
type DeleteStationCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewDeleteStationCommandHandler creates a handler for station deletion.
func NewDeleteStationCommandHandler(uowFactory StationUoWFactory) DeleteStationCommandHandler {
	return DeleteStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the station deletion command. Rolls back on any error.
func (h *DeleteStationCommandHandler) Handle(ctx context.Context, cmd DeleteStationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stationRepo := uow.StationRepository()

	stationEntity, err := stationRepo.Get(ctx, cmd.StationID(), true)
	if err != nil {
		return err
	}
	if stationEntity.IsDeleted() {
		return errs.NewObjectAlreadyDeletedError("station", cmd.StationID().String())
	}

	stationEntity.Delete()

	if err = stationRepo.Update(ctx, stationEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
