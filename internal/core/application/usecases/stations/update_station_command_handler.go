package stations

import (
	"context"
	"fmt"

	"transport/internal/pkg/errs"
)

// UpdateStationCommandHandler handles station updates. The lookup bypasses
// the soft-delete filter so a deleted station yields a meaningful "cannot
// update a deleted station" error instead of a generic not-found.
type UpdateStationCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewUpdateStationCommandHandler creates a handler for station updates.
func NewUpdateStationCommandHandler(uowFactory StationUoWFactory) UpdateStationCommandHandler {
	return UpdateStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the station update command and returns the projection of
// the updated station. Rolls back on any error.
func (h *UpdateStationCommandHandler) Handle(
	ctx context.Context, cmd UpdateStationCommand,
) (StationResponse, error) {
	if err := cmd.Validate(); err != nil {
		return StationResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StationResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stationRepo := uow.StationRepository()

	stationEntity, err := stationRepo.Get(ctx, cmd.StationID(), true)
	if err != nil {
		return StationResponse{}, err
	}
	if stationEntity.IsDeleted() {
		return StationResponse{}, errs.NewCannotModifyDeletedObjectError(
			"update", "station", cmd.StationID().String())
	}

	exists, err := stationRepo.ExistsWithName(ctx, cmd.Name(), cmd.StationID())
	if err != nil {
		return StationResponse{}, err
	}
	if exists {
		return StationResponse{}, errs.NewObjectAlreadyExistsError(
			"station", fmt.Sprintf("name '%s'", cmd.Name()))
	}

	if err = stationEntity.Update(
		cmd.Name(), cmd.Latitude(), cmd.Longitude(), cmd.Address(), cmd.Description()); err != nil {
		return StationResponse{}, err
	}

	if err = stationRepo.Update(ctx, stationEntity); err != nil {
		return StationResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StationResponse{}, err
	}

	return NewStationResponse(stationEntity), nil
}
