package stations

import (
	"context"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/station"
	"transport/internal/pkg/errs"
)

// CreateStationCommandHandler handles the business logic for station
// registration: duplicate-name pre-check among non-deleted stations,
// aggregate construction, and transactional persistence.
type CreateStationCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewCreateStationCommandHandler creates a handler for station registration.
func NewCreateStationCommandHandler(uowFactory StationUoWFactory) CreateStationCommandHandler {
	return CreateStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the station creation command and returns the projection
// of the newly created station. Rolls back on any error.
func (h *CreateStationCommandHandler) Handle(
	ctx context.Context, cmd CreateStationCommand,
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

	exists, err := stationRepo.ExistsWithName(ctx, cmd.Name(), kernel.UUID{})
	if err != nil {
		return StationResponse{}, err
	}
	if exists {
		return StationResponse{}, errs.NewObjectAlreadyExistsError(
			"station", fmt.Sprintf("name '%s'", cmd.Name()))
	}

	stationEntity, err := station.NewStation(
		cmd.Name(), cmd.Latitude(), cmd.Longitude(), cmd.Address(), cmd.Description())
	if err != nil {
		return StationResponse{}, err
	}

	if err = stationRepo.Add(ctx, stationEntity); err != nil {
		return StationResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StationResponse{}, err
	}

	return NewStationResponse(stationEntity), nil
}
