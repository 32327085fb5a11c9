package stations

import (
	"context"
)

// GetStationQueryHandler retrieves a single station. Soft-deleted stations
// are treated as absent.
type GetStationQueryHandler struct {
	uowFactory StationUoWFactory
}

// NewGetStationQueryHandler creates a handler for single-station retrieval.
func NewGetStationQueryHandler(uowFactory StationUoWFactory) GetStationQueryHandler {
	return GetStationQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle executes the query and returns the station projection.
func (h *GetStationQueryHandler) Handle(ctx context.Context, query GetStationQuery) (StationResponse, error) {
	if err := query.Validate(); err != nil {
		return StationResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StationResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stationEntity, err := uow.StationRepository().Get(ctx, query.StationID(), false)
	if err != nil {
		return StationResponse{}, err
	}

	return NewStationResponse(stationEntity), nil
}
