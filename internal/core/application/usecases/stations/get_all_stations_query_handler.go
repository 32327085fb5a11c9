package stations

import (
	"context"

	"transport/internal/core/ports"
)

// GetAllStationsQueryHandler retrieves stations matching the query filter,
// sorted by name ascending.
type GetAllStationsQueryHandler struct {
	uowFactory StationUoWFactory
}

// NewGetAllStationsQueryHandler creates a handler for station list retrieval.
func NewGetAllStationsQueryHandler(uowFactory StationUoWFactory) GetAllStationsQueryHandler {
	return GetAllStationsQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle executes the query and returns the station projections.
func (h *GetAllStationsQueryHandler) Handle(
	ctx context.Context, query GetAllStationsQuery,
) ([]StationResponse, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stationEntities, err := uow.StationRepository().GetAll(ctx, ports.StationFilter{
		Search:         query.Search(),
		IncludeDeleted: query.IncludeDeleted(),
	})
	if err != nil {
		return nil, err
	}

	return NewStationResponses(stationEntities), nil
}
