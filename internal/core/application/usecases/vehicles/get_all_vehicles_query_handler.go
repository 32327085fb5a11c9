package vehicles

import (
	"context"

	"transport/internal/core/ports"
)

// GetAllVehiclesQueryHandler retrieves vehicles matching the query filter,
// sorted by registration number ascending.
type GetAllVehiclesQueryHandler struct {
	uowFactory VehicleUoWFactory
}

// NewGetAllVehiclesQueryHandler creates a handler for vehicle list retrieval.
func NewGetAllVehiclesQueryHandler(uowFactory VehicleUoWFactory) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle executes the query and returns the vehicle projections.
func (h *GetAllVehiclesQueryHandler) Handle(
	ctx context.Context, query GetAllVehiclesQuery,
) ([]VehicleResponse, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleEntities, err := uow.VehicleRepository().GetAll(ctx, ports.VehicleFilter{
		Search:         query.Search(),
		Status:         query.Status(),
		IncludeDeleted: query.IncludeDeleted(),
	})
	if err != nil {
		return nil, err
	}

	return NewVehicleResponses(vehicleEntities), nil
}
