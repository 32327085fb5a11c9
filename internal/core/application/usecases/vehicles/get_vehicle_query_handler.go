package vehicles

import (
	"context"
)

// GetVehicleQueryHandler retrieves a single vehicle. Soft-deleted vehicles
// are treated as absent.
type GetVehicleQueryHandler struct {
	uowFactory VehicleUoWFactory
}

// NewGetVehicleQueryHandler creates a handler for single-vehicle retrieval.
func NewGetVehicleQueryHandler(uowFactory VehicleUoWFactory) GetVehicleQueryHandler {
	return GetVehicleQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle executes the query and returns the vehicle projection.
func (h *GetVehicleQueryHandler) Handle(ctx context.Context, query GetVehicleQuery) (VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return VehicleResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return VehicleResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleEntity, err := uow.VehicleRepository().Get(ctx, query.VehicleID(), false)
	if err != nil {
		return VehicleResponse{}, err
	}

	return NewVehicleResponse(vehicleEntity), nil
}
