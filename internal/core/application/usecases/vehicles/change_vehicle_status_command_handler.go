package vehicles

import (
	"context"
)

// ChangeVehicleStatusCommandHandler handles vehicle status transitions.
// Unlike update and delete, the lookup honors the soft-delete filter, so a
// deleted vehicle yields a not-found error.
type ChangeVehicleStatusCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewChangeVehicleStatusCommandHandler creates a handler for vehicle status changes.
func NewChangeVehicleStatusCommandHandler(uowFactory VehicleUoWFactory) ChangeVehicleStatusCommandHandler {
	return ChangeVehicleStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command and returns the projection of
// the vehicle. Changing to the current status is a no-op that still returns
// the projection. Rolls back on any error.
func (h *ChangeVehicleStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeVehicleStatusCommand,
) (VehicleResponse, error) {
	if err := cmd.Validate(); err != nil {
		return VehicleResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return VehicleResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()

	vehicleEntity, err := vehicleRepo.Get(ctx, cmd.VehicleID(), false)
	if err != nil {
		return VehicleResponse{}, err
	}

	if err = vehicleEntity.ChangeStatus(cmd.NewStatus()); err != nil {
		return VehicleResponse{}, err
	}

	if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
		return VehicleResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return VehicleResponse{}, err
	}

	return NewVehicleResponse(vehicleEntity), nil
}
