package vehicles

import (
	"context"

	"transport/internal/pkg/errs"
)

// DeleteVehicleCommandHandler handles vehicle soft-deletion. The lookup
// bypasses the soft-delete filter so deleting an already deleted vehicle
// yields an "already deleted" error instead of a generic not-found.
type DeleteVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle deletion.
func NewDeleteVehicleCommandHandler(uowFactory VehicleUoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle deletion command. Rolls back on any error.
func (h *DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
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

	vehicleRepo := uow.VehicleRepository()

	vehicleEntity, err := vehicleRepo.Get(ctx, cmd.VehicleID(), true)
	if err != nil {
		return err
	}
	if vehicleEntity.IsDeleted() {
		return errs.NewObjectAlreadyDeletedError("vehicle", cmd.VehicleID().String())
	}

	vehicleEntity.Delete()

	if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
