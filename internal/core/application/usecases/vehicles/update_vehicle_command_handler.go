package vehicles

import (
	"context"

	"transport/internal/pkg/errs"
)

// UpdateVehicleCommandHandler handles vehicle updates. The lookup bypasses
// the soft-delete filter so a deleted vehicle yields a meaningful "cannot
// update a deleted vehicle" error instead of a generic not-found.
type UpdateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle updates.
func NewUpdateVehicleCommandHandler(uowFactory VehicleUoWFactory) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle update command and returns the projection of
// the updated vehicle. Rolls back on any error.
func (h *UpdateVehicleCommandHandler) Handle(
	ctx context.Context, cmd UpdateVehicleCommand,
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

	vehicleEntity, err := vehicleRepo.Get(ctx, cmd.VehicleID(), true)
	if err != nil {
		return VehicleResponse{}, err
	}
	if vehicleEntity.IsDeleted() {
		return VehicleResponse{}, errs.NewCannotModifyDeletedObjectError(
			"update", "vehicle", cmd.VehicleID().String())
	}

	if err = vehicleEntity.Update(
		cmd.Model(),
		cmd.Capacity(),
		cmd.ManufactureYear(),
		cmd.Notes(),
	); err != nil {
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
