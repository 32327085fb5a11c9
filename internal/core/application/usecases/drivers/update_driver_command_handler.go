package drivers

import (
	"context"

	"transport/internal/pkg/errs"
)

// UpdateDriverCommandHandler handles driver updates. The lookup bypasses the
// soft-delete filter so a deleted driver yields a meaningful "cannot update
// a deleted driver" error instead of a generic not-found.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverCommandHandler creates a handler for driver updates.
func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver update command and returns the projection of
// the updated driver. Rolls back on any error.
func (h *UpdateDriverCommandHandler) Handle(
	ctx context.Context, cmd UpdateDriverCommand,
) (DriverResponse, error) {
	if err := cmd.Validate(); err != nil {
		return DriverResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DriverResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	driverEntity, err := driverRepo.Get(ctx, cmd.DriverID(), true)
	if err != nil {
		return DriverResponse{}, err
	}
	if driverEntity.IsDeleted() {
		return DriverResponse{}, errs.NewCannotModifyDeletedObjectError(
			"update", "driver", cmd.DriverID().String())
	}

	if err = driverEntity.Update(
		cmd.FullName(),
		cmd.PhoneNumber(),
		cmd.LicenseIssuedDate(),
		cmd.LicenseExpiryDate(),
		cmd.Notes(),
	); err != nil {
		return DriverResponse{}, err
	}

	if err = driverRepo.Update(ctx, driverEntity); err != nil {
		return DriverResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DriverResponse{}, err
	}

	return NewDriverResponse(driverEntity), nil
}
