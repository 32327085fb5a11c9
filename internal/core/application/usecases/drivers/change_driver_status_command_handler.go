package drivers

import (
	"context"
)

// ChangeDriverStatusCommandHandler handles driver status transitions.
// Unlike update and delete, the lookup honors the soft-delete filter, so a
// deleted driver yields a not-found error.
type ChangeDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewChangeDriverStatusCommandHandler creates a handler for driver status changes.
func NewChangeDriverStatusCommandHandler(uowFactory DriverUoWFactory) ChangeDriverStatusCommandHandler {
	return ChangeDriverStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command and returns the projection of
// the driver. Changing to the current status is a no-op that still returns
// the projection. Rolls back on any error.
func (h *ChangeDriverStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeDriverStatusCommand,
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

	driverEntity, err := driverRepo.Get(ctx, cmd.DriverID(), false)
	if err != nil {
		return DriverResponse{}, err
	}

	if err = driverEntity.ChangeStatus(cmd.NewStatus()); err != nil {
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
