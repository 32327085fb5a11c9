package drivers

import (
	"context"

	"transport/internal/pkg/errs"
)

// DeleteDriverCommandHandler handles driver soft-deletion. The lookup
// bypasses the soft-delete filter so deleting an already deleted driver
// yields an "already deleted" error instead of a generic not-found.
type DeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver deletion.
func NewDeleteDriverCommandHandler(uowFactory DriverUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver deletion command. Rolls back on any error.
func (h *DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	driverRepo := uow.DriverRepository()

	driverEntity, err := driverRepo.Get(ctx, cmd.DriverID(), true)
	if err != nil {
		return err
	}
	if driverEntity.IsDeleted() {
		return errs.NewObjectAlreadyDeletedError("driver", cmd.DriverID().String())
	}

	driverEntity.Delete()

	if err = driverRepo.Update(ctx, driverEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
