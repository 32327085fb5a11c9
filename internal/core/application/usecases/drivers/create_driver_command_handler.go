package drivers

import (
	"context"
	"fmt"

	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
)

// CreateDriverCommandHandler handles the business logic for driver
// registration: duplicate-license pre-check among non-deleted drivers,
// aggregate construction, and transactional persistence.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver creation command and returns the projection of
// the newly created driver. Rolls back on any error.
func (h *CreateDriverCommandHandler) Handle(
	ctx context.Context, cmd CreateDriverCommand,
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

	exists, err := driverRepo.ExistsWithLicenseNumber(ctx, cmd.LicenseNumber(), kernel.UUID{})
	if err != nil {
		return DriverResponse{}, err
	}
	if exists {
		return DriverResponse{}, errs.NewObjectAlreadyExistsError(
			"driver", fmt.Sprintf("license number '%s'", cmd.LicenseNumber()))
	}

	driverEntity, err := driver.NewDriver(
		cmd.FullName(),
		cmd.LicenseNumber(),
		cmd.PhoneNumber(),
		cmd.LicenseIssuedDate(),
		cmd.LicenseExpiryDate(),
		cmd.Status(),
		cmd.UserID(),
		cmd.Notes(),
	)
	if err != nil {
		return DriverResponse{}, err
	}

	if err = driverRepo.Add(ctx, driverEntity); err != nil {
		return DriverResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DriverResponse{}, err
	}

	return NewDriverResponse(driverEntity), nil
}
