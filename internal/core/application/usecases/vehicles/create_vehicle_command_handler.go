package vehicles

import (
	"context"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/vehicle"
	"transport/internal/pkg/errs"
)

// CreateVehicleCommandHandler handles the business logic for vehicle
// registration: duplicate-registration pre-check among non-deleted vehicles,
// aggregate construction, and transactional persistence.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle creation command and returns the projection of
// the newly created vehicle. Rolls back on any error.
func (h *CreateVehicleCommandHandler) Handle(
	ctx context.Context, cmd CreateVehicleCommand,
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

	exists, err := vehicleRepo.ExistsWithRegistrationNumber(ctx, cmd.RegistrationNumber(), kernel.UUID{})
	if err != nil {
		return VehicleResponse{}, err
	}
	if exists {
		return VehicleResponse{}, errs.NewObjectAlreadyExistsError(
			"vehicle", fmt.Sprintf("registration number '%s'", cmd.RegistrationNumber()))
	}

	vehicleEntity, err := vehicle.NewVehicle(
		cmd.RegistrationNumber(),
		cmd.Model(),
		cmd.Capacity(),
		cmd.ManufactureYear(),
		cmd.Status(),
		cmd.Notes(),
	)
	if err != nil {
		return VehicleResponse{}, err
	}

	if err = vehicleRepo.Add(ctx, vehicleEntity); err != nil {
		return VehicleResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return VehicleResponse{}, err
	}

	return NewVehicleResponse(vehicleEntity), nil
}
