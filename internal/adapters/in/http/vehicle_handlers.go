package http

import (
	"net/http"

	"transport/internal/core/application/usecases/vehicles"
	"transport/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

type createVehicleRequest struct {
	RegistrationNumber string `json:"registrationNumber"`
	Model              string `json:"model"`
	Capacity           int    `json:"capacity"`
	ManufactureYear    int    `json:"manufactureYear"`
	Status             string `json:"status"`
	Notes              string `json:"notes"`
}

type updateVehicleRequest struct {
	Model           string `json:"model"`
	Capacity        int    `json:"capacity"`
	ManufactureYear int    `json:"manufactureYear"`
	Notes           string `json:"notes"`
}

// vehicleStatusFilter parses the optional status query parameter. An empty
// value means no filtering.
func vehicleStatusFilter(ctx echo.Context) (vehicle.Status, error) {
	raw := ctx.QueryParam("status")
	if raw == "" {
		return vehicle.StatusUnknown, nil
	}
	return vehicle.StatusFromString(raw)
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	status, err := vehicleStatusFilter(ctx)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	query := vehicles.NewGetAllVehiclesQuery(ctx.QueryParam("search"), status, includeDeletedParam(ctx))

	result, err := s.handlers.GetAllVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetVehicleByID handles GET /api/v1/vehicles/:id.
func (s *Server) GetVehicleByID(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid vehicle id")
	}

	query, err := vehicles.NewGetVehicleQuery(id)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.handlers.GetVehicle.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req createVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	status, err := vehicle.StatusFromString(req.Status)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := vehicles.NewCreateVehicleCommand(
		req.RegistrationNumber, req.Model, req.Capacity, req.ManufactureYear, status, req.Notes)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.handlers.CreateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, result)
}

// UpdateVehicle handles PUT /api/v1/vehicles/:id.
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid vehicle id")
	}

	var req updateVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := vehicles.NewUpdateVehicleCommand(
		id, req.Model, req.Capacity, req.ManufactureYear, req.Notes)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.handlers.UpdateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// ChangeVehicleStatus handles PATCH /api/v1/vehicles/:id/status.
func (s *Server) ChangeVehicleStatus(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid vehicle id")
	}

	var req changeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	status, err := vehicle.StatusFromString(req.Status)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := vehicles.NewChangeVehicleStatusCommand(id, status)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.handlers.ChangeVehicleStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:id.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid vehicle id")
	}

	cmd, err := vehicles.NewDeleteVehicleCommand(id)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
