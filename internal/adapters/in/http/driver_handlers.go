package http

import (
	"net/http"
	"time"

	"transport/internal/core/application/usecases/drivers"
	"transport/internal/core/domain/model/driver"

	"github.com/labstack/echo/v4"
)

type createDriverRequest struct {
	FullName          string    `json:"fullName"`
	LicenseNumber     string    `json:"licenseNumber"`
	PhoneNumber       string    `json:"phoneNumber"`
	LicenseIssuedDate time.Time `json:"licenseIssuedDate"`
	LicenseExpiryDate time.Time `json:"licenseExpiryDate"`
	Status            string    `json:"status"`
	UserID            string    `json:"userId"`
	Notes             string    `json:"notes"`
}

type updateDriverRequest struct {
	FullName          string    `json:"fullName"`
	PhoneNumber       string    `json:"phoneNumber"`
	LicenseIssuedDate time.Time `json:"licenseIssuedDate"`
	LicenseExpiryDate time.Time `json:"licenseExpiryDate"`
	Notes             string    `json:"notes"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// driverStatusFilter parses the optional status query parameter. An empty
// value means no filtering.
func driverStatusFilter(ctx echo.Context) (driver.Status, error) {
	raw := ctx.QueryParam("status")
	if raw == "" {
		return driver.StatusUnknown, nil
	}
	return driver.StatusFromString(raw)
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	status, err := driverStatusFilter(ctx)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	query := drivers.NewGetAllDriversQuery(ctx.QueryParam("search"), status, includeDeletedParam(ctx))

	result, err := s.handlers.GetAllDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetDriverByID handles GET /api/v1/drivers/:id.
func (s *Server) GetDriverByID(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid driver id")
	}

	query, err := drivers.NewGetDriverQuery(id)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.handlers.GetDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req createDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	status, err := driver.StatusFromString(req.Status)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := drivers.NewCreateDriverCommand(
		req.FullName, req.LicenseNumber, req.PhoneNumber,
		req.LicenseIssuedDate, req.LicenseExpiryDate, status, req.UserID, req.Notes)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, result)
}

// UpdateDriver handles PUT /api/v1/drivers/:id.
func (s *Server) UpdateDriver(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid driver id")
	}

	var req updateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := drivers.NewUpdateDriverCommand(
		id, req.FullName, req.PhoneNumber,
		req.LicenseIssuedDate, req.LicenseExpiryDate, req.Notes)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.handlers.UpdateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// ChangeDriverStatus handles PATCH /api/v1/drivers/:id/status.
func (s *Server) ChangeDriverStatus(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid driver id")
	}

	var req changeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	status, err := driver.StatusFromString(req.Status)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := drivers.NewChangeDriverStatusCommand(id, status)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.handlers.ChangeDriverStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// DeleteDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid driver id")
	}

	cmd, err := drivers.NewDeleteDriverCommand(id)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.DeleteDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
