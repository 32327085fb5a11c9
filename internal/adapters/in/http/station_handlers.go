package http

import (
	"net/http"

	"transport/internal/core/application/usecases/stations"

	"github.com/labstack/echo/v4"
)

type stationRequest struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
}

// GetStations handles GET /api/v1/stations.
func (s *Server) GetStations(ctx echo.Context) error {
	query := stations.NewGetAllStationsQuery(ctx.QueryParam("search"), includeDeletedParam(ctx))

	result, err := s.handlers.GetAllStations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetStationByID handles GET /api/v1/stations/:id.
func (s *Server) GetStationByID(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid station id")
	}

	query, err := stations.NewGetStationQuery(id)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.handlers.GetStation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// CreateStation handles POST /api/v1/stations.
func (s *Server) CreateStation(ctx echo.Context) error {
	var req stationRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := stations.NewCreateStationCommand(
		req.Name, req.Latitude, req.Longitude, req.Address, req.Description)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.handlers.CreateStation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, result)
}

// UpdateStation handles PUT /api/v1/stations/:id.
func (s *Server) UpdateStation(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid station id")
	}

	var req stationRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := stations.NewUpdateStationCommand(
		id, req.Name, req.Latitude, req.Longitude, req.Address, req.Description)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.handlers.UpdateStation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// DeleteStation handles DELETE /api/v1/stations/:id.
func (s *Server) DeleteStation(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid station id")
	}

	cmd, err := stations.NewDeleteStationCommand(id)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.handlers.DeleteStation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
