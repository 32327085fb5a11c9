// Package http exposes the transport administration API over Echo.
// Handlers translate requests into use case commands and queries and map
// domain errors to HTTP status codes.
package http

import (
	"transport/internal/core/application/usecases/drivers"
	"transport/internal/core/application/usecases/stations"
	"transport/internal/core/application/usecases/vehicles"
	"transport/internal/identity"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers served by the API.
type Handlers struct {
	CreateStation  stations.CreateStationCommandHandler
	UpdateStation  stations.UpdateStationCommandHandler
	DeleteStation  stations.DeleteStationCommandHandler
	GetStation     stations.GetStationQueryHandler
	GetAllStations stations.GetAllStationsQueryHandler

	CreateDriver       drivers.CreateDriverCommandHandler
	UpdateDriver       drivers.UpdateDriverCommandHandler
	DeleteDriver       drivers.DeleteDriverCommandHandler
	ChangeDriverStatus drivers.ChangeDriverStatusCommandHandler
	GetDriver          drivers.GetDriverQueryHandler
	GetAllDrivers      drivers.GetAllDriversQueryHandler

	CreateVehicle       vehicles.CreateVehicleCommandHandler
	UpdateVehicle       vehicles.UpdateVehicleCommandHandler
	DeleteVehicle       vehicles.DeleteVehicleCommandHandler
	ChangeVehicleStatus vehicles.ChangeVehicleStatusCommandHandler
	GetVehicle          vehicles.GetVehicleQueryHandler
	GetAllVehicles      vehicles.GetAllVehiclesQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	users    identity.UserStore
	tokens   *identity.TokenService
}

// NewServer creates an HTTP server over the given use case handlers and
// identity services.
func NewServer(handlers Handlers, users identity.UserStore, tokens *identity.TokenService) *Server {
	return &Server{
		handlers: handlers,
		users:    users,
		tokens:   tokens,
	}
}

// RegisterRoutes mounts all API routes on the Echo instance. Auth routes
// are public except /me; aggregate routes require a valid token, and
// deletions additionally require the Admin role.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	auth := NewAuthMiddleware(s.tokens)

	authGroup := e.Group("/api/v1/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)
	authGroup.GET("/me", s.Me, auth.Authenticate)

	api := e.Group("/api/v1", auth.Authenticate)

	api.GET("/stations", s.GetStations)
	api.GET("/stations/:id", s.GetStationByID)
	api.POST("/stations", s.CreateStation, RequireRoles(identity.RoleAdmin, identity.RolePlanner))
	api.PUT("/stations/:id", s.UpdateStation, RequireRoles(identity.RoleAdmin, identity.RolePlanner))
	api.DELETE("/stations/:id", s.DeleteStation, RequireRoles(identity.RoleAdmin))

	api.GET("/drivers", s.GetDrivers)
	api.GET("/drivers/:id", s.GetDriverByID)
	api.POST("/drivers", s.CreateDriver, RequireRoles(identity.RoleAdmin, identity.RolePlanner))
	api.PUT("/drivers/:id", s.UpdateDriver, RequireRoles(identity.RoleAdmin, identity.RolePlanner))
	api.PATCH("/drivers/:id/status", s.ChangeDriverStatus, RequireRoles(identity.RoleAdmin, identity.RolePlanner))
	api.DELETE("/drivers/:id", s.DeleteDriver, RequireRoles(identity.RoleAdmin))

	api.GET("/vehicles", s.GetVehicles)
	api.GET("/vehicles/:id", s.GetVehicleByID)
	api.POST("/vehicles", s.CreateVehicle, RequireRoles(identity.RoleAdmin, identity.RolePlanner))
	api.PUT("/vehicles/:id", s.UpdateVehicle, RequireRoles(identity.RoleAdmin, identity.RolePlanner))
	api.PATCH("/vehicles/:id/status", s.ChangeVehicleStatus, RequireRoles(identity.RoleAdmin, identity.RolePlanner))
	api.DELETE("/vehicles/:id", s.DeleteVehicle, RequireRoles(identity.RoleAdmin))
}
