package cmd

import (
	transporthttp "transport/internal/adapters/in/http"
	"transport/internal/adapters/out/postgres"
	"transport/internal/core/application/usecases/drivers"
	"transport/internal/core/application/usecases/stations"
	"transport/internal/core/application/usecases/vehicles"
	"transport/internal/identity"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) stationUoWFactory() stations.StationUoWFactory {
	return FuncStationUoWFactory(func() stations.StationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() drivers.DriverUoWFactory {
	return FuncDriverUoWFactory(func() drivers.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() vehicles.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() vehicles.VehicleUoW {
		return c.uowFactory.Create()
	})
}

// CreateAPIHandlers builds the full handler set served by the HTTP adapter.
func (c *CompositionRoot) CreateAPIHandlers() transporthttp.Handlers {
	stationFactory := c.stationUoWFactory()
	driverFactory := c.driverUoWFactory()
	vehicleFactory := c.vehicleUoWFactory()

	return transporthttp.Handlers{
		CreateStation:  stations.NewCreateStationCommandHandler(stationFactory),
		UpdateStation:  stations.NewUpdateStationCommandHandler(stationFactory),
		DeleteStation:  stations.NewDeleteStationCommandHandler(stationFactory),
		GetStation:     stations.NewGetStationQueryHandler(stationFactory),
		GetAllStations: stations.NewGetAllStationsQueryHandler(stationFactory),

		CreateDriver:       drivers.NewCreateDriverCommandHandler(driverFactory),
		UpdateDriver:       drivers.NewUpdateDriverCommandHandler(driverFactory),
		DeleteDriver:       drivers.NewDeleteDriverCommandHandler(driverFactory),
		ChangeDriverStatus: drivers.NewChangeDriverStatusCommandHandler(driverFactory),
		GetDriver:          drivers.NewGetDriverQueryHandler(driverFactory),
		GetAllDrivers:      drivers.NewGetAllDriversQueryHandler(driverFactory),

		CreateVehicle:       vehicles.NewCreateVehicleCommandHandler(vehicleFactory),
		UpdateVehicle:       vehicles.NewUpdateVehicleCommandHandler(vehicleFactory),
		DeleteVehicle:       vehicles.NewDeleteVehicleCommandHandler(vehicleFactory),
		ChangeVehicleStatus: vehicles.NewChangeVehicleStatusCommandHandler(vehicleFactory),
		GetVehicle:          vehicles.NewGetVehicleQueryHandler(vehicleFactory),
		GetAllVehicles:      vehicles.NewGetAllVehiclesQueryHandler(vehicleFactory),
	}
}

// CreateGetAllDriversQueryHandler builds the query handler used by the
// license expiry job.
func (c *CompositionRoot) CreateGetAllDriversQueryHandler() drivers.GetAllDriversQueryHandler {
	return drivers.NewGetAllDriversQueryHandler(c.driverUoWFactory())
}

// CreateUserStore builds the GORM-backed user store.
func (c *CompositionRoot) CreateUserStore() identity.UserStore {
	return identity.NewGormUserStore(c.gormDB)
}

type FuncStationUoWFactory func() stations.StationUoW

func (f FuncStationUoWFactory) Create() stations.StationUoW {
	return f()
}

type FuncDriverUoWFactory func() drivers.DriverUoW

func (f FuncDriverUoWFactory) Create() drivers.DriverUoW {
	return f()
}

type FuncVehicleUoWFactory func() vehicles.VehicleUoW

func (f FuncVehicleUoWFactory) Create() vehicles.VehicleUoW {
	return f()
}
