package postgres

import (
	"context"
	"fmt"
	"time"

	"transport/internal/adapters/out/postgres/driverrepo"
	"transport/internal/adapters/out/postgres/stationrepo"
	"transport/internal/adapters/out/postgres/vehiclerepo"
	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/station"
	"transport/internal/core/domain/model/vehicle"
	"transport/internal/core/ports"
	"transport/internal/identity"
	"transport/internal/pkg/errs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to PostgreSQL. TranslateError is enabled so duplicate-key
// violations surface as gorm.ErrDuplicatedKey in the repositories.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errs.NewPersistenceError("open database", err)
	}
	return db, nil
}

// AutoMigrate creates or updates the schema for all aggregate tables and
// the user accounts table.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&stationrepo.StationDTO{},
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&identity.User{},
	)
	if err != nil {
		return errs.NewPersistenceError("auto-migrate schema", err)
	}
	return nil
}

// Seed populates an empty database with a small demo fleet. Seed entities
// are rehydrated through the Restore constructors with backdated creation
// timestamps, so they look like data that has been around for a while.
// Seeding is skipped when any station already exists.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&stationrepo.StationDTO{}).Count(&count).Error; err != nil {
		return errs.NewPersistenceError("count stations", err)
	}
	if count > 0 {
		return nil
	}

	uowFactory := NewGormUnitOfWorkFactory(db)
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := seedStations(ctx, uow); err != nil {
		return err
	}
	if err := seedDrivers(ctx, uow); err != nil {
		return err
	}
	if err := seedVehicles(ctx, uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func seedStations(ctx context.Context, uow ports.UnitOfWork) error {
	seedTime := time.Now().UTC().AddDate(0, -6, 0)

	stations := []struct {
		name        string
		latitude    float64
		longitude   float64
		address     string
		description string
	}{
		{"Central Station", 45.2551, 19.8447, "Bulevar Jase Tomica 6", "Main interchange hub"},
		{"Liman Terminal", 45.2396, 19.8227, "Balzakova 33", ""},
		{"Detelinara Depot", 45.2672, 19.8116, "Rumenacka 110", "Night storage and dispatch"},
	}

	repo := uow.StationRepository()
	for _, s := range stations {
		coordinates, err := kernel.NewGPSCoordinate(s.latitude, s.longitude)
		if err != nil {
			return err
		}

		entity, err := station.RestoreStation(
			kernel.NewUUID(), s.name, coordinates, s.address, s.description,
			seedTime, nil, false, nil)
		if err != nil {
			return err
		}

		if err = repo.Add(ctx, entity); err != nil {
			return err
		}
	}

	return nil
}

func seedDrivers(ctx context.Context, uow ports.UnitOfWork) error {
	seedTime := time.Now().UTC().AddDate(0, -6, 0)
	issued := time.Now().UTC().AddDate(-4, 0, 0)
	expiry := time.Now().UTC().AddDate(2, 0, 0)

	drivers := []struct {
		fullName      string
		licenseNumber string
		phoneNumber   string
		status        driver.Status
	}{
		{"Petar Jovanovic", "RS-100234", "+381641112233", driver.StatusActive},
		{"Mira Stankovic", "RS-100872", "+381652224455", driver.StatusActive},
		{"Goran Ilic", "RS-101990", "+381601039876", driver.StatusOnLeave},
	}

	repo := uow.DriverRepository()
	for _, d := range drivers {
		entity, err := driver.RestoreDriver(
			kernel.NewUUID(), d.fullName, d.licenseNumber, d.phoneNumber,
			issued, expiry, d.status, "", "",
			seedTime, nil, false, nil)
		if err != nil {
			return err
		}

		if err = repo.Add(ctx, entity); err != nil {
			return err
		}
	}

	return nil
}

func seedVehicles(ctx context.Context, uow ports.UnitOfWork) error {
	seedTime := time.Now().UTC().AddDate(0, -6, 0)

	vehicles := []struct {
		registration string
		model        string
		capacity     int
		year         int
		status       vehicle.Status
	}{
		{"NS-050-XA", "Solaris Urbino 12", 85, 2018, vehicle.StatusActive},
		{"NS-051-XB", "MAN Lion's City 18", 130, 2020, vehicle.StatusActive},
		{"NS-049-KR", "Ikarbus IK-112", 95, 2012, vehicle.StatusMaintenance},
	}

	repo := uow.VehicleRepository()
	for _, v := range vehicles {
		entity, err := vehicle.RestoreVehicle(
			kernel.NewUUID(), v.registration, v.model, v.capacity, v.year,
			v.status, "", seedTime, nil, false, nil)
		if err != nil {
			return err
		}

		if err = repo.Add(ctx, entity); err != nil {
			return err
		}
	}

	return nil
}

// Ping verifies database connectivity with a short timeout.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errs.NewPersistenceError("acquire connection", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = sqlDB.PingContext(pingCtx); err != nil {
		return errs.NewPersistenceError("ping database", err)
	}
	return nil
}

// DSN builds a PostgreSQL connection string from discrete settings.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}
