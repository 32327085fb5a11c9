package vehicle_test

import (
	"strings"
	"testing"
	"time"

	"transport/internal/core/domain/model/vehicle"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	veh, err := vehicle.NewVehicle("ns-123-ab", "Mercedes-Benz Citaro", 90, 2020, vehicle.StatusActive, "")
	require.NoError(t, err)
	return veh
}

func TestNewVehicle(t *testing.T) {
	t.Run("valid vehicle", func(t *testing.T) {
		// Given / When
		veh, err := vehicle.NewVehicle("ns-123-ab", "Mercedes-Benz Citaro", 90, 2020, vehicle.StatusActive, "low floor")

		// Then
		require.NoError(t, err)
		assert.Equal(t, "NS-123-AB", veh.RegistrationNumber())
		assert.Equal(t, "Mercedes-Benz Citaro", veh.Model())
		assert.Equal(t, 90, veh.Capacity())
		assert.Equal(t, 2020, veh.ManufactureYear())
		assert.Equal(t, vehicle.StatusActive, veh.Status())
		assert.Equal(t, "low floor", veh.Notes())
		assert.False(t, veh.IsDeleted())
		assert.Nil(t, veh.UpdatedAt())
		require.NoError(t, veh.Validate())
	})

	t.Run("blank registration number fails", func(t *testing.T) {
		_, err := vehicle.NewVehicle("  ", "Citaro", 90, 2020, vehicle.StatusActive, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("registration number too long fails", func(t *testing.T) {
		_, err := vehicle.NewVehicle(strings.Repeat("a", 21), "Citaro", 90, 2020, vehicle.StatusActive, "")

		require.ErrorIs(t, err, errs.ErrValueIsTooLong)
	})

	t.Run("model too long fails", func(t *testing.T) {
		_, err := vehicle.NewVehicle("NS-123-AB", strings.Repeat("a", 51), 90, 2020, vehicle.StatusActive, "")

		require.ErrorIs(t, err, errs.ErrValueIsTooLong)
	})

	t.Run("capacity bounds", func(t *testing.T) {
		for _, capacity := range []int{0, -1, 201} {
			_, err := vehicle.NewVehicle("NS-123-AB", "Citaro", capacity, 2020, vehicle.StatusActive, "")

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "capacity %d", capacity)
		}

		for _, capacity := range []int{1, 200} {
			_, err := vehicle.NewVehicle("NS-123-AB", "Citaro", capacity, 2020, vehicle.StatusActive, "")

			require.NoError(t, err, "capacity %d", capacity)
		}
	})

	t.Run("manufacture year bounds", func(t *testing.T) {
		currentYear := time.Now().UTC().Year()

		_, err := vehicle.NewVehicle("NS-123-AB", "Citaro", 90, 1899, vehicle.StatusActive, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = vehicle.NewVehicle("NS-123-AB", "Citaro", 90, currentYear+2, vehicle.StatusActive, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = vehicle.NewVehicle("NS-123-AB", "Citaro", 90, currentYear+1, vehicle.StatusActive, "")
		require.NoError(t, err)

		_, err = vehicle.NewVehicle("NS-123-AB", "Citaro", 90, 1900, vehicle.StatusActive, "")
		require.NoError(t, err)
	})

	t.Run("notes too long fail", func(t *testing.T) {
		_, err := vehicle.NewVehicle("NS-123-AB", "Citaro", 90, 2020, vehicle.StatusActive, strings.Repeat("a", 501))

		require.ErrorIs(t, err, errs.ErrValueIsTooLong)
	})

	t.Run("unknown status fails", func(t *testing.T) {
		_, err := vehicle.NewVehicle("NS-123-AB", "Citaro", 90, 2020, vehicle.StatusUnknown, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestVehicleUpdate(t *testing.T) {
	t.Run("updates fields and stamps updatedAt", func(t *testing.T) {
		veh := newValidVehicle(t)

		err := veh.Update("MAN Lion's City", 100, 2021, "refurbished")

		require.NoError(t, err)
		assert.Equal(t, "MAN Lion's City", veh.Model())
		assert.Equal(t, 100, veh.Capacity())
		assert.Equal(t, 2021, veh.ManufactureYear())
		assert.Equal(t, "refurbished", veh.Notes())
		require.NotNil(t, veh.UpdatedAt())
	})

	t.Run("registration number is not changed by update", func(t *testing.T) {
		veh := newValidVehicle(t)

		err := veh.Update("MAN Lion's City", 100, 2021, "")

		require.NoError(t, err)
		assert.Equal(t, "NS-123-AB", veh.RegistrationNumber())
	})

	t.Run("failed update leaves fields unchanged", func(t *testing.T) {
		veh := newValidVehicle(t)

		err := veh.Update("MAN Lion's City", 300, 2021, "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, "Mercedes-Benz Citaro", veh.Model())
		assert.Equal(t, 90, veh.Capacity())
		assert.Nil(t, veh.UpdatedAt())
	})
}

func TestVehicleChangeStatus(t *testing.T) {
	t.Run("changing to a different status stamps updatedAt", func(t *testing.T) {
		veh := newValidVehicle(t)

		err := veh.ChangeStatus(vehicle.StatusMaintenance)

		require.NoError(t, err)
		assert.Equal(t, vehicle.StatusMaintenance, veh.Status())
		require.NotNil(t, veh.UpdatedAt())
	})

	t.Run("changing to the same status is a no-op", func(t *testing.T) {
		veh := newValidVehicle(t)

		err := veh.ChangeStatus(vehicle.StatusActive)

		require.NoError(t, err)
		assert.Nil(t, veh.UpdatedAt())
	})

	t.Run("invalid status fails", func(t *testing.T) {
		veh := newValidVehicle(t)

		err := veh.ChangeStatus(vehicle.Status(42))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestVehicleIsAvailable(t *testing.T) {
	t.Run("active non-deleted vehicle is available", func(t *testing.T) {
		veh := newValidVehicle(t)

		assert.True(t, veh.IsAvailable())
	})

	t.Run("vehicle in maintenance is not available", func(t *testing.T) {
		veh := newValidVehicle(t)
		require.NoError(t, veh.ChangeStatus(vehicle.StatusMaintenance))

		assert.False(t, veh.IsAvailable())
	})

	t.Run("deleted vehicle is not available", func(t *testing.T) {
		veh := newValidVehicle(t)
		veh.Delete()

		assert.False(t, veh.IsAvailable())
	})
}

func TestVehicleStatusParsing(t *testing.T) {
	t.Run("valid names parse", func(t *testing.T) {
		for _, name := range []string{"Active", "Maintenance", "OutOfService"} {
			status, err := vehicle.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("unknown name fails", func(t *testing.T) {
		_, err := vehicle.StatusFromString("Parked")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestVehicleString(t *testing.T) {
	veh := newValidVehicle(t)

	assert.Equal(t, "Mercedes-Benz Citaro (NS-123-AB)", veh.String())
}
