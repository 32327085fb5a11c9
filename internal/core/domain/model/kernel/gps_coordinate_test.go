package kernel_test

import (
	"testing"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGPSCoordinate(t *testing.T) {
	t.Run("valid coordinate", func(t *testing.T) {
		// Given / When
		pos, err := kernel.NewGPSCoordinate(48.8566, 2.3522)

		// Then
		require.NoError(t, err)
		assert.InDelta(t, 48.8566, pos.Latitude(), 1e-9)
		assert.InDelta(t, 2.3522, pos.Longitude(), 1e-9)
	})

	t.Run("boundary values are valid", func(t *testing.T) {
		tests := []struct {
			name string
			lat  float64
			lon  float64
		}{
			{"north pole", 90, 0},
			{"south pole", -90, 0},
			{"antimeridian east", 0, 180},
			{"antimeridian west", 0, -180},
			{"all bounds", -90, -180},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				pos, err := kernel.NewGPSCoordinate(tt.lat, tt.lon)

				require.NoError(t, err)
				require.NoError(t, pos.Validate())
			})
		}
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGPSCoordinate(91, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewGPSCoordinate(-90.0001, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGPSCoordinate(0, 181)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewGPSCoordinate(0, -180.0001)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("latitude is checked before longitude", func(t *testing.T) {
		_, err := kernel.NewGPSCoordinate(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
	})
}

func TestGPSCoordinateValidate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var pos kernel.GPSCoordinate

		err := pos.Validate()

		require.ErrorIs(t, err, kernel.ErrGPSCoordinateIsNotConstructed)
	})

	t.Run("constructed value is valid", func(t *testing.T) {
		pos, err := kernel.NewGPSCoordinate(0, 0)
		require.NoError(t, err)

		require.NoError(t, pos.Validate())
	})
}

func TestGPSCoordinateString(t *testing.T) {
	pos, err := kernel.NewGPSCoordinate(48.8566, 2.3522)
	require.NoError(t, err)

	assert.Equal(t, "(48.856600, 2.352200)", pos.String())
}

func TestGPSCoordinateIsEqual(t *testing.T) {
	t.Run("identical coordinates are equal", func(t *testing.T) {
		first, err := kernel.NewGPSCoordinate(48.8566, 2.3522)
		require.NoError(t, err)
		second, err := kernel.NewGPSCoordinate(48.8566, 2.3522)
		require.NoError(t, err)

		equal, err := first.IsEqual(second)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("coordinates within tolerance are equal", func(t *testing.T) {
		first, err := kernel.NewGPSCoordinate(48.8566, 2.3522)
		require.NoError(t, err)
		second, err := kernel.NewGPSCoordinate(48.8566+5e-7, 2.3522-5e-7)
		require.NoError(t, err)

		equal, err := first.IsEqual(second)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("coordinates beyond tolerance differ", func(t *testing.T) {
		first, err := kernel.NewGPSCoordinate(48.8566, 2.3522)
		require.NoError(t, err)
		second, err := kernel.NewGPSCoordinate(48.8566+2e-6, 2.3522)
		require.NoError(t, err)

		equal, err := first.IsEqual(second)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed coordinate fails", func(t *testing.T) {
		pos, err := kernel.NewGPSCoordinate(0, 0)
		require.NoError(t, err)
		var zero kernel.GPSCoordinate

		_, err = pos.IsEqual(zero)

		require.ErrorIs(t, err, kernel.ErrGPSCoordinateIsNotConstructed)
	})
}

func TestGPSCoordinateDistanceTo(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		pos, err := kernel.NewGPSCoordinate(48.8566, 2.3522)
		require.NoError(t, err)

		distance, err := pos.DistanceTo(pos)

		require.NoError(t, err)
		assert.InDelta(t, 0, distance, 1e-9)
	})

	t.Run("paris to london", func(t *testing.T) {
		paris, err := kernel.NewGPSCoordinate(48.8566, 2.3522)
		require.NoError(t, err)
		london, err := kernel.NewGPSCoordinate(51.5074, -0.1278)
		require.NoError(t, err)

		distance, err := paris.DistanceTo(london)

		require.NoError(t, err)
		// Great-circle distance is roughly 343-344 km.
		assert.InDelta(t, 343.5, distance, 1.5)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		first, err := kernel.NewGPSCoordinate(40.7128, -74.0060)
		require.NoError(t, err)
		second, err := kernel.NewGPSCoordinate(34.0522, -118.2437)
		require.NoError(t, err)

		forward, err := first.DistanceTo(second)
		require.NoError(t, err)
		backward, err := second.DistanceTo(first)
		require.NoError(t, err)

		assert.InDelta(t, forward, backward, 1e-9)
	})

	t.Run("unconstructed coordinate fails", func(t *testing.T) {
		var zero kernel.GPSCoordinate
		pos, err := kernel.NewGPSCoordinate(0, 0)
		require.NoError(t, err)

		_, err = zero.DistanceTo(pos)

		require.ErrorIs(t, err, kernel.ErrGPSCoordinateIsNotConstructed)
	})
}
