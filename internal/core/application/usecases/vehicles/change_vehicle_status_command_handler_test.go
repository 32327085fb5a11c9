package vehicles_test

import (
	"testing"

	"transport/internal/core/application/usecases/vehicles"
	"transport/internal/core/domain/model/vehicle"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewChangeVehicleStatusCommand(t *testing.T) {
	t.Run("unknown status fails", func(t *testing.T) {
		existing := mustNewVehicle()

		_, err := vehicles.NewChangeVehicleStatusCommand(existing.ID(), vehicle.StatusUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command is not constructed", func(t *testing.T) {
		var cmd vehicles.ChangeVehicleStatusCommand

		require.ErrorIs(t, cmd.Validate(), vehicles.ErrChangeVehicleStatusCommandIsNotConstructed)
	})
}

func TestChangeVehicleStatusCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := mustNewVehicle()
	cmd, err := vehicles.NewChangeVehicleStatusCommand(existing.ID(), vehicle.StatusMaintenance)
	require.NoError(t, err)

	mockRepo := new(MockVehicleRepository)
	mockUoW := new(MockVehicleUoW)
	mockFactory := new(MockVehicleUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, existing.ID(), false).Return(existing, nil).Once(),
		mockRepo.On("Update", ctx, existing).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := vehicles.NewChangeVehicleStatusCommandHandler(mockFactory)

	// Act
	response, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Maintenance", response.Status)
	assert.False(t, response.IsAvailable)
	require.NotNil(t, response.UpdatedAt)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestChangeVehicleStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := mustNewVehicle()
	cmd, err := vehicles.NewChangeVehicleStatusCommand(existing.ID(), vehicle.StatusActive)
	require.NoError(t, err)

	mockRepo := new(MockVehicleRepository)
	mockUoW := new(MockVehicleUoW)
	mockFactory := new(MockVehicleUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, existing.ID(), false).Return(existing, nil).Once(),
		mockRepo.On("Update", ctx, existing).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := vehicles.NewChangeVehicleStatusCommandHandler(mockFactory)

	// Act
	response, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Active", response.Status)
	assert.Nil(t, response.UpdatedAt)
	assert.Nil(t, existing.UpdatedAt())
}

func TestChangeVehicleStatusCommandHandler_Handle_DeletedVehicleIsNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := mustNewVehicle()
	cmd, err := vehicles.NewChangeVehicleStatusCommand(existing.ID(), vehicle.StatusOutOfService)
	require.NoError(t, err)

	mockRepo := new(MockVehicleRepository)
	mockUoW := new(MockVehicleUoW)
	mockFactory := new(MockVehicleUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("VehicleRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, existing.ID(), false).
		Return(nil, errs.NewObjectNotFoundError("vehicle", existing.ID().String())).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := vehicles.NewChangeVehicleStatusCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
