package drivers_test

import (
	"testing"

	"transport/internal/core/application/usecases/drivers"
	"transport/internal/core/domain/model/driver"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewChangeDriverStatusCommand(t *testing.T) {
	t.Run("unknown status fails", func(t *testing.T) {
		existing := mustNewDriver()

		_, err := drivers.NewChangeDriverStatusCommand(existing.ID(), driver.StatusUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command is not constructed", func(t *testing.T) {
		var cmd drivers.ChangeDriverStatusCommand

		require.ErrorIs(t, cmd.Validate(), drivers.ErrChangeDriverStatusCommandIsNotConstructed)
	})
}

func TestChangeDriverStatusCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := mustNewDriver()
	cmd, err := drivers.NewChangeDriverStatusCommand(existing.ID(), driver.StatusOnLeave)
	require.NoError(t, err)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, existing.ID(), false).Return(existing, nil).Once(),
		mockRepo.On("Update", ctx, existing).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := drivers.NewChangeDriverStatusCommandHandler(mockFactory)

	// Act
	response, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "OnLeave", response.Status)
	assert.False(t, response.IsAvailable)
	require.NotNil(t, response.UpdatedAt)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestChangeDriverStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := mustNewDriver()
	cmd, err := drivers.NewChangeDriverStatusCommand(existing.ID(), driver.StatusActive)
	require.NoError(t, err)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, existing.ID(), false).Return(existing, nil).Once(),
		mockRepo.On("Update", ctx, existing).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := drivers.NewChangeDriverStatusCommandHandler(mockFactory)

	// Act
	response, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Active", response.Status)
	assert.Nil(t, response.UpdatedAt)
	assert.Nil(t, existing.UpdatedAt())
}

func TestChangeDriverStatusCommandHandler_Handle_DeletedDriverIsNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := mustNewDriver()
	cmd, err := drivers.NewChangeDriverStatusCommand(existing.ID(), driver.StatusSuspended)
	require.NoError(t, err)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("DriverRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, existing.ID(), false).
		Return(nil, errs.NewObjectNotFoundError("driver", existing.ID().String())).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := drivers.NewChangeDriverStatusCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
