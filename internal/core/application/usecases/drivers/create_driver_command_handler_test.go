package drivers_test

import (
	"testing"
	"time"

	"transport/internal/core/application/usecases/drivers"
	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateDriverCommand(t *testing.T) drivers.CreateDriverCommand {
	t.Helper()

	cmd, err := drivers.NewCreateDriverCommand(
		"Marko Petrov",
		"dl-99001",
		"+381641234567",
		time.Now().AddDate(-2, 0, 0),
		time.Now().AddDate(3, 0, 0),
		driver.StatusActive,
		"",
		"night shift",
	)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateDriverCommand(t *testing.T) {
	t.Run("valid command upper-cases license number", func(t *testing.T) {
		cmd := validCreateDriverCommand(t)

		assert.Equal(t, "DL-99001", cmd.LicenseNumber())
		assert.Equal(t, "Marko Petrov", cmd.FullName())
		require.NoError(t, cmd.Validate())
	})

	t.Run("blank full name fails", func(t *testing.T) {
		_, err := drivers.NewCreateDriverCommand(
			" ", "DL-99001", "+381641234567",
			time.Now().AddDate(-2, 0, 0), time.Now().AddDate(3, 0, 0),
			driver.StatusActive, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown status fails", func(t *testing.T) {
		_, err := drivers.NewCreateDriverCommand(
			"Marko Petrov", "DL-99001", "+381641234567",
			time.Now().AddDate(-2, 0, 0), time.Now().AddDate(3, 0, 0),
			driver.StatusUnknown, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command is not constructed", func(t *testing.T) {
		var cmd drivers.CreateDriverCommand

		require.ErrorIs(t, cmd.Validate(), drivers.ErrCreateDriverCommandIsNotConstructed)
	})
}

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := validCreateDriverCommand(t)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("ExistsWithLicenseNumber", ctx, "DL-99001", kernel.UUID{}).Return(false, nil).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := drivers.NewCreateDriverCommandHandler(mockFactory)

	// Act
	response, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Marko Petrov", response.FullName)
	assert.Equal(t, "DL-99001", response.LicenseNumber)
	assert.Equal(t, "Active", response.Status)
	assert.True(t, response.HasValidLicense)
	assert.True(t, response.IsAvailable)
	assert.Nil(t, response.UserID)
	assert.Nil(t, response.UpdatedAt)
	assert.False(t, response.IsDeleted)
	assert.NotEmpty(t, response.ID)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_DuplicateLicense(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := validCreateDriverCommand(t)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("DriverRepository").Return(mockRepo).Once()
	mockRepo.On("ExistsWithLicenseNumber", ctx, "DL-99001", kernel.UUID{}).Return(true, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := drivers.NewCreateDriverCommandHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	assert.Contains(t, err.Error(), "DL-99001")
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestCreateDriverCommandHandler_Handle_InvalidLicenseDates(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := drivers.NewCreateDriverCommand(
		"Marko Petrov", "DL-99001", "+381641234567",
		time.Now().AddDate(0, 0, 1), time.Now().AddDate(3, 0, 0),
		driver.StatusActive, "", "")
	require.NoError(t, err)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("DriverRepository").Return(mockRepo).Once()
	mockRepo.On("ExistsWithLicenseNumber", ctx, "DL-99001", kernel.UUID{}).Return(false, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := drivers.NewCreateDriverCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrInvalidDateOrder)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}
