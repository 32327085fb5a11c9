package stations_test

import (
	"testing"

	"transport/internal/core/application/usecases/stations"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteStationCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	stored := newStoredStation(t)
	cmd, err := stations.NewDeleteStationCommand(stored.ID())
	require.NoError(t, err)

	mockRepo := new(MockStationRepository)
	mockUoW := new(MockStationUoW)
	mockFactory := new(MockStationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("StationRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, stored.ID(), true).Return(stored, nil).Once(),
		mockRepo.On("Update", ctx, stored).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := stations.NewDeleteStationCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, stored.IsDeleted())
	mockRepo.AssertExpectations(t)
}

func TestDeleteStationCommandHandler_Handle_AlreadyDeleted(t *testing.T) {
	// Arrange
	ctx := t.Context()
	stored := newStoredStation(t)
	stored.Delete()
	firstDeletedAt := *stored.DeletedAt()
	cmd, err := stations.NewDeleteStationCommand(stored.ID())
	require.NoError(t, err)

	mockRepo := new(MockStationRepository)
	mockUoW := new(MockStationUoW)
	mockFactory := new(MockStationUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("StationRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, stored.ID(), true).Return(stored, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := stations.NewDeleteStationCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectIsDeleted)
	assert.Equal(t, firstDeletedAt, *stored.DeletedAt())
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
