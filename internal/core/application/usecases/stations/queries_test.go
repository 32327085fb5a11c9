package stations_test

import (
	"testing"

	"transport/internal/core/application/usecases/stations"
	"transport/internal/core/domain/model/station"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStationQueryHandler_Handle(t *testing.T) {
	t.Run("returns the station projection", func(t *testing.T) {
		ctx := t.Context()
		stored := newStoredStation(t)
		query, err := stations.NewGetStationQuery(stored.ID())
		require.NoError(t, err)

		mockRepo := new(MockStationRepository)
		mockUoW := new(MockStationUoW)
		mockFactory := new(MockStationUoWFactory)

		mockUoW.On("Begin", ctx).Return(nil).Once()
		mockUoW.On("StationRepository").Return(mockRepo).Once()
		mockRepo.On("Get", ctx, stored.ID(), false).Return(stored, nil).Once()
		mockUoW.On("Rollback", ctx).Return(nil).Once()
		mockFactory.On("Create").Return(mockUoW).Once()

		handler := stations.NewGetStationQueryHandler(mockFactory)

		response, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, stored.ID().String(), response.ID)
		assert.Equal(t, "Central", response.Name)
		assert.Nil(t, response.Description)
	})

	t.Run("propagates not found", func(t *testing.T) {
		ctx := t.Context()
		stored := newStoredStation(t)
		query, err := stations.NewGetStationQuery(stored.ID())
		require.NoError(t, err)

		mockRepo := new(MockStationRepository)
		mockUoW := new(MockStationUoW)
		mockFactory := new(MockStationUoWFactory)

		mockUoW.On("Begin", ctx).Return(nil).Once()
		mockUoW.On("StationRepository").Return(mockRepo).Once()
		mockRepo.On("Get", ctx, stored.ID(), false).
			Return(nil, errs.NewObjectNotFoundError("station", stored.ID().String())).Once()
		mockUoW.On("Rollback", ctx).Return(nil).Once()
		mockFactory.On("Create").Return(mockUoW).Once()

		handler := stations.NewGetStationQueryHandler(mockFactory)

		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGetAllStationsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	first := newStoredStation(t)
	second, err := station.NewStation("North", 45.3, 19.9, "Addr Y", "")
	require.NoError(t, err)

	query := stations.NewGetAllStationsQuery("addr", true)

	mockRepo := new(MockStationRepository)
	mockUoW := new(MockStationUoW)
	mockFactory := new(MockStationUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("StationRepository").Return(mockRepo).Once()
	mockRepo.On("GetAll", ctx, ports.StationFilter{Search: "addr", IncludeDeleted: true}).
		Return([]*station.Station{first, second}, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := stations.NewGetAllStationsQueryHandler(mockFactory)

	responses, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "Central", responses[0].Name)
	assert.Equal(t, "North", responses[1].Name)
}
