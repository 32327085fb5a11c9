package drivers

import (
	"context"

	"transport/internal/core/ports"
)

// GetAllDriversQueryHandler retrieves drivers matching the query filter,
// sorted by full name ascending.
type GetAllDriversQueryHandler struct {
	uowFactory DriverUoWFactory
}

// NewGetAllDriversQueryHandler creates a handler for driver list retrieval.
func NewGetAllDriversQueryHandler(uowFactory DriverUoWFactory) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle executes the query and returns the driver projections.
func (h *GetAllDriversQueryHandler) Handle(
	ctx context.Context, query GetAllDriversQuery,
) ([]DriverResponse, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverEntities, err := uow.DriverRepository().GetAll(ctx, ports.DriverFilter{
		Search:         query.Search(),
		Status:         query.Status(),
		IncludeDeleted: query.IncludeDeleted(),
	})
	if err != nil {
		return nil, err
	}

	return NewDriverResponses(driverEntities), nil
}
