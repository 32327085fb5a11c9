package drivers

import (
	"context"
)

// GetDriverQueryHandler retrieves a single driver. Soft-deleted drivers are
// treated as absent.
type GetDriverQueryHandler struct {
	uowFactory DriverUoWFactory
}

// NewGetDriverQueryHandler creates a handler for single-driver retrieval.
func NewGetDriverQueryHandler(uowFactory DriverUoWFactory) GetDriverQueryHandler {
	return GetDriverQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle executes the query and returns the driver projection.
func (h *GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DriverResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverEntity, err := uow.DriverRepository().Get(ctx, query.DriverID(), false)
	if err != nil {
		return DriverResponse{}, err
	}

	return NewDriverResponse(driverEntity), nil
}
