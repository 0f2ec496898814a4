package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// UpdateShipmentStatusCommandHandler sets the operational sub-status of an
// order's shipment.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateShipmentStatusCommandHandler creates a handler for shipment
// sub-status updates.
func NewUpdateShipmentStatusCommandHandler(uowFactory OrderUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{uowFactory: uowFactory}
}

// Handle applies the sub-status and returns the updated aggregate. Fails with
// errs.ErrValueIsInvalid when the order has no shipment.
func (h UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.SetShipmentStatus(cmd.ShipmentStatus()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
