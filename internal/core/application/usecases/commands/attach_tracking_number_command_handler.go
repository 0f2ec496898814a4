package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// AttachTrackingNumberCommandHandler records a tracking number on an order's
// shipment without changing the order's status.
type AttachTrackingNumberCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAttachTrackingNumberCommandHandler creates a handler for attaching
// tracking numbers.
func NewAttachTrackingNumberCommandHandler(uowFactory OrderUoWFactory) AttachTrackingNumberCommandHandler {
	return AttachTrackingNumberCommandHandler{uowFactory: uowFactory}
}

// Handle attaches the tracking number and returns the updated aggregate.
// Fails with errs.ErrValueIsInvalid when the order has no shipment yet or is
// cancelled.
func (h AttachTrackingNumberCommandHandler) Handle(
	ctx context.Context,
	cmd AttachTrackingNumberCommand,
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

	if err = aggregate.AttachTrackingNumber(cmd.TrackingNumber()); err != nil {
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
