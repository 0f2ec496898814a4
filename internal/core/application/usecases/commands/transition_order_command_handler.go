package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// TransitionOrderCommandHandler is the sole entry point for mutating an
// order's fulfillment status. It re-reads the order inside the transaction so
// legality is always decided against current state, applies the domain
// transition (creating the shipment when entering shipped), and persists
// order and shipment atomically with an optimistic-concurrency guard.
//
// After a successful commit the status change is announced through the
// configured event publisher; publication is best effort and never fails the
// transition.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
// The publisher may be nil when no eventing is configured.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the transition command and returns the updated aggregate.
//
// Failure modes, all without mutation:
//   - order.ErrInvalidTransition when the workflow forbids the move
//   - errs.ErrValueIsRequired when shipping without a courier name
//   - errs.ErrObjectNotFound when the order does not exist
//   - errs.ErrConcurrencyConflict when a concurrent transition won the race;
//     callers should re-read and retry, bounded
func (h TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
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

	// Fresh read inside the transaction; caller-supplied state is never trusted.
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	previous := aggregate.Status()

	if err = aggregate.TransitionTo(cmd.TargetStatus(), cmd.ShipmentInfo()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if h.publisher != nil {
		h.publisher.PublishStatusChanged(ctx, aggregate, previous)
	}

	return aggregate, nil
}
