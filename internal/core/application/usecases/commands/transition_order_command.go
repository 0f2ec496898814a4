package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move an order to a target
// fulfillment status. Shipment info is carried only for the move into
// shipped; the domain rejects shipping without a courier name.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.Shipped, &order.ShipmentInfo{
//	    CourierName:    "JNE",
//	    TrackingNumber: &trackingNumber,
//	})
//	if err != nil {
//	    return err
//	}
//
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // reject the request, never retry
//	case errors.Is(err, errs.ErrConcurrencyConflict):
//	    // re-read and retry, bounded
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus order.Status
	shipmentInfo *order.ShipmentInfo

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// Validates the order identifier and that the target is one of the five
// defined statuses. Legality of the move itself is decided by the aggregate
// against its freshly loaded state, not here.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	targetStatus order.Status,
	shipmentInfo *order.ShipmentInfo,
) (TransitionOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), targetStatus.Validate()); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID:      orderID,
		targetStatus: targetStatus,
		shipmentInfo: shipmentInfo,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the requested fulfillment status.
func (c TransitionOrderCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// ShipmentInfo returns the courier details for a move into shipped, or nil.
func (c TransitionOrderCommand) ShipmentInfo() *order.ShipmentInfo {
	return c.shipmentInfo
}
