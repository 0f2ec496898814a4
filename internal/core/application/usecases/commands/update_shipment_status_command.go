package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a request to set the operational
// sub-status of an order's shipment (packing, shipping, delivered). The
// sub-status tracks courier progress and is independent of the order's
// fulfillment status.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	shipmentStatus order.ShipmentStatus

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to set a shipment
// sub-status.
func NewUpdateShipmentStatusCommand(
	orderID kernel.UUID,
	shipmentStatus order.ShipmentStatus,
) (UpdateShipmentStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), shipmentStatus.Validate()); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return UpdateShipmentStatusCommand{
		orderID:        orderID,
		shipmentStatus: shipmentStatus,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c UpdateShipmentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShipmentStatus returns the sub-status to set.
func (c UpdateShipmentStatusCommand) ShipmentStatus() order.ShipmentStatus {
	return c.shipmentStatus
}
