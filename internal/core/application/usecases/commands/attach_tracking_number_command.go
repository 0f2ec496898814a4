package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAttachTrackingNumberCommandIsNotConstructed = errors.New(
	"AttachTrackingNumberCommand must be created via NewAttachTrackingNumberCommand constructor",
)

// AttachTrackingNumberCommand represents a request to record a courier
// tracking number on an order's shipment. Attaching does not move the order
// through the workflow.
type AttachTrackingNumberCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewAttachTrackingNumberCommand creates a command to attach a tracking
// number. The tracking number must be non-empty; whether the order can carry
// one at all is decided by the aggregate.
func NewAttachTrackingNumberCommand(
	orderID kernel.UUID,
	trackingNumber string,
) (AttachTrackingNumberCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AttachTrackingNumberCommand{}, err
	}

	if strings.TrimSpace(trackingNumber) == "" {
		return AttachTrackingNumberCommand{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return AttachTrackingNumberCommand{
		orderID:        orderID,
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachTrackingNumberCommand) Validate() error {
	return c.guard.Validate(ErrAttachTrackingNumberCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c AttachTrackingNumberCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TrackingNumber returns the tracking number to record.
func (c AttachTrackingNumberCommand) TrackingNumber() string {
	return c.trackingNumber
}
