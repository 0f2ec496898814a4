package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// ShipmentStatus is the courier-side sub-state of a shipment. It is finer
// grained than the order status and is settable independently of it: the
// carrier integration reports it, this core only stores and validates the
// value.
type ShipmentStatus int

const (
	// ShipmentStatusUnknown represents an invalid or undefined shipment status.
	ShipmentStatusUnknown ShipmentStatus = iota

	// Packing is the initial shipment status, set when the shipment is created.
	Packing

	// Shipping indicates the parcel is in transit with the courier.
	Shipping

	// Delivered indicates the courier reported the parcel as delivered.
	Delivered
)

func getShipmentStatusStrings() map[ShipmentStatus]string {
	return map[ShipmentStatus]string{
		ShipmentStatusUnknown: "unknown",
		Packing:               "packing",
		Shipping:              "shipping",
		Delivered:             "delivered",
	}
}

// ShipmentStatusFromString parses the lowercase wire representation of a
// shipment status. "unknown" and unrecognized values are rejected.
func ShipmentStatusFromString(s string) (ShipmentStatus, error) {
	for status, str := range getShipmentStatusStrings() {
		if str == s && status != ShipmentStatusUnknown {
			return status, nil
		}
	}
	return ShipmentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shipment_status",
		fmt.Errorf("%q is not a valid shipment status", s),
	)
}

// Validate checks if the ShipmentStatus is one of the three defined states.
func (s ShipmentStatus) Validate() error {
	if s != Packing && s != Shipping && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment_status",
			fmt.Errorf("%d is not a valid shipment status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the shipment status.
func (s ShipmentStatus) String() string {
	if str, ok := getShipmentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ShipmentInfo is the input required to move an order into Shipped.
// CourierName is mandatory; TrackingNumber may be supplied now or attached
// later without a status transition.
type ShipmentInfo struct {
	CourierName    string
	TrackingNumber *string
}

// Shipment is the courier record attached to an order once it ships. It is an
// entity owned by the Order aggregate: created exactly once, when the order
// enters Shipped, and never deleted.
type Shipment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	courierName    string
	trackingNumber *string
	status         ShipmentStatus
	createdAt      time.Time

	isConstructed bool
}

// NewShipment creates a Shipment for the given order in Packing status.
// The courier name is required; the tracking number is optional.
func NewShipment(id kernel.UUID, orderID kernel.UUID, courierName string, trackingNumber *string) (*Shipment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if courierName == "" {
		return nil, errs.NewValueIsRequiredError("courier_name")
	}
	if trackingNumber != nil && *trackingNumber == "" {
		return nil, errs.NewValueIsInvalidError("tracking_number")
	}

	return &Shipment{
		id:             id,
		orderID:        orderID,
		courierName:    courierName,
		trackingNumber: trackingNumber,
		status:         Packing,
		createdAt:      time.Now().UTC(),
		isConstructed:  true,
	}, nil
}

// RestoreShipment reconstructs a Shipment from persistence.
// All invariants are re-validated so corrupt rows are rejected at the boundary.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	courierName string,
	trackingNumber *string,
	status ShipmentStatus,
	createdAt time.Time,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if courierName == "" {
		return nil, errs.NewValueIsRequiredError("courier_name")
	}

	return &Shipment{
		id:             id,
		orderID:        orderID,
		courierName:    courierName,
		trackingNumber: trackingNumber,
		status:         status,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the owning order.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// CourierName returns the carrier the parcel was handed to.
func (s *Shipment) CourierName() string {
	return s.courierName
}

// TrackingNumber returns the carrier tracking number, or nil if none has been
// attached yet.
func (s *Shipment) TrackingNumber() *string {
	return s.trackingNumber
}

// Status returns the courier-side sub-state of the shipment.
func (s *Shipment) Status() ShipmentStatus {
	return s.status
}

// CreatedAt returns when the shipment record was created.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// AttachTrackingNumber records the carrier tracking number.
// This is a metadata mutation, not a state change; it may be called whether or
// not a number was provided at shipping time, and overwrites a previous value.
func (s *Shipment) AttachTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}
	s.trackingNumber = &trackingNumber
	return nil
}

// SetStatus records the courier-reported sub-state.
// No transition rules are enforced between the three values; the carrier is
// the source of truth and may report them in any order.
func (s *Shipment) SetStatus(status ShipmentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
